package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/tatianab/citydrift/internal/engine"
)

type keyMap struct {
	Begin       key.Binding
	Rent        key.Binding
	Car         key.Binding
	DepositUp   key.Binding
	DepositDown key.Binding
	StocksUp    key.Binding
	StocksDown  key.Binding
	FundsUp     key.Binding
	FundsDown   key.Binding
	Insurance   key.Binding
	Confirm     key.Binding
	ChooseA     key.Binding
	ChooseB     key.Binding
	Continue    key.Binding
	Scroll      key.Binding
	Restart     key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Begin:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "begin")),
		Rent:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "housing")),
		Car:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "transport")),
		DepositUp:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d/D", "deposit +/-")),
		DepositDown: key.NewBinding(key.WithKeys("D")),
		StocksUp:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s/S", "stocks +/-")),
		StocksDown:  key.NewBinding(key.WithKeys("S")),
		FundsUp:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f/F", "funds +/-")),
		FundsDown:   key.NewBinding(key.WithKeys("F")),
		Insurance:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insurance")),
		Confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		ChooseA:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "choice A")),
		ChooseB:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "choice B")),
		Continue:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		Scroll:      key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
		Restart:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new life")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// phaseHelp adapts the bindings active in one phase to help.KeyMap.
type phaseHelp []key.Binding

func (h phaseHelp) ShortHelp() []key.Binding  { return h }
func (h phaseHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k keyMap) forPhase(p engine.Phase) phaseHelp {
	switch p {
	case engine.PhaseStart:
		return phaseHelp{k.Begin, k.Quit}
	case engine.PhaseConfig:
		return phaseHelp{k.Rent, k.Car, k.DepositUp, k.StocksUp, k.FundsUp, k.Insurance, k.Confirm, k.Restart, k.Quit}
	case engine.PhasePlayEvent:
		return phaseHelp{k.ChooseA, k.ChooseB, k.Quit}
	case engine.PhaseStageSummary:
		return phaseHelp{k.Continue, k.Scroll, k.Quit}
	case engine.PhaseEnding:
		return phaseHelp{k.Restart, k.Scroll, k.Quit}
	}
	return phaseHelp{k.Quit}
}
