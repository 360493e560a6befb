package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/tatianab/citydrift/internal/engine"
	"github.com/tatianab/citydrift/internal/models"
	"github.com/tatianab/citydrift/internal/narrator"
)

const epilogueTimeout = 30 * time.Second

type model struct {
	engine   *engine.Engine
	narrator narrator.Narrator
	log      *slog.Logger

	state engine.GameState
	// draft is the configuration being edited in the CONFIG phase.
	draft models.Assets
	// last is the most recent resolved choice, shown until the next config.
	last *engine.Resolution

	epilogue *narrator.Epilogue

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	err      error
	width    int
	height   int
}

func newModel(eng *engine.Engine, narr narrator.Narrator, logger *slog.Logger) model {
	if narr == nil {
		narr = narrator.Static{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := eng.State()
	return model{
		engine:   eng,
		narrator: narr,
		log:      logger,
		state:    s,
		draft:    s.Assets,
		keys:     defaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(80, 10),
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

type epilogueMsg struct {
	session  uuid.UUID
	epilogue narrator.Epilogue
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(3, msg.Height-18)
		return m, nil

	case epilogueMsg:
		if msg.session != m.state.SessionID {
			return m, nil
		}
		m.epilogue = &msg.epilogue
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state.Phase.Kind() {
	case engine.PhaseStart:
		if key.Matches(msg, m.keys.Begin) {
			return m.apply(m.engine.Start())
		}

	case engine.PhaseConfig:
		return m.handleConfigKey(msg)

	case engine.PhasePlayEvent:
		var label models.ChoiceLabel
		switch {
		case key.Matches(msg, m.keys.ChooseA):
			label = models.ChoiceA
		case key.Matches(msg, m.keys.ChooseB):
			label = models.ChoiceB
		default:
			return m, nil
		}
		res, err := m.engine.SubmitChoice(label)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.last = &res
		return m.apply(res.State, nil)

	case engine.PhaseStageSummary:
		if key.Matches(msg, m.keys.Continue) {
			return m.apply(m.engine.ContinueFromSummary())
		}
		return m.scroll(msg)

	case engine.PhaseEnding:
		if key.Matches(msg, m.keys.Restart) {
			return m.apply(m.engine.Restart(), nil)
		}
		return m.scroll(msg)
	}
	return m, nil
}

func (m model) handleConfigKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.draft
	switch {
	case key.Matches(msg, m.keys.Rent):
		if d.RentChoice == models.RentShared {
			d.RentChoice = models.RentSolo
		} else {
			d.RentChoice = models.RentShared
		}
	case key.Matches(msg, m.keys.Car):
		d.CarType = nextCar(d.CarType)
	case key.Matches(msg, m.keys.DepositUp):
		d.FixedDeposit = step(d.FixedDeposit, models.FixedDepositStep, models.FixedDepositMax)
	case key.Matches(msg, m.keys.DepositDown):
		d.FixedDeposit = step(d.FixedDeposit, -models.FixedDepositStep, models.FixedDepositMax)
	case key.Matches(msg, m.keys.StocksUp):
		d.Investments.Stocks = step(d.Investments.Stocks, models.StocksStep, models.StocksMax)
	case key.Matches(msg, m.keys.StocksDown):
		d.Investments.Stocks = step(d.Investments.Stocks, -models.StocksStep, models.StocksMax)
	case key.Matches(msg, m.keys.FundsUp):
		d.Investments.Funds = step(d.Investments.Funds, models.FundsStep, models.FundsMax)
	case key.Matches(msg, m.keys.FundsDown):
		d.Investments.Funds = step(d.Investments.Funds, -models.FundsStep, models.FundsMax)
	case key.Matches(msg, m.keys.Insurance):
		d.Investments.Insurance = !d.Investments.Insurance
	case key.Matches(msg, m.keys.Confirm):
		return m.apply(m.engine.ConfirmConfig(m.draft))
	case key.Matches(msg, m.keys.Restart):
		return m.apply(m.engine.Restart(), nil)
	default:
		return m, nil
	}
	m.err = nil
	return m, nil
}

func (m model) scroll(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// apply takes the engine's answer to an intent. On error the state is
// unchanged and the error is shown until the next successful intent.
func (m model) apply(s engine.GameState, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.err = err
		m.log.Debug("intent rejected", "session_id", s.SessionID, "error", err)
		return m, nil
	}
	m.err = nil
	prev := m.state
	m.state = s

	switch p := s.Phase.(type) {
	case engine.StartPhase:
		m.last = nil
		m.epilogue = nil
		m.draft = s.Assets
	case engine.ConfigPhase:
		m.last = nil
		m.draft = s.Assets
	case engine.StageSummaryPhase:
		m.viewport.SetContent(strings.Join(strings.Split(p.Summary.EventsSummary, " | "), "\n"))
		m.viewport.GotoTop()
	case engine.EndingPhase:
		if prev.Phase.Kind() == engine.PhaseEnding {
			return m, nil
		}
		m.epilogue = nil
		m.viewport.SetContent(strings.Join(s.History, "\n"))
		m.viewport.GotoBottom()
		return m, m.loadEpilogue(s)
	}
	return m, nil
}

// loadEpilogue asks the narrator for the closing text. Any failure falls
// back to the static ending text.
func (m model) loadEpilogue(s engine.GameState) tea.Cmd {
	report, ok := narrator.NewReport(s)
	if !ok {
		return nil
	}
	narr, logger := m.narrator, m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), epilogueTimeout)
		defer cancel()

		ep, err := narr.Epilogue(ctx, report)
		if err != nil {
			logger.Warn("narrator failed, using static epilogue", "session_id", s.SessionID, "error", err)
			ep, _ = narrator.Static{}.Epilogue(ctx, report)
		}
		if ep.Title == "" {
			ep.Title = report.Ending.Title()
		}
		return epilogueMsg{session: s.SessionID, epilogue: ep}
	}
}

func nextCar(c models.CarType) models.CarType {
	for i, o := range models.CarOptions {
		if o.ID == c {
			return models.CarOptions[(i+1)%len(models.CarOptions)].ID
		}
	}
	return models.CarNone
}

func step(v, delta, limit int) int {
	return max(0, min(limit, v+delta))
}

// Run starts the terminal UI on eng and blocks until the player quits.
func Run(eng *engine.Engine, narr narrator.Narrator, logger *slog.Logger) error {
	p := tea.NewProgram(newModel(eng, narr, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start runs a game on the built-in catalog with the static narrator and
// no logging.
func Start() error {
	catalog, err := models.DefaultCatalog()
	if err != nil {
		return err
	}
	logger := slog.New(slog.DiscardHandler)
	return Run(engine.New(catalog, engine.WithLogger(logger)), narrator.Static{}, logger)
}
