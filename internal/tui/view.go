package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/citydrift/internal/engine"
	"github.com/tatianab/citydrift/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const barWidth = 20

var (
	printer = message.NewPrinter(language.English)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5F5F87")).
			Padding(1, 2)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
)

func (m model) View() string {
	var body string
	switch p := m.state.Phase.(type) {
	case engine.StartPhase:
		body = m.viewStart()
	case engine.ConfigPhase:
		body = m.viewConfig()
	case engine.PlayEventPhase:
		body = m.viewEvent(p)
	case engine.StageSummaryPhase:
		body = m.viewSummary(p)
	case engine.EndingPhase:
		body = m.viewEnding(p)
	}

	parts := []string{}
	if m.state.Phase.Kind() != engine.PhaseStart {
		parts = append(parts, m.viewDashboard())
	}
	parts = append(parts, body)
	if m.err != nil {
		parts = append(parts, errorStyle.Render(m.err.Error()))
	}
	parts = append(parts, m.help.View(m.keys.forPhase(m.state.Phase.Kind())))

	return "\n" + lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m model) viewStart() string {
	intro := "You arrive in the city with " + money(models.StartingCash) + " and a job offer.\n" +
		"Three years, six half-year stages, five decisions each.\n" +
		"Keep your body, your mind and your conscience above water. " +
		"Two collapses at once and the city swallows you."
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("CITYDRIFT"),
		"",
		textStyle.Width(m.contentWidth()).Render(intro),
		"",
		dimStyle.Render("Press enter to begin."),
	)
}

func (m model) viewDashboard() string {
	s := m.state
	cal := models.Calendar(s.Stage)
	where := fmt.Sprintf("Year %d, %s  ·  Stage %d/%d", cal.Year, cal.Half, s.Stage, models.TotalStages)
	if s.Phase.Kind() == engine.PhasePlayEvent {
		where += fmt.Sprintf("  ·  Event %d/%d", s.SubStage, models.EventsPerStage)
	}

	cash := "Cash " + money(s.Stats.Cash)
	if s.Stats.Cash < 0 {
		cash = dangerStyle.Render(cash)
	} else {
		cash = goodStyle.Render(cash)
	}

	stats := lipgloss.JoinVertical(lipgloss.Left,
		statBar("Health  ", s.Stats.Health),
		statBar("Mental  ", s.Stats.Mental),
		statBar("Morality", s.Stats.Morality),
	)
	return headerStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("CITYDRIFT")+"  "+dimStyle.Render(where),
		cash,
		stats,
	))
}

func statBar(label string, v int) string {
	filled := v * barWidth / models.StatMax
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	line := fmt.Sprintf("%s %s %3d", label, bar, v)
	if v < models.StatWarning {
		return dangerStyle.Render(line)
	}
	return line
}

func (m model) viewConfig() string {
	d := m.draft
	var b strings.Builder

	b.WriteString(titleStyle.Render("Plan the next six months") + "\n\n")

	b.WriteString("Housing [r]\n")
	for _, o := range models.RentOptions {
		b.WriteString(option(o.ID == d.RentChoice,
			fmt.Sprintf("%s  %s/month  %s", o.Label, money(o.MonthlyCost), dimStyle.Render(o.Description))))
	}
	b.WriteString("\nTransport [c]\n")
	for _, o := range models.CarOptions {
		b.WriteString(option(o.ID == d.CarType,
			fmt.Sprintf("%s  %s  %s", o.Label, money(o.Cost), dimStyle.Render(o.Description))))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Fixed deposit [d/D]  %s\n", money(d.FixedDeposit)))
	b.WriteString(fmt.Sprintf("Stocks        [s/S]  %s\n", money(d.Investments.Stocks)))
	b.WriteString(fmt.Sprintf("Funds         [f/F]  %s\n", money(d.Investments.Funds)))
	insured := "no"
	if d.Investments.Insurance {
		insured = "yes"
	}
	b.WriteString(fmt.Sprintf("Insurance     [i]    %s  %s\n", insured, dimStyle.Render("one-time fee of "+money(models.InsuranceCost))))

	projected, ok := m.engine.PreviewBalance(d)
	line := "Cash after changes: " + money(projected)
	switch {
	case !ok:
		line = dangerStyle.Render(line + "  (not enough cash)")
	case projected < 0:
		line = dangerStyle.Render(line + "  (final stage: debt allowed)")
	default:
		line = goodStyle.Render(line)
	}
	b.WriteString("\n" + line + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"Cars resell at %d%% of their price. Deposits, stocks and funds move at face value.",
		int(models.VehicleResaleRate*100))))

	return b.String()
}

func option(selected bool, text string) string {
	if selected {
		return selectedStyle.Render("> ") + text + "\n"
	}
	return "  " + text + "\n"
}

func (m model) viewEvent(p engine.PlayEventPhase) string {
	ev := p.Event
	var parts []string
	if r := m.viewLastResult(); r != "" {
		parts = append(parts, r, "")
	}

	width := m.contentWidth() - 6
	card := []string{
		titleStyle.Render(ev.Title),
		"",
		textStyle.Width(width).Render(ev.Description),
		"",
	}
	for _, c := range ev.Choices {
		card = append(card, fmt.Sprintf("[%s] %s", strings.ToLower(string(c.Label)), c.Text))
	}
	parts = append(parts, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, card...)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m model) viewLastResult() string {
	if m.last == nil {
		return ""
	}
	c := m.last.Choice.Consequence
	var deltas []string
	for _, d := range []struct {
		name string
		v    int
	}{
		{"cash", c.CashChange},
		{"health", c.HealthChange},
		{"mental", c.MentalChange},
		{"morality", c.MoralityChange},
	} {
		if d.v != 0 {
			deltas = append(deltas, printer.Sprintf("%+d %s", d.v, d.name))
		}
	}
	text := "You chose: " + m.last.Choice.Text
	if c.NarrativeResult != "" {
		text += "\n" + c.NarrativeResult
	}
	if len(deltas) > 0 {
		text += "\n" + dimStyle.Render(strings.Join(deltas, ", "))
	}
	return textStyle.Width(m.contentWidth()).Render(text)
}

func (m model) viewSummary(p engine.StageSummaryPhase) string {
	sum := p.Summary
	net := "Net change:        " + signedMoney(sum.NetChange)
	if sum.NetChange < 0 {
		net = dangerStyle.Render(net)
	} else {
		net = goodStyle.Render(net)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewLastResult(),
		"",
		titleStyle.Render(fmt.Sprintf("Stage %d settled", m.state.Stage)),
		"",
		"Rent and living:   "+signedMoney(-sum.FixedExpenses),
		"Returns and upkeep: "+signedMoney(sum.InvestmentReturn),
		net,
		"",
		dimStyle.Render("This stage:"),
		m.viewport.View(),
	)
}

func (m model) viewEnding(p engine.EndingPhase) string {
	var parts []string
	if m.epilogue == nil {
		parts = append(parts, titleStyle.Render(p.Ending.Title()), "", dimStyle.Render("The city is writing your story..."))
	} else {
		parts = append(parts,
			titleStyle.Render(m.epilogue.Title),
			"",
			textStyle.Width(m.contentWidth()).Render(m.epilogue.Text),
		)
	}
	if p.DeathReason != "" {
		parts = append(parts, "", dangerStyle.Render(p.DeathReason))
	}
	parts = append(parts,
		"",
		fmt.Sprintf("Ending: %s  ·  Final cash %s", p.Ending, money(m.state.Stats.Cash)),
		"",
		dimStyle.Render("Your decisions:"),
		m.viewport.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m model) contentWidth() int {
	return max(20, min(m.width, 100)-4)
}

func money(n int) string {
	return printer.Sprintf("¥%d", n)
}

func signedMoney(n int) string {
	if n < 0 {
		return "-" + money(-n)
	}
	return "+" + money(n)
}
