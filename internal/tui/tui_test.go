package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/citydrift/internal/engine"
	"github.com/tatianab/citydrift/internal/models"
	"github.com/tatianab/citydrift/internal/narrator"
	"github.com/tatianab/citydrift/internal/narrator/mocks"
	"go.uber.org/mock/gomock"
)

func testEvent(id string, typ models.EventType, a models.ChoiceConsequence) models.EventDefinition {
	return models.EventDefinition{
		ID:          id,
		Title:       "Title " + id,
		Description: "Description " + id,
		Type:        typ,
		Choices: []models.Choice{
			{Label: models.ChoiceA, Text: "take " + id, Consequence: a},
			{Label: models.ChoiceB, Text: "skip " + id},
		},
	}
}

// collapseCatalog ends the run on the first A answer.
func collapseCatalog(t *testing.T) *models.Catalog {
	t.Helper()
	c, err := models.NewCatalog(map[int][]models.EventDefinition{
		1: {testEvent("burnout", models.EventCore, models.ChoiceConsequence{
			HealthChange: -75, MentalChange: -75, NarrativeResult: "Everything gives at once.",
		})},
	})
	require.NoError(t, err)
	return c
}

func flatCatalog(t *testing.T) *models.Catalog {
	t.Helper()
	stages := map[int][]models.EventDefinition{}
	for i := 1; i <= models.EventsPerStage; i++ {
		typ := models.EventCore
		if i > models.CoreEventsPerStage {
			typ = models.EventRandom
		}
		stages[1] = append(stages[1], testEvent(fmt.Sprintf("e%d", i), typ, models.ChoiceConsequence{CashChange: 100}))
	}
	c, err := models.NewCatalog(stages)
	require.NoError(t, err)
	return c
}

// firstPick always draws the first candidate.
type firstPick struct{}

func (firstPick) IntN(int) int     { return 0 }
func (firstPick) Float64() float64 { return 0.5 }

func newTestModel(t *testing.T, c *models.Catalog, narr narrator.Narrator) model {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	return newModel(engine.New(c, engine.WithLogger(logger), engine.WithRand(firstPick{})), narr, logger)
}

func press(t *testing.T, m model, keys ...string) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		if k == "enter" {
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, c := m.Update(msg)
		m, cmd = next.(model), c
	}
	return m, cmd
}

func TestStartAndConfigure(t *testing.T) {
	m := newTestModel(t, flatCatalog(t), narrator.Static{})
	assert.Contains(t, m.View(), "Press enter to begin")

	m, _ = press(t, m, "enter")
	require.Equal(t, engine.PhaseConfig, m.state.Phase.Kind())

	m, _ = press(t, m, "r", "c", "d", "d", "D", "s", "f", "f", "F", "i")
	assert.Equal(t, models.Assets{
		RentChoice:   models.RentSolo,
		CarType:      models.CarGas,
		FixedDeposit: models.FixedDepositStep,
		Investments:  models.Investments{Stocks: models.StocksStep, Funds: models.FundsStep, Insurance: true},
	}, m.draft)
	assert.Contains(t, m.View(), "¥122,000")

	m, _ = press(t, m, "enter")
	require.Equal(t, engine.PhasePlayEvent, m.state.Phase.Kind())
	assert.Equal(t, 122000, m.state.Stats.Cash)
	assert.Contains(t, m.View(), "Title e1")
}

func TestConfigStepsAreBounded(t *testing.T) {
	m := newTestModel(t, flatCatalog(t), narrator.Static{})
	m, _ = press(t, m, "enter", "D", "S", "F")
	assert.Equal(t, models.DefaultAssets(), m.draft)

	for i := 0; i < 30; i++ {
		m, _ = press(t, m, "d")
	}
	assert.Equal(t, models.FixedDepositMax, m.draft.FixedDeposit)
}

func TestUnaffordableConfigShowsError(t *testing.T) {
	m := newTestModel(t, flatCatalog(t), narrator.Static{})
	m, _ = press(t, m, "enter", "c", "c")
	for i := 0; i < 20; i++ {
		m, _ = press(t, m, "d")
	}
	assert.Contains(t, m.View(), "not enough cash")

	m, _ = press(t, m, "enter")
	assert.Equal(t, engine.PhaseConfig, m.state.Phase.Kind())
	assert.ErrorIs(t, m.err, engine.ErrInsufficientCash)

	m, _ = press(t, m, "c")
	assert.NoError(t, m.err)
}

func TestPlayStageToSummary(t *testing.T) {
	m := newTestModel(t, flatCatalog(t), narrator.Static{})
	m, _ = press(t, m, "enter", "enter")

	m, _ = press(t, m, "x")
	assert.Equal(t, 1, m.state.SubStage)

	m, _ = press(t, m, "a")
	assert.Contains(t, m.View(), "You chose: take e1")
	assert.Contains(t, m.View(), "+100 cash")

	m, _ = press(t, m, "b", "a", "b", "a")
	require.Equal(t, engine.PhaseStageSummary, m.state.Phase.Kind())
	view := m.View()
	assert.Contains(t, view, "Stage 1 settled")
	assert.Contains(t, view, "Stage 1-5: Title e5 -> chose: take e5")

	m, _ = press(t, m, "enter")
	assert.Equal(t, engine.PhaseConfig, m.state.Phase.Kind())
	assert.Equal(t, 2, m.state.Stage)
	assert.Nil(t, m.last)
}

func TestEndingLoadsEpilogue(t *testing.T) {
	ctrl := gomock.NewController(t)
	narr := mocks.NewMockNarrator(ctrl)
	narr.EXPECT().
		Epilogue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r narrator.Report) (narrator.Epilogue, error) {
			assert.Equal(t, engine.EndingCollapse, r.Ending)
			assert.Len(t, r.History, 1)
			return narrator.Epilogue{Title: "Gone Quiet", Text: "The lights stayed on without you."}, nil
		})

	m := newTestModel(t, collapseCatalog(t), narr)
	m, cmd := press(t, m, "enter", "enter", "a")
	require.Equal(t, engine.PhaseEnding, m.state.Phase.Kind())
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "writing your story")

	next, _ := m.Update(cmd())
	m = next.(model)
	view := m.View()
	assert.Contains(t, view, "Gone Quiet")
	assert.Contains(t, view, "The lights stayed on without you.")
	assert.Contains(t, view, "body gave out + mental breakdown")
}

func TestEndingFallsBackToStatic(t *testing.T) {
	ctrl := gomock.NewController(t)
	narr := mocks.NewMockNarrator(ctrl)
	narr.EXPECT().
		Epilogue(gomock.Any(), gomock.Any()).
		Return(narrator.Epilogue{}, errors.New("model unavailable"))

	m := newTestModel(t, collapseCatalog(t), narr)
	m, cmd := press(t, m, "enter", "enter", "a")
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	m = next.(model)
	require.NotNil(t, m.epilogue)
	assert.Equal(t, engine.EndingCollapse.Title(), m.epilogue.Title)
}

func TestRestartDropsStaleEpilogue(t *testing.T) {
	ctrl := gomock.NewController(t)
	narr := mocks.NewMockNarrator(ctrl)
	narr.EXPECT().
		Epilogue(gomock.Any(), gomock.Any()).
		Return(narrator.Epilogue{Title: "Late", Text: "Too late."}, nil)

	m := newTestModel(t, collapseCatalog(t), narr)
	m, cmd := press(t, m, "enter", "enter", "a")
	require.NotNil(t, cmd)

	m, _ = press(t, m, "n")
	require.Equal(t, engine.PhaseStart, m.state.Phase.Kind())

	next, _ := m.Update(cmd())
	m = next.(model)
	assert.Nil(t, m.epilogue)
	assert.Contains(t, m.View(), "Press enter to begin")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, flatCatalog(t), narrator.Static{})
	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRestartFromConfig(t *testing.T) {
	m := newTestModel(t, flatCatalog(t), narrator.Static{})
	m, _ = press(t, m, "enter", "r")
	old := m.state.SessionID

	m, _ = press(t, m, "n")
	assert.Equal(t, engine.PhaseStart, m.state.Phase.Kind())
	assert.NotEqual(t, old, m.state.SessionID)
	assert.Equal(t, models.DefaultAssets(), m.draft)
}
