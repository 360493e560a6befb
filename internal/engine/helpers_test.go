package engine

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tatianab/citydrift/internal/models"
)

// stubRand always picks the first candidate and returns a fixed float.
type stubRand struct {
	f float64
}

func (stubRand) IntN(int) int       { return 0 }
func (r stubRand) Float64() float64 { return r.f }

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func event(id string, typ models.EventType, cond *models.EventCondition, a models.ChoiceConsequence) models.EventDefinition {
	return models.EventDefinition{
		ID:        id,
		Title:     "Title " + id,
		Type:      typ,
		Condition: cond,
		Choices: []models.Choice{
			{Label: models.ChoiceA, Text: "take " + id, Consequence: a},
			{Label: models.ChoiceB, Text: "skip " + id},
		},
	}
}

// flatCatalog has three CORE and two RANDOM events per stage whose choices
// change nothing.
func flatCatalog(t *testing.T) *models.Catalog {
	t.Helper()
	return flatCatalogFor(t)
}

// flatCatalogFor builds the flat catalog for any test handle, including
// rapid's.
func flatCatalogFor(t require.TestingT) *models.Catalog {
	stages := make(map[int][]models.EventDefinition)
	for s := 1; s <= models.TotalStages; s++ {
		for i := 1; i <= models.CoreEventsPerStage; i++ {
			stages[s] = append(stages[s], event(fmt.Sprintf("s%d-core-%d", s, i), models.EventCore, nil, models.ChoiceConsequence{}))
		}
		for i := 1; i <= models.EventsPerStage-models.CoreEventsPerStage; i++ {
			stages[s] = append(stages[s], event(fmt.Sprintf("s%d-random-%d", s, i), models.EventRandom, nil, models.ChoiceConsequence{}))
		}
	}
	c, err := models.NewCatalog(stages)
	require.NoError(t, err)
	return c
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }
