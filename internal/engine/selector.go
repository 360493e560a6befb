package engine

import (
	"log/slog"

	"github.com/tatianab/citydrift/internal/models"
)

// Selector draws the next event for a stage slot. It remembers which ids
// were drawn since the last Reset so a stage-cycle does not repeat events
// until a pool runs dry.
type Selector struct {
	catalog *models.Catalog
	rnd     Rand
	log     *slog.Logger
	used    map[string]struct{}
}

// NewSelector builds a selector over catalog. A nil rnd uses the unseeded
// generator; a nil logger uses slog.Default().
func NewSelector(catalog *models.Catalog, rnd Rand, logger *slog.Logger) *Selector {
	if rnd == nil {
		rnd = globalRand{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{
		catalog: catalog,
		rnd:     rnd,
		log:     logger,
		used:    make(map[string]struct{}),
	}
}

// Reset forgets every drawn id. Called once per stage-cycle.
func (s *Selector) Reset() {
	clear(s.used)
}

// Used reports whether id was drawn since the last Reset.
func (s *Selector) Used(id string) bool {
	_, ok := s.used[id]
	return ok
}

// CategoryFor returns the event type that fills subStage.
func CategoryFor(subStage int) models.EventType {
	if subStage <= models.CoreEventsPerStage {
		return models.EventCore
	}
	return models.EventRandom
}

// Select picks the event for (stage, subStage) given the player's assets
// and marks it used. It never fails: when no candidate survives the
// fallbacks a built-in default event is returned.
func (s *Selector) Select(stage, subStage int, assets models.Assets) models.EventDefinition {
	category := CategoryFor(subStage)
	pool := s.pool(stage)

	var candidates []models.EventDefinition
	if category == models.EventCore {
		candidates = s.filter(pool, func(ev models.EventDefinition) bool {
			return ev.Type == models.EventCore && Matches(ev.Condition, assets, stage) && !s.Used(ev.ID)
		})
		if len(candidates) == 0 {
			candidates = s.filter(pool, func(ev models.EventDefinition) bool {
				return ev.Type == models.EventCore && ev.Condition == nil && !s.Used(ev.ID)
			})
		}
	} else {
		candidates = s.filter(pool, func(ev models.EventDefinition) bool {
			return ev.Type == models.EventRandom && !s.Used(ev.ID)
		})
		if len(candidates) == 0 {
			candidates = s.filter(pool, func(ev models.EventDefinition) bool {
				return ev.Type == models.EventRandom
			})
		}
	}

	if len(candidates) == 0 {
		s.log.Warn("no event available, using default",
			"stage", stage, "sub_stage", subStage, "category", category)
		return DefaultEvent(category)
	}

	ev := candidates[s.rnd.IntN(len(candidates))]
	s.used[ev.ID] = struct{}{}
	s.log.Debug("event selected",
		"event_id", ev.ID, "category", category, "stage", stage, "sub_stage", subStage)
	return ev
}

// pool returns the events of stage, falling back to stage 1 for stages the
// catalog does not know.
func (s *Selector) pool(stage int) []models.EventDefinition {
	if events, ok := s.catalog.Stage(stage); ok {
		return events
	}
	s.log.Warn("stage has no event pool, using stage 1", "stage", stage)
	events, _ := s.catalog.Stage(1)
	return events
}

func (s *Selector) filter(pool []models.EventDefinition, keep func(models.EventDefinition) bool) []models.EventDefinition {
	var out []models.EventDefinition
	for _, ev := range pool {
		if keep(ev) {
			out = append(out, ev)
		}
	}
	return out
}

// Ids of the built-in fallback events.
const (
	DefaultCoreEventID   = "default-core"
	DefaultRandomEventID = "default-random"
)

// DefaultEvent is the built-in event used when a category has no
// candidates left.
func DefaultEvent(category models.EventType) models.EventDefinition {
	if category == models.EventCore {
		return models.EventDefinition{
			ID:          DefaultCoreEventID,
			Title:       "An Everyday Choice",
			Description: "Life is full of choices, and every one of them costs something.",
			Type:        models.EventCore,
			Choices: []models.Choice{
				{Label: models.ChoiceA, Text: "Option A", Consequence: models.ChoiceConsequence{
					HealthChange: -2, MentalChange: -2,
					NarrativeResult: "You made your choice. It didn't turn out the way you hoped.",
				}},
				{Label: models.ChoiceB, Text: "Option B", Consequence: models.ChoiceConsequence{
					HealthChange: -2, MentalChange: -2,
					NarrativeResult: "You chose differently, and paid for it all the same.",
				}},
			},
		}
	}
	return models.EventDefinition{
		ID:          DefaultRandomEventID,
		Title:       "An Unplanned Detour",
		Description: "Something always comes up to wreck the plan and force you to adjust.",
		Type:        models.EventRandom,
		Choices: []models.Choice{
			{Label: models.ChoiceA, Text: "Deal with it one way", Consequence: models.ChoiceConsequence{
				CashChange: -500, HealthChange: -1, MentalChange: -2,
				NarrativeResult: "You handled it, at a price.",
			}},
			{Label: models.ChoiceB, Text: "Deal with it another way", Consequence: models.ChoiceConsequence{
				HealthChange: -2, MentalChange: -3,
				NarrativeResult: "A different approach, and no easier.",
			}},
		},
	}
}
