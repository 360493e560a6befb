package engine

import (
	"slices"

	"github.com/google/uuid"
	"github.com/tatianab/citydrift/internal/models"
)

// Phase names the state machine states.
type Phase string

const (
	PhaseStart        Phase = "START"
	PhaseConfig       Phase = "CONFIG"
	PhasePlayEvent    Phase = "PLAY_EVENT"
	PhaseStageSummary Phase = "STAGE_SUMMARY"
	PhaseEnding       Phase = "ENDING"
)

// PhaseState is the current phase together with the data only that phase
// carries. It is one of StartPhase, ConfigPhase, PlayEventPhase,
// StageSummaryPhase or EndingPhase.
type PhaseState interface {
	Kind() Phase
	isPhase()
}

// StartPhase waits for the player to begin.
type StartPhase struct{}

// ConfigPhase waits for an asset configuration.
type ConfigPhase struct{}

// PlayEventPhase waits for a choice on Event.
type PlayEventPhase struct {
	Event models.EventDefinition
}

// StageSummaryPhase shows the settlement preview of the finished stage.
type StageSummaryPhase struct {
	Summary models.StageSummaryData
}

// EndingPhase is terminal. DeathReason is empty for a natural ending.
type EndingPhase struct {
	DeathReason string
	Ending      Ending
}

func (StartPhase) Kind() Phase        { return PhaseStart }
func (ConfigPhase) Kind() Phase       { return PhaseConfig }
func (PlayEventPhase) Kind() Phase    { return PhasePlayEvent }
func (StageSummaryPhase) Kind() Phase { return PhaseStageSummary }
func (EndingPhase) Kind() Phase       { return PhaseEnding }

func (StartPhase) isPhase()        {}
func (ConfigPhase) isPhase()       {}
func (PlayEventPhase) isPhase()    {}
func (StageSummaryPhase) isPhase() {}
func (EndingPhase) isPhase()       {}

// GameState is a snapshot of a run.
type GameState struct {
	SessionID uuid.UUID
	Phase     PhaseState
	Stage     int
	SubStage  int
	Stats     models.PlayerStats
	Assets    models.Assets
	History   []string
}

func newGameState() GameState {
	return GameState{
		SessionID: uuid.New(),
		Phase:     StartPhase{},
		Stage:     1,
		Stats: models.PlayerStats{
			Cash:     models.StartingCash,
			Health:   models.StartingHealth,
			Mental:   models.StartingMental,
			Morality: models.StartingMorality,
		},
		Assets: models.DefaultAssets(),
	}
}

func (s GameState) clone() GameState {
	s.History = slices.Clone(s.History)
	if play, ok := s.Phase.(PlayEventPhase); ok {
		s.Phase = PlayEventPhase{Event: play.Event.Clone()}
	}
	return s
}
