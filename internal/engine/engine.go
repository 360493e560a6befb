// Package engine runs the life simulation: stage phases, event draws,
// stat changes and the money bookkeeping between stages.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tatianab/citydrift/internal/models"
)

// Engine is the simulation controller. It is the only writer of its
// GameState; callers get copies. An Engine is not safe for concurrent use.
type Engine struct {
	selector *Selector
	rnd      Rand
	log      *slog.Logger

	state GameState
	// stageStart indexes the first history line of the current stage.
	stageStart int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for event picks and settlement.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rnd = r }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New returns an engine over catalog in the START phase.
func New(catalog *models.Catalog, opts ...Option) *Engine {
	e := &Engine{
		rnd: globalRand{},
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.selector = NewSelector(catalog, e.rnd, e.log)
	e.state = newGameState()
	return e
}

// Resolution is the outcome of a submitted choice.
type Resolution struct {
	Event  models.EventDefinition
	Choice models.Choice
	State  GameState
}

// State returns a snapshot of the current state.
func (e *Engine) State() GameState {
	return e.state.clone()
}

// Start leaves the start screen for the first configuration.
func (e *Engine) Start() (GameState, error) {
	if err := e.expect(PhaseStart, "start"); err != nil {
		return e.State(), err
	}
	e.transition(ConfigPhase{})
	return e.State(), nil
}

// PreviewBalance reports the cash that would remain after switching to
// proposed, and whether that configuration could be confirmed now.
func (e *Engine) PreviewBalance(proposed models.Assets) (int, bool) {
	projected := ComputeBalance(e.state.Stats.Cash, e.state.Assets, proposed)
	return projected, validAssets(proposed) && CanConfirm(projected, e.state.Stage)
}

// ConfirmConfig books proposed as the new configuration and draws the
// first event of the stage. The state is unchanged on error.
func (e *Engine) ConfirmConfig(proposed models.Assets) (GameState, error) {
	if err := e.expect(PhaseConfig, "confirm config"); err != nil {
		return e.State(), err
	}
	if !validAssets(proposed) {
		return e.State(), fmt.Errorf("%w: %+v", ErrInvalidAssets, proposed)
	}
	projected := ComputeBalance(e.state.Stats.Cash, e.state.Assets, proposed)
	if !CanConfirm(projected, e.state.Stage) {
		return e.State(), fmt.Errorf("%w: projected cash %d", ErrInsufficientCash, projected)
	}

	e.selector.Reset()
	e.state.Assets = proposed
	e.state.Stats.Cash = projected
	e.state.SubStage = 1
	e.stageStart = len(e.state.History)

	e.log.Info("assets configured", "session_id", e.state.SessionID, "stage", e.state.Stage,
		"rent", proposed.RentChoice, "car", proposed.CarType, "cash", projected)

	e.transition(PlayEventPhase{Event: e.selector.Select(e.state.Stage, e.state.SubStage, proposed)})
	return e.State(), nil
}

// SubmitChoice resolves the current event with label. A label that is not
// on the event is a no-op returning ErrInvalidChoice.
func (e *Engine) SubmitChoice(label models.ChoiceLabel) (Resolution, error) {
	play, ok := e.state.Phase.(PlayEventPhase)
	if !ok {
		return Resolution{State: e.State()}, e.wrongPhase("submit choice")
	}
	choice, ok := play.Event.Choice(label)
	if !ok {
		return Resolution{State: e.State()}, fmt.Errorf("%w: %q on %s", ErrInvalidChoice, label, play.Event.ID)
	}

	e.state.Stats = ApplyConsequence(e.state.Stats, choice.Consequence)
	e.state.History = append(e.state.History,
		fmt.Sprintf("Stage %d-%d: %s -> chose: %s", e.state.Stage, e.state.SubStage, play.Event.Title, choice.Text))

	if reason, failed := CheckCriticalFailure(e.state.Stats); failed {
		e.transition(EndingPhase{DeathReason: reason, Ending: EndingCollapse})
		return e.resolution(play.Event, choice), nil
	}

	e.state.SubStage++
	if e.state.SubStage > models.EventsPerStage {
		summary := ComputeSettlement(e.state.Assets, e.state.History[e.stageStart:], e.rnd)
		e.transition(StageSummaryPhase{Summary: summary})
		return e.resolution(play.Event, choice), nil
	}

	e.transition(PlayEventPhase{Event: e.selector.Select(e.state.Stage, e.state.SubStage, e.state.Assets)})
	return e.resolution(play.Event, choice), nil
}

// ContinueFromSummary books the stage settlement and moves on to the next
// configuration, or to the ending after the final stage.
func (e *Engine) ContinueFromSummary() (GameState, error) {
	summary, ok := e.state.Phase.(StageSummaryPhase)
	if !ok {
		return e.State(), e.wrongPhase("continue")
	}

	e.state.Stats.Cash += summary.Summary.NetChange
	if e.state.Stage >= models.TotalStages {
		e.transition(EndingPhase{Ending: ClassifyEnding(e.state.Stats, "")})
		return e.State(), nil
	}

	e.state.Stage++
	e.state.SubStage = 0
	e.transition(ConfigPhase{})
	return e.State(), nil
}

// Restart throws the run away and returns a fresh state in START.
func (e *Engine) Restart() GameState {
	prev := e.state.SessionID
	e.selector.Reset()
	e.state = newGameState()
	e.stageStart = 0
	e.log.Info("game restarted", "session_id", e.state.SessionID, "previous_session_id", prev)
	return e.State()
}

// SessionID identifies the current run.
func (e *Engine) SessionID() uuid.UUID {
	return e.state.SessionID
}

func (e *Engine) resolution(ev models.EventDefinition, c models.Choice) Resolution {
	return Resolution{Event: ev.Clone(), Choice: c, State: e.State()}
}

func (e *Engine) expect(p Phase, intent string) error {
	if e.state.Phase.Kind() != p {
		return e.wrongPhase(intent)
	}
	return nil
}

func (e *Engine) wrongPhase(intent string) error {
	return fmt.Errorf("%w: %s during %s", ErrWrongPhase, intent, e.state.Phase.Kind())
}

func (e *Engine) transition(next PhaseState) {
	from := e.state.Phase.Kind()
	e.state.Phase = next
	attrs := []any{
		"session_id", e.state.SessionID,
		"from", from, "to", next.Kind(),
		"stage", e.state.Stage, "sub_stage", e.state.SubStage,
	}
	if end, ok := next.(EndingPhase); ok {
		attrs = append(attrs, "ending", end.Ending, "death_reason", end.DeathReason, "cash", e.state.Stats.Cash)
	}
	e.log.Info("phase changed", attrs...)
}
