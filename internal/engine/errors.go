package engine

import "errors"

var (
	// ErrWrongPhase is returned for an intent the current phase does not accept.
	ErrWrongPhase = errors.New("intent not allowed in current phase")
	// ErrInvalidChoice is returned for a label that is not on the current event.
	ErrInvalidChoice = errors.New("choice not on current event")
	// ErrInsufficientCash is returned when a configuration would leave
	// negative cash before the final stage.
	ErrInsufficientCash = errors.New("configuration leaves negative cash")
	// ErrInvalidAssets is returned for unknown options or negative amounts.
	ErrInvalidAssets = errors.New("invalid asset configuration")
)
