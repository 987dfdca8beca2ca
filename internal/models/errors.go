package models

import "errors"

// Engine error taxonomy. Wrap with %w so callers can test with errors.Is.
var (
	ErrModelNotTrained  = errors.New("model not trained")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNoModelForLeague = errors.New("no model registered for league")
)
