package domain

import "errors"

// Sentinel errors used across layers. Wrap with context and test with errors.Is.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInputClosed         = errors.New("input closed before a valid answer")
	ErrCatalogUnavailable  = errors.New("exercise catalog unavailable")
	ErrCatalogMalformed    = errors.New("exercise catalog malformed")
	ErrNoExerciseAvailable = errors.New("no exercise available")
	ErrSessionComplete     = errors.New("session already complete")
)
