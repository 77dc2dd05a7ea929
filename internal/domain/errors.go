package domain

import "errors"

var (
	// ErrInputInvalid reports a word or seed list that cannot be mutated,
	// such as a word that is empty once its markers are removed.
	ErrInputInvalid = errors.New("invalid input")
	// ErrInvalidConfig reports run parameters outside their allowed range.
	ErrInvalidConfig = errors.New("invalid run configuration")
)

// ErrNoRuns is returned when a merge finds no run directories.
var ErrNoRuns = errors.New("no run directories found")
