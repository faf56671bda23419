package montecarlo

import (
	"errors"
	"fmt"
)

// Sentinel errors for sweep configuration.
var (
	// ErrNilLattice is returned when no lattice is supplied.
	ErrNilLattice = errors.New("montecarlo: lattice is nil")

	// ErrNoPValues is returned for an empty p sequence.
	ErrNoPValues = errors.New("montecarlo: no p values")

	// ErrInvalidTrials is returned when the trial count is < 1.
	ErrInvalidTrials = errors.New("montecarlo: trials per p must be ≥ 1")

	// ErrInvalidRange is returned by Linspace for a bad count or NaN bounds.
	ErrInvalidRange = errors.New("montecarlo: invalid linear range")

	// ErrTrialPanic wraps a panic recovered inside a trial.
	ErrTrialPanic = errors.New("montecarlo: trial panicked")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("montecarlo: invalid option supplied")
)

// TrialError reports the trial that aborted a p batch.
type TrialError struct {
	P      float64
	PIndex int
	Trial  int
	Err    error
}

// Error implements error.
func (e *TrialError) Error() string {
	return fmt.Sprintf("montecarlo: trial %d at p=%g (p-index %d): %v", e.Trial, e.P, e.PIndex, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *TrialError) Unwrap() error { return e.Err }
