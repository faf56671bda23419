package sampler

import "errors"

var (
	// ErrInvalidProbability indicates p outside the closed interval [0,1] or NaN.
	ErrInvalidProbability = errors.New("sampler: probability out of range")

	// ErrNeedRandSource indicates a stochastic draw (0 < p < 1) without an RNG.
	ErrNeedRandSource = errors.New("sampler: rng is required")

	// ErrBadBondCount indicates a negative candidate bond count.
	ErrBadBondCount = errors.New("sampler: negative bond count")
)
