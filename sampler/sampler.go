package sampler

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/soniakeys/bits"
)

// Probability bounds, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// ValidateProbability returns ErrInvalidProbability unless p ∈ [0,1].
func ValidateProbability(p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("p=%g not in [%.1f,%.1f]: %w", p, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	return nil
}

// Sample draws the open-bond mask for bondCount candidate bonds at
// probability p, using the stream of key.
func Sample(bondCount int, p float64, key TrialKey) (bits.Bits, error) {
	// Exact cases never touch an RNG; skip building one.
	if p == MinProbability || p == MaxProbability {
		return SampleWith(nil, bondCount, p)
	}
	return SampleWith(Stream(key), bondCount, p)
}

// SampleWith draws the open-bond mask from rng. Bond i is open iff the i-th
// Float64 draw is < p, so draws are consumed in candidate order, one per bond.
// rng may be nil when p is exactly 0 or 1.
//
// Complexity: O(bondCount) time, O(bondCount/64) words of memory.
func SampleWith(rng *rand.Rand, bondCount int, p float64) (bits.Bits, error) {
	if bondCount < 0 {
		return bits.Bits{}, fmt.Errorf("SampleWith: n=%d: %w", bondCount, ErrBadBondCount)
	}
	if err := ValidateProbability(p); err != nil {
		return bits.Bits{}, fmt.Errorf("SampleWith: %w", err)
	}

	open := bits.New(bondCount)
	switch {
	case p == MinProbability:
		return open, nil
	case p == MaxProbability:
		if bondCount > 0 {
			open.SetAll()
		}
		return open, nil
	case rng == nil:
		return bits.Bits{}, fmt.Errorf("SampleWith: p=%g: %w", p, ErrNeedRandSource)
	}

	for i := 0; i < bondCount; i++ {
		if rng.Float64() < p {
			open.SetBit(i, 1)
		}
	}
	return open, nil
}

// OpenCount returns the number of set bits in an open-bond mask.
func OpenCount(open bits.Bits) int {
	n := 0
	for i := 0; i < open.Num; i++ {
		n += open.Bit(i)
	}
	return n
}
