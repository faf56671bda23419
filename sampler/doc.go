// Package sampler decides which candidate bonds are open in one realization.
//
// Each bond is an independent Bernoulli(p) draw. Draws are taken from a
// math/rand/v2 PCG stream whose 128-bit state is the TrialKey (base seed,
// p-index, trial index) passed through SplitMix64, so:
//
//   - the same (bond count, p, key) always yields the same open set;
//   - different keys get decorrelated streams with no shared state, which lets
//     trials run on any goroutine in any order.
//
// The open set is a bits.Bits mask indexed by candidate bond position.
// p = 0 and p = 1 are exact and consume no randomness.
//
// Errors:
//
//   - ErrInvalidProbability: p outside [0,1] or NaN.
//   - ErrNeedRandSource:     SampleWith called with a nil RNG and 0 < p < 1.
//   - ErrBadBondCount:       negative bond count.
package sampler
