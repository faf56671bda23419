// SPDX-License-Identifier: MIT
// Package: lvperc/sampler
//
// rng.go — deterministic per-trial random streams.
//
// Goals:
//   - Determinism: same TrialKey ⇒ identical stream on every platform.
//   - Independence: no process-wide RNG; every trial owns its *rand.Rand.
//   - Distinctness: the full key reaches the 128-bit PCG state, so two keys
//     with PIndex, Trial in [0, 2³²) never share a stream.
//
// Concurrency:
//   - rand.Rand is NOT goroutine-safe. Call Stream once per trial.

package sampler

import "math/rand/v2"

// TrialKey identifies one (p, trial) realization within a run.
type TrialKey struct {
	// Seed is the run's base seed.
	Seed int64
	// PIndex is the position of p in the sweep, in [0, 2³²).
	PIndex int
	// Trial is the trial index within the p batch, in [0, 2³²).
	Trial int
}

// Seeds returns the two words of the key's PCG state:
// hi = splitmix(Seed), lo = splitmix(PIndex<<32 | Trial).
// splitmix is a bijection on uint64, so distinct keys map to distinct states.
func (k TrialKey) Seeds() (hi, lo uint64) {
	hi = splitmix(uint64(k.Seed))
	lo = splitmix(uint64(uint32(k.PIndex))<<32 | uint64(uint32(k.Trial)))
	return hi, lo
}

// Stream returns a fresh RNG for key.
func Stream(key TrialKey) *rand.Rand {
	return rand.New(rand.NewPCG(key.Seeds()))
}

// splitmix is one SplitMix64 step: golden-ratio increment, then the
// finalizer (Vigna 2014 constants). Every stage is invertible.
//
// Complexity: O(1).
func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
