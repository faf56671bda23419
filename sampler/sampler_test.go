package sampler_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/soniakeys/bits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvperc/sampler"
)

// sameMask reports whether two masks have the same length and bits.
func sameMask(a, b bits.Bits) bool {
	if a.Num != b.Num {
		return false
	}
	for i := 0; i < a.Num; i++ {
		if a.Bit(i) != b.Bit(i) {
			return false
		}
	}
	return true
}

// TestSample_Degenerate verifies p=0 opens nothing and p=1 opens everything,
// without an RNG.
func TestSample_Degenerate(t *testing.T) {
	key := sampler.TrialKey{Seed: 7}

	none, err := sampler.Sample(100, 0, key)
	require.NoError(t, err)
	assert.Equal(t, 0, sampler.OpenCount(none))
	assert.True(t, none.AllZeros())

	all, err := sampler.Sample(100, 1, key)
	require.NoError(t, err)
	assert.Equal(t, 100, sampler.OpenCount(all))

	empty, err := sampler.Sample(0, 1, key)
	require.NoError(t, err)
	assert.Equal(t, 0, sampler.OpenCount(empty))

	viaNil, err := sampler.SampleWith(nil, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, sampler.OpenCount(viaNil))
}

// TestSample_Errors covers probability, rng and count validation.
func TestSample_Errors(t *testing.T) {
	for _, p := range []float64{-0.1, 1.0000001, math.NaN(), math.Inf(1)} {
		_, err := sampler.Sample(10, p, sampler.TrialKey{})
		require.ErrorIs(t, err, sampler.ErrInvalidProbability, "p=%v", p)
	}
	_, err := sampler.SampleWith(nil, 10, 0.5)
	require.ErrorIs(t, err, sampler.ErrNeedRandSource)
	_, err = sampler.Sample(-1, 0.5, sampler.TrialKey{})
	require.ErrorIs(t, err, sampler.ErrBadBondCount)
	require.NoError(t, sampler.ValidateProbability(0))
	require.NoError(t, sampler.ValidateProbability(1))
}

// TestSample_Reproducible checks that equal keys give equal masks and that
// changing any key component changes the stream.
func TestSample_Reproducible(t *testing.T) {
	const n, p = 2000, 0.5
	base := sampler.TrialKey{Seed: 42, PIndex: 3, Trial: 9}

	a, err := sampler.Sample(n, p, base)
	require.NoError(t, err)
	b, err := sampler.Sample(n, p, base)
	require.NoError(t, err)
	require.True(t, sameMask(a, b), "same key must give same open set")

	for _, other := range []sampler.TrialKey{
		{Seed: 43, PIndex: 3, Trial: 9},
		{Seed: 42, PIndex: 4, Trial: 9},
		{Seed: 42, PIndex: 3, Trial: 10},
		{Seed: 42, PIndex: 9, Trial: 3},
	} {
		c, err := sampler.Sample(n, p, other)
		require.NoError(t, err)
		assert.False(t, sameMask(a, c), "key %+v collides with %+v", other, base)
		bh, bl := base.Seeds()
		oh, ol := other.Seeds()
		assert.False(t, bh == oh && bl == ol, "key %+v shares the state of %+v", other, base)
	}
}

// TestStream_DistinctAcrossSweep covers every key of a 100 p × 1000 trial
// sweep: no two keys share a PCG state or the first word of their stream.
func TestStream_DistinctAcrossSweep(t *testing.T) {
	const points, trials = 100, 1000
	type state struct{ hi, lo uint64 }
	states := make(map[state]sampler.TrialKey, points*trials)
	firsts := make(map[uint64]sampler.TrialKey, points*trials)
	for pi := 0; pi < points; pi++ {
		for tr := 0; tr < trials; tr++ {
			key := sampler.TrialKey{PIndex: pi, Trial: tr}
			hi, lo := key.Seeds()
			prev, dup := states[state{hi, lo}]
			require.False(t, dup, "keys %+v and %+v share a state", prev, key)
			states[state{hi, lo}] = key

			w := sampler.Stream(key).Uint64()
			prev, dup = firsts[w]
			require.False(t, dup, "keys %+v and %+v start with the same word", prev, key)
			firsts[w] = key
		}
	}
}

// TestSample_DistinctMasks checks keys from one sweep draw different open
// sets over a realistic bond count.
func TestSample_DistinctMasks(t *testing.T) {
	const n, p = 10000, 0.5
	a, err := sampler.Sample(n, p, sampler.TrialKey{PIndex: 9, Trial: 437})
	require.NoError(t, err)
	b, err := sampler.Sample(n, p, sampler.TrialKey{PIndex: 13, Trial: 626})
	require.NoError(t, err)
	require.False(t, sameMask(a, b))
}

// TestSampleWith_DrawOrder pins bond i to the i-th Float64 of the stream.
func TestSampleWith_DrawOrder(t *testing.T) {
	const n, p = 64, 0.3
	open, err := sampler.SampleWith(rand.New(rand.NewPCG(5, 7)), n, p)
	require.NoError(t, err)

	ref := rand.New(rand.NewPCG(5, 7))
	for i := 0; i < n; i++ {
		want := 0
		if ref.Float64() < p {
			want = 1
		}
		require.Equal(t, want, open.Bit(i), "bond %d", i)
	}
}

// TestSample_Frequency checks the open fraction is close to p over many bonds.
func TestSample_Frequency(t *testing.T) {
	const n = 200000
	for pi, p := range []float64{0.1, 0.5, 0.9} {
		open, err := sampler.Sample(n, p, sampler.TrialKey{Seed: 1, PIndex: pi})
		require.NoError(t, err)
		frac := float64(sampler.OpenCount(open)) / n
		// 5σ band for a binomial proportion.
		tol := 5 * math.Sqrt(p*(1-p)/n)
		assert.InDelta(t, p, frac, tol, "p=%v", p)
	}
}
