package montecarlo_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvperc/cluster"
	"github.com/katalvlaran/lvperc/lattice"
	"github.com/katalvlaran/lvperc/montecarlo"
	"github.com/katalvlaran/lvperc/observable"
	"github.com/katalvlaran/lvperc/sampler"
)

// DriverSuite exercises sweeps end to end.
type DriverSuite struct {
	suite.Suite
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverSuite))
}

func (s *DriverSuite) lattice(kind lattice.Kind, size int) *lattice.Lattice {
	l, err := lattice.New(kind, size)
	s.Require().NoError(err)
	return l
}

func (s *DriverSuite) run(l *lattice.Lattice, cfg montecarlo.Config, opts ...montecarlo.Option) *montecarlo.Result {
	d, err := montecarlo.New(l, cfg, opts...)
	s.Require().NoError(err)
	res, err := d.Run(context.Background())
	s.Require().NoError(err)
	s.Require().Len(res.Rows, len(cfg.PValues))
	return res
}

// TestCompleteClosedIsIsolated: K_50 at p=0 has 50 singletons, fraction 1/50.
func (s *DriverSuite) TestCompleteClosedIsIsolated() {
	res := s.run(s.lattice(lattice.CompleteGraph, 50), montecarlo.Config{
		PValues:    []float64{0},
		Trials:     3,
		Observable: observable.Global(),
	})
	s.InDelta(0.02, res.Rows[0].Mean, 1e-12)
	s.Zero(res.Rows[0].StdErr)
	s.Equal(3, res.Rows[0].Trials)
}

// TestSquareOpenIsConnected: every bond open joins the whole 3×3 grid.
func (s *DriverSuite) TestSquareOpenIsConnected() {
	res := s.run(s.lattice(lattice.Square2D, 3), montecarlo.Config{
		PValues:    []float64{1},
		Trials:     1,
		Observable: observable.Global(),
	})
	s.Equal(1.0, res.Rows[0].Mean)
}

// TestBoundaryClosedCountsSeeds: with no open bonds the reach is the left
// column itself.
func (s *DriverSuite) TestBoundaryClosedCountsSeeds() {
	res := s.run(s.lattice(lattice.Square2D, 4), montecarlo.Config{
		PValues:    []float64{0},
		Trials:     2,
		Observable: observable.Local(lattice.OriginBoundary, false),
	})
	s.Equal(4.0, res.Rows[0].Mean)
}

// TestCenterOpenNormalized: at p=1 the center reaches every vertex.
func (s *DriverSuite) TestCenterOpenNormalized() {
	for _, kind := range []lattice.Kind{lattice.Square2D, lattice.Cubic3D, lattice.Triangular2D, lattice.CompleteGraph} {
		res := s.run(s.lattice(kind, 5), montecarlo.Config{
			PValues:    []float64{1},
			Trials:     1,
			Observable: observable.Local(lattice.OriginCenter, true),
		})
		s.Equal(1.0, res.Rows[0].Mean, "%s", kind)
	}
}

// TestRowsFollowInputOrder keeps rows aligned with the p sequence.
func (s *DriverSuite) TestRowsFollowInputOrder() {
	ps := []float64{0.9, 0.1, 0.5, 0.5}
	res := s.run(s.lattice(lattice.Square2D, 6), montecarlo.Config{
		PValues:    ps,
		Trials:     4,
		Observable: observable.Global(),
		BaseSeed:   3,
	})
	for i, row := range res.Rows {
		s.Equal(ps[i], row.P)
	}
	s.NotEmpty(res.RunID)
}

// TestDeterministicAcrossWorkers: rows do not depend on the pool size.
func (s *DriverSuite) TestDeterministicAcrossWorkers() {
	l := s.lattice(lattice.Triangular2D, 10)
	cfg := montecarlo.Config{
		PValues:    []float64{0.2, 0.35, 0.5, 0.65},
		Trials:     25,
		Observable: observable.Global(),
		BaseSeed:   42,
	}
	serial := s.run(l, cfg, montecarlo.WithWorkers(1))
	wide := s.run(l, cfg, montecarlo.WithWorkers(8))
	again := s.run(l, cfg, montecarlo.WithWorkers(3))
	s.Equal(serial.Rows, wide.Rows)
	s.Equal(serial.Rows, again.Rows)
	s.NotEqual(serial.RunID, wide.RunID)
}

// TestSeedChangesRows: a different base seed draws different samples.
func (s *DriverSuite) TestSeedChangesRows() {
	l := s.lattice(lattice.Square2D, 10)
	cfg := montecarlo.Config{PValues: []float64{0.5}, Trials: 10, Observable: observable.Global(), BaseSeed: 1}
	a := s.run(l, cfg)
	cfg.BaseSeed = 2
	b := s.run(l, cfg)
	s.NotEqual(a.Rows[0].Mean, b.Rows[0].Mean)
}

// TestMonotoneInP: the mean is non-decreasing in p up to sampling noise.
func (s *DriverSuite) TestMonotoneInP() {
	res := s.run(s.lattice(lattice.Square2D, 16), montecarlo.Config{
		PValues:    []float64{0, 0.1, 0.3, 0.5, 0.7, 0.9, 1},
		Trials:     30,
		Observable: observable.Global(),
		BaseSeed:   9,
	})
	for i := 1; i < len(res.Rows); i++ {
		s.GreaterOrEqual(res.Rows[i].Mean, res.Rows[i-1].Mean-0.05, "p=%v", res.Rows[i].P)
	}
	s.Equal(1.0, res.Rows[len(res.Rows)-1].Mean)
}

// TestRangeOfObservables: global ∈ [1/|V|, 1], local normalized ∈ [seeds/|V|, 1].
func (s *DriverSuite) TestRangeOfObservables() {
	l := s.lattice(lattice.Cubic3D, 5)
	ps := []float64{0, 0.25, 0.5, 0.75, 1}
	n := float64(l.Order())

	global := s.run(l, montecarlo.Config{PValues: ps, Trials: 5, Observable: observable.Global()})
	for _, row := range global.Rows {
		s.GreaterOrEqual(row.Mean, 1/n-1e-12)
		s.LessOrEqual(row.Mean, 1.0)
	}

	local := s.run(l, montecarlo.Config{PValues: ps, Trials: 5, Observable: observable.Local(lattice.OriginBoundary, true)})
	face := float64(len(l.Boundary()))
	for _, row := range local.Rows {
		s.GreaterOrEqual(row.Mean, face/n-1e-12)
		s.LessOrEqual(row.Mean, 1.0)
	}
}

// TestMatchesRealize: a one-trial row measures exactly Realize's partition.
func (s *DriverSuite) TestMatchesRealize() {
	l := s.lattice(lattice.Square2D, 12)
	ps := []float64{0.45, 0.55}
	res := s.run(l, montecarlo.Config{PValues: ps, Trials: 1, Observable: observable.Global(), BaseSeed: 77}, montecarlo.WithVerify())
	for pi, p := range ps {
		r, err := montecarlo.Realize(l, p, sampler.TrialKey{Seed: 77, PIndex: pi, Trial: 0})
		s.Require().NoError(err)
		s.Equal(observable.LargestFraction(r.Partition), res.Rows[pi].Mean)
	}
}

// TestEmptyLattice measures 0 and warns once.
func (s *DriverSuite) TestEmptyLattice() {
	core, logs := observer.New(zapcore.WarnLevel)
	l, err := lattice.Custom(0, nil)
	s.Require().NoError(err)

	res := s.run(l, montecarlo.Config{PValues: []float64{0.5}, Trials: 2, Observable: observable.Global()},
		montecarlo.WithLogger(zap.New(core)))
	s.Zero(res.Rows[0].Mean)

	warned := logs.FilterMessageSnippet("empty lattice").All()
	s.Require().Len(warned, 1)
	s.Equal(lattice.ErrEmptyLattice.Error(), warned[0].ContextMap()["error"])
}

// TestProgressAndCancel: canceling from the progress hook stops the sweep
// after the current row and returns the finished rows.
func (s *DriverSuite) TestProgressAndCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var seen []float64
	d, err := montecarlo.New(s.lattice(lattice.Square2D, 5), montecarlo.Config{
		PValues:    []float64{0.1, 0.2, 0.3},
		Trials:     3,
		Observable: observable.Global(),
	}, montecarlo.WithProgress(func(r montecarlo.Row) {
		seen = append(seen, r.P)
		cancel()
	}))
	s.Require().NoError(err)

	res, err := d.Run(ctx)
	s.ErrorIs(err, context.Canceled)
	s.Len(res.Rows, 1)
	s.Equal([]float64{0.1}, seen)
}

// TestCanceledBeforeStart returns no rows.
func (s *DriverSuite) TestCanceledBeforeStart() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d, err := montecarlo.New(s.lattice(lattice.Square2D, 5), montecarlo.Config{
		PValues: []float64{0.5}, Trials: 1, Observable: observable.Global(),
	})
	s.Require().NoError(err)
	res, err := d.Run(ctx)
	s.ErrorIs(err, context.Canceled)
	s.Empty(res.Rows)
}

// TestNewValidation covers every rejected configuration.
func (s *DriverSuite) TestNewValidation() {
	l := s.lattice(lattice.Square2D, 3)
	ok := montecarlo.Config{PValues: []float64{0.5}, Trials: 1, Observable: observable.Global()}

	cases := []struct {
		name string
		lat  *lattice.Lattice
		cfg  func(c montecarlo.Config) montecarlo.Config
		opts []montecarlo.Option
		want error
	}{
		{"nil lattice", nil, func(c montecarlo.Config) montecarlo.Config { return c }, nil, montecarlo.ErrNilLattice},
		{"no p", l, func(c montecarlo.Config) montecarlo.Config { c.PValues = nil; return c }, nil, montecarlo.ErrNoPValues},
		{"p > 1", l, func(c montecarlo.Config) montecarlo.Config { c.PValues = []float64{0.5, 1.5}; return c }, nil, sampler.ErrInvalidProbability},
		{"p NaN", l, func(c montecarlo.Config) montecarlo.Config { c.PValues = []float64{math.NaN()}; return c }, nil, sampler.ErrInvalidProbability},
		{"zero trials", l, func(c montecarlo.Config) montecarlo.Config { c.Trials = 0; return c }, nil, montecarlo.ErrInvalidTrials},
		{"bad observable", l, func(c montecarlo.Config) montecarlo.Config { c.Observable.Kind = 9; return c }, nil, observable.ErrUnknownObservable},
		{"bad origin", l, func(c montecarlo.Config) montecarlo.Config {
			c.Observable = observable.Local(lattice.Origin(9), false)
			return c
		}, nil, lattice.ErrUnknownOrigin},
		{"zero workers", l, func(c montecarlo.Config) montecarlo.Config { return c }, []montecarlo.Option{montecarlo.WithWorkers(0)}, montecarlo.ErrOptionViolation},
		{"nil logger", l, func(c montecarlo.Config) montecarlo.Config { return c }, []montecarlo.Option{montecarlo.WithLogger(nil)}, montecarlo.ErrOptionViolation},
	}
	for _, tc := range cases {
		_, err := montecarlo.New(tc.lat, tc.cfg(ok), tc.opts...)
		s.ErrorIs(err, tc.want, tc.name)
	}
}

// TestConfigIsCopied: mutating the caller's slice does not change the sweep.
func (s *DriverSuite) TestConfigIsCopied() {
	ps := []float64{0.5}
	d, err := montecarlo.New(s.lattice(lattice.Square2D, 3), montecarlo.Config{PValues: ps, Trials: 1, Observable: observable.Global()})
	s.Require().NoError(err)
	ps[0] = 2
	s.Equal([]float64{0.5}, d.Config().PValues)
}

func TestTrialError(t *testing.T) {
	cause := cluster.ErrPartitionBroken
	err := error(&montecarlo.TrialError{P: 0.25, PIndex: 2, Trial: 7, Err: cause})
	require.ErrorIs(t, err, cluster.ErrPartitionBroken)
	require.Contains(t, err.Error(), "trial 7")
	require.Contains(t, err.Error(), "p=0.25")

	var te *montecarlo.TrialError
	require.True(t, errors.As(err, &te))
	require.Equal(t, 2, te.PIndex)
}
