package montecarlo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvperc/cluster"
	"github.com/katalvlaran/lvperc/lattice"
	"github.com/katalvlaran/lvperc/observable"
	"github.com/katalvlaran/lvperc/sampler"
)

// Driver runs a validated sweep over one lattice.
// A Driver is immutable after New; Run may be called repeatedly and each
// call reproduces the same rows.
type Driver struct {
	lat   *lattice.Lattice
	cfg   Config
	seeds []int // resolved origin seeds; nil for the global observable
	opts  Options

	// trial computes the sample of trial t at p-index pi.
	trial func(pi int, p float64, t int) (float64, error)
}

// New validates cfg against lat and resolves the origin seeds of a local
// observable.
//
// Origins that fall outside the lattice and empty lattices are not errors:
// they are logged at Warn and the affected observable measures 0.
func New(lat *lattice.Lattice, cfg Config, opts ...Option) (*Driver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if lat == nil {
		return nil, ErrNilLattice
	}
	if len(cfg.PValues) == 0 {
		return nil, ErrNoPValues
	}
	for i, p := range cfg.PValues {
		if err := sampler.ValidateProbability(p); err != nil {
			return nil, fmt.Errorf("New: p-index %d: %w", i, err)
		}
	}
	if cfg.Trials < 1 {
		return nil, fmt.Errorf("New: trials=%d: %w", cfg.Trials, ErrInvalidTrials)
	}
	if err := cfg.Observable.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	d := &Driver{
		lat:  lat,
		cfg:  cfg,
		opts: o,
	}
	d.trial = d.sample
	// Keep the caller's slice out of reach.
	d.cfg.PValues = append([]float64(nil), cfg.PValues...)

	log := o.Logger.With(zap.Stringer("lattice", lat))
	if lat.Empty() {
		log.Warn("sweeping an empty lattice, every observable is 0", zap.Error(lattice.ErrEmptyLattice))
	}
	if cfg.Observable.Kind == observable.LocalClusterFromOrigin {
		seeds, err := lat.Origins(cfg.Observable.Origin)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		if err := cluster.ValidateSeeds(lat.Order(), seeds); err != nil {
			log.Warn("origin seeds outside the lattice are ignored",
				zap.Stringer("origin", cfg.Observable.Origin), zap.Error(err))
		}
		d.seeds = seeds
	}
	return d, nil
}

// Lattice returns the swept lattice.
func (d *Driver) Lattice() *lattice.Lattice { return d.lat }

// Config returns a copy of the sweep definition.
func (d *Driver) Config() Config {
	cfg := d.cfg
	cfg.PValues = append([]float64(nil), d.cfg.PValues...)
	return cfg
}

// Run executes the sweep. Rows are returned in p order. On error the rows
// completed so far are returned with it: a *TrialError if a trial failed,
// or ctx.Err() if ctx was canceled.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	res := &Result{
		RunID: uuid.NewString(),
		Rows:  make([]Row, 0, len(d.cfg.PValues)),
	}
	log := d.opts.Logger.With(
		zap.String("run", res.RunID),
		zap.Stringer("lattice", d.lat),
		zap.Stringer("observable", d.cfg.Observable),
	)
	log.Info("sweep started",
		zap.Int("points", len(d.cfg.PValues)),
		zap.Int("trials", d.cfg.Trials),
		zap.Int("workers", d.opts.Workers),
		zap.Int64("seed", d.cfg.BaseSeed),
	)
	started := time.Now()

	for pi, p := range d.cfg.PValues {
		if err := ctx.Err(); err != nil {
			log.Warn("sweep canceled", zap.Int("rows", len(res.Rows)), zap.Error(err))
			return res, err
		}
		row, err := d.batch(ctx, pi, p)
		if err != nil {
			log.Error("batch aborted", zap.Float64("p", p), zap.Int("p_index", pi), zap.Error(err))
			return res, err
		}
		res.Rows = append(res.Rows, row)
		d.opts.Metrics.observeRow(d.lat.Kind().String())
		log.Debug("row done",
			zap.Float64("p", row.P),
			zap.Float64("mean", row.Mean),
			zap.Float64("stderr", row.StdErr),
		)
		if d.opts.Progress != nil {
			d.opts.Progress(row)
		}
	}

	log.Info("sweep finished", zap.Int("rows", len(res.Rows)), zap.Duration("elapsed", time.Since(started)))
	return res, nil
}

// batch runs every trial of one p and reduces the samples in trial order.
func (d *Driver) batch(ctx context.Context, pi int, p float64) (Row, error) {
	n := d.cfg.Trials
	samples := make([]float64, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.Workers)
	dispatched := 0
	for t := 0; t < n; t++ {
		if gctx.Err() != nil {
			break
		}
		dispatched++
		g.Go(func() error {
			v, err := d.measure(pi, p, t)
			if err != nil {
				return &TrialError{P: p, PIndex: pi, Trial: t, Err: err}
			}
			samples[t] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Row{}, err
	}
	if dispatched < n {
		// Canceled from outside before every trial was dispatched.
		return Row{}, ctx.Err()
	}

	mean, stderr := meanStdErr(samples)
	return Row{P: p, Mean: mean, StdErr: stderr, Trials: n}, nil
}

// measure runs one trial, converting a panic into ErrTrialPanic.
func (d *Driver) measure(pi int, p float64, t int) (v float64, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTrialPanic, r)
		}
		d.opts.Metrics.observeTrial(d.lat.Kind().String(), time.Since(start), err)
	}()
	return d.trial(pi, p, t)
}

// sample draws the realization of TrialKey{BaseSeed, pi, t} and measures
// the configured observable on it.
func (d *Driver) sample(pi int, p float64, t int) (float64, error) {
	key := sampler.TrialKey{Seed: d.cfg.BaseSeed, PIndex: pi, Trial: t}
	_, g, err := sampleGraph(d.lat, p, key)
	if err != nil {
		return 0, err
	}

	switch d.cfg.Observable.Kind {
	case observable.LocalClusterFromOrigin:
		r := cluster.Reach(g, d.seeds)
		return observable.ReachSize(r, g.Order(), d.cfg.Observable.Normalize), nil
	default:
		part := cluster.Components(g)
		if d.opts.Verify {
			if err := part.Verify(g); err != nil {
				return 0, err
			}
		}
		return observable.LargestFraction(part), nil
	}
}

// meanStdErr returns the mean and its standard error, summing in slice
// order. A single sample has zero standard error.
func meanStdErr(xs []float64) (mean, stderr float64) {
	n := float64(len(xs))
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean = sum / n
	if len(xs) < 2 {
		return mean, 0
	}
	var ss float64
	for _, x := range xs {
		dx := x - mean
		ss += dx * dx
	}
	return mean, math.Sqrt(ss/(n-1)) / math.Sqrt(n)
}
