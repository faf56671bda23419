package montecarlo

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// Option configures a Driver via functional arguments.
// An invalid Option is recorded and surfaced by New as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of a Driver.
type Options struct {
	// Logger receives sweep lifecycle events. Defaults to zap.NewNop().
	Logger *zap.Logger

	// Workers bounds the number of trials running concurrently.
	// Defaults to runtime.GOMAXPROCS(0).
	Workers int

	// Metrics, if non-nil, receives trial and row counters.
	Metrics *Metrics

	// Verify re-checks every partition against its graph before it is
	// measured. Only the global observable builds a partition.
	Verify bool

	// Progress, if set, is called once per completed row from the goroutine
	// that called Run.
	Progress func(Row)

	err error
}

// DefaultOptions returns Options with a no-op logger, one worker per
// available CPU, no metrics and no verification.
func DefaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the sweep logger. A nil logger is an option violation.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log == nil {
			o.err = fmt.Errorf("WithLogger: nil logger: %w", ErrOptionViolation)
			return
		}
		o.Logger = log
	}
}

// WithWorkers bounds trial concurrency. n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("WithWorkers: n=%d < 1: %w", n, ErrOptionViolation)
			return
		}
		o.Workers = n
	}
}

// WithMetrics attaches Prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithVerify enables partition verification on every global trial.
func WithVerify() Option {
	return func(o *Options) { o.Verify = true }
}

// WithProgress installs a per-row callback.
func WithProgress(fn func(Row)) Option {
	return func(o *Options) { o.Progress = fn }
}
