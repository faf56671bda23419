package montecarlo

import "github.com/katalvlaran/lvperc/observable"

// Config is the sweep definition.
type Config struct {
	// PValues are swept in the given order; each must lie in [0,1].
	PValues []float64
	// Trials is the number of independent realizations per p (N ≥ 1).
	Trials int
	// Observable selects the order parameter.
	Observable observable.Selector
	// BaseSeed keys every per-trial random stream.
	BaseSeed int64
}

// Row is one sweep point.
type Row struct {
	// P is the bond probability.
	P float64
	// Mean is the arithmetic mean of the Trials samples.
	Mean float64
	// StdErr is the standard error of Mean (0 when Trials == 1).
	StdErr float64
	// Trials is the number of samples averaged.
	Trials int
}

// Result is the output of Driver.Run.
type Result struct {
	// RunID identifies the sweep in logs.
	RunID string
	// Rows holds one row per completed p, in input order.
	Rows []Row
}
