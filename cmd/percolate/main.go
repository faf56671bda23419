// Command percolate runs a bond percolation sweep and writes the
// (p, observable) table as CSV.
//
//	percolate --topology square2d --size 200 --p-start 0.1 --p-stop 0.9 --p-count 30
//	percolate --config run.yaml --out square.csv --stderr
//
// Every flag can also be set through its PERCOLATE_* environment variable;
// a .env file in the working directory is loaded first. Flags override the
// values of --config.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// Flag names.
const (
	ConfigFlag      = "config"
	TopologyFlag    = "topology"
	SizeFlag        = "size"
	PValuesFlag     = "p-values"
	PStartFlag      = "p-start"
	PStopFlag       = "p-stop"
	PCountFlag      = "p-count"
	TrialsFlag      = "trials"
	ObservableFlag  = "observable"
	OriginFlag      = "origin"
	NormalizeFlag   = "normalize"
	SeedFlag        = "seed"
	WorkersFlag     = "workers"
	VerifyFlag      = "verify"
	OutFlag         = "out"
	StdErrFlag      = "stderr"
	PrecisionFlag   = "precision"
	DebugFlag       = "debug"
	MetricsAddrFlag = "metrics-addr"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "percolate:", err)
		os.Exit(1)
	}
}

func env(name string) []string { return []string{"PERCOLATE_" + name} }

func newApp() *cli.App {
	return &cli.App{
		Name:  "percolate",
		Usage: "Monte Carlo bond percolation sweeps on lattices",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: ConfigFlag, Aliases: []string{"c"}, Usage: "YAML run file", EnvVars: env("CONFIG")},
			&cli.StringFlag{Name: TopologyFlag, Usage: "square2d | cubic3d | triangular2d | complete", EnvVars: env("TOPOLOGY")},
			&cli.IntFlag{Name: SizeFlag, Usage: "side length L, or n for complete", EnvVars: env("SIZE")},
			&cli.Float64SliceFlag{Name: PValuesFlag, Usage: "explicit p values (replaces the range)", EnvVars: env("P_VALUES")},
			&cli.Float64Flag{Name: PStartFlag, Usage: "first p of the range", EnvVars: env("P_START")},
			&cli.Float64Flag{Name: PStopFlag, Usage: "last p of the range", EnvVars: env("P_STOP")},
			&cli.IntFlag{Name: PCountFlag, Usage: "number of p values in the range", EnvVars: env("P_COUNT")},
			&cli.IntFlag{Name: TrialsFlag, Aliases: []string{"n"}, Usage: "trials per p", EnvVars: env("TRIALS")},
			&cli.StringFlag{Name: ObservableFlag, Usage: "global_largest_component_fraction | local_cluster_from_origin", EnvVars: env("OBSERVABLE")},
			&cli.StringFlag{Name: OriginFlag, Usage: "single_center_vertex | full_boundary_face_or_edge", EnvVars: env("ORIGIN")},
			&cli.BoolFlag{Name: NormalizeFlag, Usage: "divide the local cluster size by |V|", EnvVars: env("NORMALIZE")},
			&cli.Int64Flag{Name: SeedFlag, Usage: "base seed", EnvVars: env("SEED")},
			&cli.IntFlag{Name: WorkersFlag, Usage: "concurrent trials (0 = one per CPU)", EnvVars: env("WORKERS")},
			&cli.BoolFlag{Name: VerifyFlag, Usage: "verify every partition (slow)", EnvVars: env("VERIFY")},
			&cli.StringFlag{Name: OutFlag, Aliases: []string{"o"}, Usage: "CSV output path (default stdout)", EnvVars: env("OUT")},
			&cli.BoolFlag{Name: StdErrFlag, Usage: "add a stderr column", EnvVars: env("STDERR")},
			&cli.IntFlag{Name: PrecisionFlag, Value: -1, Usage: "decimal places (-1 = shortest exact)", EnvVars: env("PRECISION")},
			&cli.BoolFlag{Name: DebugFlag, Usage: "development logging", EnvVars: env("DEBUG")},
			&cli.StringFlag{Name: MetricsAddrFlag, Usage: "serve Prometheus /metrics on this address during the sweep", EnvVars: env("METRICS_ADDR")},
		},
		Action: run,
	}
}
