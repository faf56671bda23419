package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvperc/config"
	"github.com/katalvlaran/lvperc/export"
	"github.com/katalvlaran/lvperc/montecarlo"
)

// run is the app Action. Returned errors are always wrapped: a bare multierr
// value is a cli.MultiError, which app.Run handles by exiting the process.
func run(cCtx *cli.Context) error {
	log, err := newLogger(cCtx.Bool(DebugFlag))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	f, err := loadFile(cCtx)
	if err != nil {
		return err
	}
	lat, cfg, err := f.Build()
	if err != nil {
		for _, e := range multierr.Errors(err) {
			log.Error("bad run configuration", zap.Error(e))
		}
		return fmt.Errorf("config: %w", err)
	}

	opts := append(f.Options(), montecarlo.WithLogger(log))
	if cCtx.Bool(VerifyFlag) {
		opts = append(opts, montecarlo.WithVerify())
	}
	if addr := cCtx.String(MetricsAddrFlag); addr != "" {
		reg := prometheus.NewRegistry()
		m, err := montecarlo.NewMetrics(reg)
		if err != nil {
			return err
		}
		opts = append(opts, montecarlo.WithMetrics(m))
		stop := serveMetrics(addr, reg, log)
		defer stop()
	}

	d, err := montecarlo.New(lat, cfg, opts...)
	if err != nil {
		return err
	}
	log.Info("critical probability", zap.Stringer("lattice", lat), zap.Float64("p_c", lat.CriticalProbability()))

	ctx, cancel := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	res, runErr := d.Run(ctx)

	// Rows finished before a failure are still written.
	if err := writeTable(cCtx, cfg.Observable.Column(), res.Rows); err != nil {
		return fmt.Errorf("sweep: %w", multierr.Append(runErr, err))
	}
	if runErr != nil {
		return fmt.Errorf("sweep: %w", runErr)
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadFile reads --config (or the defaults) and applies the flags that were
// set explicitly.
func loadFile(cCtx *cli.Context) (*config.File, error) {
	f := config.Default()
	if path := cCtx.String(ConfigFlag); path != "" {
		var err error
		if f, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if cCtx.IsSet(TopologyFlag) {
		f.Topology = cCtx.String(TopologyFlag)
	}
	if cCtx.IsSet(SizeFlag) {
		f.Size = cCtx.Int(SizeFlag)
	}
	if cCtx.IsSet(PValuesFlag) {
		f.PValues, f.PRange = cCtx.Float64Slice(PValuesFlag), nil
	}
	if cCtx.IsSet(PStartFlag) || cCtx.IsSet(PStopFlag) || cCtx.IsSet(PCountFlag) {
		r := config.Range{}
		if f.PRange != nil {
			r = *f.PRange
		}
		if cCtx.IsSet(PStartFlag) {
			r.Start = cCtx.Float64(PStartFlag)
		}
		if cCtx.IsSet(PStopFlag) {
			r.Stop = cCtx.Float64(PStopFlag)
		}
		if cCtx.IsSet(PCountFlag) {
			r.Count = cCtx.Int(PCountFlag)
		}
		f.PRange = &r
		if !cCtx.IsSet(PValuesFlag) {
			f.PValues = nil
		}
	}
	if cCtx.IsSet(TrialsFlag) {
		f.TrialsPerP = cCtx.Int(TrialsFlag)
	}
	if cCtx.IsSet(ObservableFlag) {
		f.Observable = cCtx.String(ObservableFlag)
	}
	if cCtx.IsSet(OriginFlag) {
		f.OriginPolicy = cCtx.String(OriginFlag)
	}
	if cCtx.IsSet(NormalizeFlag) {
		f.Normalize = cCtx.Bool(NormalizeFlag)
	}
	if cCtx.IsSet(SeedFlag) {
		f.BaseSeed = cCtx.Int64(SeedFlag)
	}
	if cCtx.IsSet(WorkersFlag) {
		f.Workers = cCtx.Int(WorkersFlag)
	}
	return f, nil
}

// createOutput opens the --out file.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func writeTable(cCtx *cli.Context, column string, rows []montecarlo.Row) (err error) {
	var w io.Writer = cCtx.App.Writer
	if path := cCtx.String(OutFlag); path != "" {
		file, ferr := createOutput(path)
		if ferr != nil {
			return ferr
		}
		defer multierr.AppendInvoke(&err, multierr.Close(file))
		w = file
	}
	opts := []export.Option{export.WithPrecision(cCtx.Int(PrecisionFlag))}
	if cCtx.Bool(StdErrFlag) {
		opts = append(opts, export.WithStdErr())
	}
	return export.WriteCSV(w, column, rows, opts...)
}

// serveMetrics exposes reg on addr until the returned stop is called.
func serveMetrics(addr string, reg *prometheus.Registry, log *zap.Logger) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", zap.Error(err))
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
