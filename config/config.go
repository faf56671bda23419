package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvperc/lattice"
	"github.com/katalvlaran/lvperc/montecarlo"
	"github.com/katalvlaran/lvperc/observable"
	"github.com/katalvlaran/lvperc/sampler"
)

// ErrInvalidConfig classifies every validation failure of a run file.
var ErrInvalidConfig = errors.New("config: invalid run configuration")

// Range is an inclusive linear p range.
type Range struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Count int     `yaml:"count"`
}

// File is the YAML run file.
type File struct {
	Topology     string    `yaml:"topology"`
	Size         int       `yaml:"size"`
	PValues      []float64 `yaml:"p_values,omitempty"`
	PRange       *Range    `yaml:"p_range,omitempty"`
	TrialsPerP   int       `yaml:"trials_per_p"`
	Observable   string    `yaml:"observable"`
	OriginPolicy string    `yaml:"origin_policy,omitempty"`
	Normalize    bool      `yaml:"normalize"`
	BaseSeed     int64     `yaml:"base_seed"`
	Workers      int       `yaml:"workers,omitempty"`
}

// Default returns the run the batch scripts used: the 200×200 square grid,
// 30 values of p over [0.1, 0.9], 30 trials each, measuring the raw size of
// the cluster around the center vertex.
func Default() *File {
	return &File{
		Topology:     lattice.NameSquare2D,
		Size:         200,
		PRange:       &Range{Start: 0.1, Stop: 0.9, Count: 30},
		TrialsPerP:   30,
		Observable:   observable.NameLocal,
		OriginPolicy: lattice.NameOriginCenter,
	}
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML over Default: keys missing from the document keep their
// default, keys present keep their value, zero included. Unknown keys are
// rejected and an empty document yields Default. p_values replaces the
// default p_range.
func Parse(data []byte) (*File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	// Which of the two p keys the document itself sets.
	var p struct {
		PValues []float64 `yaml:"p_values"`
		PRange  *Range    `yaml:"p_range"`
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	switch {
	case p.PRange != nil:
		f.PRange = p.PRange // no default fields left behind
	case p.PValues != nil:
		f.PRange = nil
	}
	return f, nil
}

// Validate checks every field and returns all problems combined with
// multierr; each wraps ErrInvalidConfig, and size and trial problems also
// wrap lattice.ErrInvalidSize and montecarlo.ErrInvalidTrials.
func (f *File) Validate() error {
	var errs error
	bad := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	kind, err := lattice.ParseKind(f.Topology)
	if err != nil {
		bad("topology: %v", err)
	} else {
		least := lattice.MinGridSide
		if kind == lattice.CompleteGraph {
			least = lattice.MinCompleteOrder
		}
		if f.Size < least {
			bad("size %d < %d for %s: %w", f.Size, least, kind, lattice.ErrInvalidSize)
		}
	}

	switch {
	case f.PValues != nil && f.PRange != nil:
		bad("p_values and p_range are mutually exclusive")
	case f.PRange != nil:
		if f.PRange.Count < 1 {
			bad("p_range.count %d < 1", f.PRange.Count)
		}
		if err := sampler.ValidateProbability(f.PRange.Start); err != nil {
			bad("p_range.start: %v", err)
		}
		if err := sampler.ValidateProbability(f.PRange.Stop); err != nil {
			bad("p_range.stop: %v", err)
		}
	case len(f.PValues) == 0:
		bad("no p values")
	default:
		for i, p := range f.PValues {
			if err := sampler.ValidateProbability(p); err != nil {
				bad("p_values[%d]: %v", i, err)
			}
		}
	}

	if f.TrialsPerP < 1 {
		bad("trials_per_p %d: %w", f.TrialsPerP, montecarlo.ErrInvalidTrials)
	}
	if f.Workers < 0 {
		bad("workers %d < 0", f.Workers)
	}
	if _, err := f.selector(); err != nil {
		bad("%v", err)
	}
	return errs
}

// PSequence returns the swept p values, expanding p_range.
func (f *File) PSequence() ([]float64, error) {
	if f.PRange != nil {
		return montecarlo.Linspace(f.PRange.Start, f.PRange.Stop, f.PRange.Count)
	}
	return append([]float64(nil), f.PValues...), nil
}

// Build validates f and constructs the lattice and sweep definition.
func (f *File) Build() (*lattice.Lattice, montecarlo.Config, error) {
	if err := f.Validate(); err != nil {
		return nil, montecarlo.Config{}, err
	}
	kind, _ := lattice.ParseKind(f.Topology)
	lat, err := lattice.New(kind, f.Size)
	if err != nil {
		return nil, montecarlo.Config{}, fmt.Errorf("config: %w", err)
	}
	ps, err := f.PSequence()
	if err != nil {
		return nil, montecarlo.Config{}, fmt.Errorf("config: %w", err)
	}
	sel, _ := f.selector()
	return lat, montecarlo.Config{
		PValues:    ps,
		Trials:     f.TrialsPerP,
		Observable: sel,
		BaseSeed:   f.BaseSeed,
	}, nil
}

// Options returns the driver options implied by the file.
func (f *File) Options() []montecarlo.Option {
	if f.Workers > 0 {
		return []montecarlo.Option{montecarlo.WithWorkers(f.Workers)}
	}
	return nil
}

func (f *File) selector() (observable.Selector, error) {
	kind, err := observable.ParseKind(f.Observable)
	if err != nil {
		return observable.Selector{}, fmt.Errorf("observable: %w", err)
	}
	if kind == observable.GlobalLargestFraction {
		return observable.Global(), nil
	}
	origin, err := lattice.ParseOrigin(f.OriginPolicy)
	if err != nil {
		return observable.Selector{}, fmt.Errorf("origin_policy: %w", err)
	}
	return observable.Local(origin, f.Normalize), nil
}
