package observable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvperc/cluster"
	"github.com/katalvlaran/lvperc/lattice"
)

// ErrUnknownObservable indicates an unrecognized observable kind or name.
var ErrUnknownObservable = errors.New("observable: unknown observable")

// Kind selects the order parameter.
type Kind int

const (
	// GlobalLargestFraction is largest component size / |V|.
	GlobalLargestFraction Kind = iota
	// LocalClusterFromOrigin is the size of the cluster grown from the origin seeds.
	LocalClusterFromOrigin
)

// Observable names accepted by ParseKind.
const (
	NameGlobal = "global_largest_component_fraction"
	NameLocal  = "local_cluster_from_origin"
)

// String returns the configuration name of k.
func (k Kind) String() string {
	switch k {
	case GlobalLargestFraction:
		return NameGlobal
	case LocalClusterFromOrigin:
		return NameLocal
	default:
		return fmt.Sprintf("observable(%d)", int(k))
	}
}

// ParseKind maps a configuration name (case-insensitive) to its Kind. The
// short forms "global" and "local" are accepted as well.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameGlobal, "global":
		return GlobalLargestFraction, nil
	case NameLocal, "local":
		return LocalClusterFromOrigin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownObservable, name)
	}
}

// Selector is the observable configuration of a sweep.
type Selector struct {
	Kind Kind
	// Origin picks the seeds of the local observable; ignored for global.
	Origin lattice.Origin
	// Normalize divides the local cluster size by |V|.
	Normalize bool
}

// Global returns the selector of the largest-component fraction.
func Global() Selector {
	return Selector{Kind: GlobalLargestFraction}
}

// Local returns the selector of the origin cluster size.
func Local(origin lattice.Origin, normalize bool) Selector {
	return Selector{Kind: LocalClusterFromOrigin, Origin: origin, Normalize: normalize}
}

// Validate checks the kind and, for the local observable, the origin policy.
func (s Selector) Validate() error {
	switch s.Kind {
	case GlobalLargestFraction:
		return nil
	case LocalClusterFromOrigin:
		switch s.Origin {
		case lattice.OriginCenter, lattice.OriginBoundary:
			return nil
		default:
			return fmt.Errorf("observable: %w: %d", lattice.ErrUnknownOrigin, int(s.Origin))
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownObservable, int(s.Kind))
	}
}

// Column returns the two-column table header used for this observable's
// values: "largest_components" for global, "mean_cluster_size" for local.
func (s Selector) Column() string {
	if s.Kind == GlobalLargestFraction {
		return "largest_components"
	}
	return "mean_cluster_size"
}

// String renders the selector, e.g. "local_cluster_from_origin/single_center_vertex".
func (s Selector) String() string {
	if s.Kind != LocalClusterFromOrigin {
		return s.Kind.String()
	}
	out := s.Kind.String() + "/" + s.Origin.String()
	if s.Normalize {
		out += "/normalized"
	}
	return out
}

// LargestFraction returns the largest component size divided by the number
// of vertices, 0 for an empty partition.
func LargestFraction(p *cluster.Partition) float64 {
	n := p.Order()
	if n == 0 {
		return 0
	}
	_, size := p.Largest()
	return float64(size) / float64(n)
}

// ReachSize returns the reach size, divided by order when normalize is set.
// Normalizing over order 0 returns 0.
func ReachSize(r *cluster.ReachSet, order int, normalize bool) float64 {
	if !normalize {
		return float64(r.Size())
	}
	if order == 0 {
		return 0
	}
	return float64(r.Size()) / float64(order)
}
