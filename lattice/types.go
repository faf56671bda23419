package lattice

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects a lattice topology.
type Kind int

const (
	// Square2D is the L×L square grid.
	Square2D Kind = iota
	// Cubic3D is the L×L×L cubic grid.
	Cubic3D
	// Triangular2D is the L×L triangular grid (square grid plus alternating diagonals).
	Triangular2D
	// CompleteGraph is K_n.
	CompleteGraph
	// CustomGraph is an arbitrary graph built by Custom.
	CustomGraph
)

// Topology names accepted by ParseKind, as used in run configuration files.
const (
	NameSquare2D      = "square2d"
	NameCubic3D       = "cubic3d"
	NameTriangular2D  = "triangular2d"
	NameCompleteGraph = "complete"
	NameCustomGraph   = "custom"
)

// Minimum sizes per topology.
const (
	// MinGridSide is the smallest side length of a grid topology. A side of 1
	// has no axis neighbors along that dimension.
	MinGridSide = 2
	// MinCompleteOrder is the smallest vertex count for Complete.
	MinCompleteOrder = 1
)

// Capacity limits. Vertex ids are int32, and adjacency stores both directions
// of every bond in one int32-indexed arena.
const (
	// MaxOrder is the largest vertex count of any lattice.
	MaxOrder = math.MaxInt32
	// MaxBonds is the largest candidate bond count of any lattice.
	MaxBonds = math.MaxInt32 / 2
)

// String returns the configuration name of k.
func (k Kind) String() string {
	switch k {
	case Square2D:
		return NameSquare2D
	case Cubic3D:
		return NameCubic3D
	case Triangular2D:
		return NameTriangular2D
	case CompleteGraph:
		return NameCompleteGraph
	case CustomGraph:
		return NameCustomGraph
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a configuration name (case-insensitive) to its Kind.
// CustomGraph cannot be parsed: custom lattices are built from code only.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameSquare2D:
		return Square2D, nil
	case NameCubic3D:
		return Cubic3D, nil
	case NameTriangular2D:
		return Triangular2D, nil
	case NameCompleteGraph:
		return CompleteGraph, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
	}
}

// Bond is an undirected candidate edge between two vertex ids, U < V for
// every built-in topology.
type Bond struct {
	U, V int32
}

// Origin selects the seed vertices of the local observable.
type Origin int

const (
	// OriginCenter seeds from the single center vertex.
	OriginCenter Origin = iota
	// OriginBoundary seeds from the full left column (2D) or the k=0 face (3D).
	OriginBoundary
)

// Origin policy names accepted by ParseOrigin.
const (
	NameOriginCenter   = "single_center_vertex"
	NameOriginBoundary = "full_boundary_face_or_edge"
)

// String returns the configuration name of o.
func (o Origin) String() string {
	switch o {
	case OriginCenter:
		return NameOriginCenter
	case OriginBoundary:
		return NameOriginBoundary
	default:
		return fmt.Sprintf("origin(%d)", int(o))
	}
}

// ParseOrigin maps a configuration name (case-insensitive) to its Origin.
// The short forms "center" and "boundary" are accepted as well.
func ParseOrigin(name string) (Origin, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameOriginCenter, "center":
		return OriginCenter, nil
	case NameOriginBoundary, "boundary":
		return OriginBoundary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrigin, name)
	}
}
