package lattice

import (
	"fmt"
	"math"
)

// Lattice is an immutable vertex set plus candidate bond list.
// dims holds the side lengths per axis for grids ([L,L] or [L,L,L]) and [n]
// for complete and custom graphs.
type Lattice struct {
	kind  Kind
	dims  []int
	order int
	bonds []Bond
}

// New builds the lattice of the given kind with a single size parameter
// (side length L for grids, vertex count n for the complete graph).
// Returns ErrUnknownTopology for CustomGraph or an unknown kind.
func New(kind Kind, size int) (*Lattice, error) {
	switch kind {
	case Square2D:
		return Square(size)
	case Cubic3D:
		return Cubic(size)
	case Triangular2D:
		return Triangular(size)
	case CompleteGraph:
		return Complete(size)
	default:
		return nil, fmt.Errorf("New: %s: %w", kind, ErrUnknownTopology)
	}
}

// fits rejects counts beyond MaxOrder vertices or MaxBonds bonds.
func fits(method string, order, bonds int64) error {
	if order > MaxOrder || bonds > MaxBonds {
		return fmt.Errorf("%s: %d vertices, %d bonds exceed %d/%d: %w",
			method, order, bonds, MaxOrder, MaxBonds, ErrInvalidSize)
	}
	return nil
}

// Kind returns the topology of l.
func (l *Lattice) Kind() Kind { return l.kind }

// Dims returns a copy of the per-axis sizes.
func (l *Lattice) Dims() []int {
	out := make([]int, len(l.dims))
	copy(out, l.dims)
	return out
}

// Order returns |V|.
func (l *Lattice) Order() int { return l.order }

// Size returns the number of candidate bonds.
func (l *Lattice) Size() int { return len(l.bonds) }

// Empty reports whether l has no vertices.
func (l *Lattice) Empty() bool { return l.order == 0 }

// Bonds returns the candidate bond list. The slice is shared by every caller
// and must not be modified.
func (l *Lattice) Bonds() []Bond { return l.bonds }

// String renders the topology and its sizes, e.g. "square2d[50 50]".
func (l *Lattice) String() string {
	return fmt.Sprintf("%s%v", l.kind, l.dims)
}

// Index maps grid coordinates to a vertex id. Square and triangular take
// (r, c), cubic takes (i, j, k), complete and custom take (id).
// ok is false when the arity is wrong or a coordinate is out of range.
func (l *Lattice) Index(coords ...int) (id int, ok bool) {
	if len(coords) != len(l.dims) {
		return -1, false
	}
	for axis, x := range coords {
		if x < 0 || x >= l.dims[axis] {
			return -1, false
		}
		id = id*l.dims[axis] + x
	}
	return id, true
}

// Coordinate is the inverse of Index. It returns nil for ids outside [0, Order()).
func (l *Lattice) Coordinate(id int) []int {
	if id < 0 || id >= l.order {
		return nil
	}
	coords := make([]int, len(l.dims))
	for axis := len(l.dims) - 1; axis >= 0; axis-- {
		coords[axis] = id % l.dims[axis]
		id /= l.dims[axis]
	}
	return coords
}

// Center returns the id of the center vertex: (L/2, L/2[, L/2]) for grids and
// vertex 0 for complete and custom graphs. Returns -1 on an empty lattice.
func (l *Lattice) Center() int {
	if l.order == 0 {
		return -1
	}
	switch l.kind {
	case Square2D, Triangular2D, Cubic3D:
		coords := make([]int, len(l.dims))
		for axis, side := range l.dims {
			coords[axis] = side / 2
		}
		id, _ := l.Index(coords...)
		return id
	default:
		return 0
	}
}

// Boundary returns the ids of the seeding boundary in ascending order: the
// left column (c = 0) for square and triangular grids, the k = 0 face for
// the cubic grid, and {0} for complete and custom graphs.
func (l *Lattice) Boundary() []int {
	if l.order == 0 {
		return nil
	}
	switch l.kind {
	case Square2D, Triangular2D:
		side := l.dims[0]
		ids := make([]int, 0, side)
		for r := 0; r < side; r++ {
			ids = append(ids, r*l.dims[1])
		}
		return ids
	case Cubic3D:
		side := l.dims[0]
		ids := make([]int, 0, side*side)
		for i := 0; i < side; i++ {
			for j := 0; j < side; j++ {
				ids = append(ids, (i*l.dims[1]+j)*l.dims[2])
			}
		}
		return ids
	default:
		return []int{0}
	}
}

// Origins resolves an origin policy into seed vertex ids.
func (l *Lattice) Origins(o Origin) ([]int, error) {
	switch o {
	case OriginCenter:
		if c := l.Center(); c >= 0 {
			return []int{c}, nil
		}
		return nil, nil
	case OriginBoundary:
		return l.Boundary(), nil
	default:
		return nil, fmt.Errorf("Origins: %s: %w", o, ErrUnknownOrigin)
	}
}

// CriticalProbability returns the known bond percolation threshold p_c of
// the topology, used to annotate sweep curves: 1/2 for the square lattice,
// 2·sin(π/18) for the triangular lattice, ≈0.2488 for the cubic lattice and
// 1/n for K_n. Custom graphs and empty lattices return NaN.
func (l *Lattice) CriticalProbability() float64 {
	switch l.kind {
	case Square2D:
		return 0.5
	case Triangular2D:
		return 2 * math.Sin(math.Pi/18)
	case Cubic3D:
		return cubicThreshold
	case CompleteGraph:
		if l.order == 0 {
			return math.NaN()
		}
		return 1 / float64(l.order)
	default:
		return math.NaN()
	}
}

// cubicThreshold is the numerical estimate of p_c for simple cubic bond percolation.
const cubicThreshold = 0.2488
