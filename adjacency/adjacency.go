package adjacency

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/lvperc/lattice"
)

// List is an immutable undirected adjacency structure over vertices 0..Order()-1.
type List struct {
	offsets []int32 // len = order+1; neighbors of v are nbrs[offsets[v]:offsets[v+1]]
	nbrs    []int32 // both directions of every open bond
}

// Build returns the adjacency of the bonds marked open in mask.
// The mask must have exactly len(bonds) bits.
func Build(order int, bonds []lattice.Bond, open bits.Bits) (*List, error) {
	if open.Num != len(bonds) {
		return nil, fmt.Errorf("Build: mask has %d bits, %d bonds: %w", open.Num, len(bonds), ErrMaskLength)
	}
	return build(order, bonds, func(i int) bool { return open.Bit(i) == 1 })
}

// Full returns the adjacency with every candidate bond open.
func Full(order int, bonds []lattice.Bond) (*List, error) {
	return build(order, bonds, func(int) bool { return true })
}

// FromLattice is Build over the vertices and candidate bonds of l.
func FromLattice(l *lattice.Lattice, open bits.Bits) (*List, error) {
	return Build(l.Order(), l.Bonds(), open)
}

// build runs the two-pass counting construction.
func build(order int, bonds []lattice.Bond, isOpen func(int) bool) (*List, error) {
	if order < 0 {
		return nil, fmt.Errorf("Build: order=%d: %w", order, ErrNegativeOrder)
	}

	// 1) Degree count; validate endpoints of open bonds only.
	offsets := make([]int32, order+1)
	for i, b := range bonds {
		if !isOpen(i) {
			continue
		}
		if b.U < 0 || int(b.U) >= order || b.V < 0 || int(b.V) >= order {
			return nil, fmt.Errorf("Build: bond %d (%d,%d) outside [0,%d): %w", i, b.U, b.V, order, ErrBondOutOfRange)
		}
		offsets[b.U+1]++
		offsets[b.V+1]++
	}

	// 2) Prefix sums turn degrees into arena offsets.
	for v := 1; v <= order; v++ {
		offsets[v] += offsets[v-1]
	}

	// 3) Fill, using a cursor copy so offsets stay intact.
	nbrs := make([]int32, offsets[order])
	cursor := make([]int32, order)
	copy(cursor, offsets[:order])
	for i, b := range bonds {
		if !isOpen(i) {
			continue
		}
		nbrs[cursor[b.U]] = b.V
		cursor[b.U]++
		nbrs[cursor[b.V]] = b.U
		cursor[b.V]++
	}

	return &List{offsets: offsets, nbrs: nbrs}, nil
}

// Order returns the number of vertices.
func (g *List) Order() int { return len(g.offsets) - 1 }

// EdgeCount returns the number of open bonds.
func (g *List) EdgeCount() int { return len(g.nbrs) / 2 }

// Neighbors returns the neighbors of v as a read-only view into the arena.
// It returns nil for ids outside [0, Order()).
func (g *List) Neighbors(v int) []int32 {
	if v < 0 || v >= g.Order() {
		return nil
	}
	return g.nbrs[g.offsets[v]:g.offsets[v+1]]
}

// Degree returns the number of open bonds incident to v, 0 for unknown ids.
func (g *List) Degree(v int) int {
	return len(g.Neighbors(v))
}
