// SPDX-License-Identifier: MIT
// Package: lvperc/lattice
//
// impl_planar.go — Square(L) and Triangular(L) constructors.
//
// Contract:
//   • MinGridSide ≤ L, and the lattice fits MaxOrder/MaxBonds (else ErrInvalidSize).
//   • Vertices in row-major order, id = r*L + c.
//   • Square emits, for each (r,c): Right (r,c+1), then Down (r+1,c).
//   • Triangular emits Right, Down, then one diagonal:
//       even r → (r+1,c+1), odd r → (r+1,c-1), when in range.
//
// Complexity:
//   • Time: O(L²). Space: O(L²) for the bond slice.

package lattice

import "fmt"

// File-local constants: method tags for error context.
const (
	methodSquare     = "Square"
	methodTriangular = "Triangular"
)

// Square returns the L×L square lattice. L ≤ 23170.
func Square(L int) (*Lattice, error) {
	if err := checkPlanar(methodSquare, L, false); err != nil {
		return nil, err
	}
	return newPlanar(Square2D, L), nil
}

// Triangular returns the L×L triangular lattice. L ≤ 18919.
func Triangular(L int) (*Lattice, error) {
	if err := checkPlanar(methodTriangular, L, true); err != nil {
		return nil, err
	}
	return newPlanar(Triangular2D, L), nil
}

// checkPlanar validates L against the minimum side and the capacity limits.
func checkPlanar(method string, L int, diagonals bool) error {
	if L < MinGridSide {
		return fmt.Errorf("%s: L=%d < min=%d: %w", method, L, MinGridSide, ErrInvalidSize)
	}
	if L > 1<<16 { // L² alone exceeds MaxOrder
		return fmt.Errorf("%s: L=%d: %w", method, L, ErrInvalidSize)
	}
	side := int64(L)
	bonds := 2 * side * (side - 1)
	if diagonals {
		bonds += (side - 1) * (side - 1)
	}
	return fits(method, side*side, bonds)
}

// newPlanar emits the bonds of a validated 2D grid. Only Triangular2D adds diagonals.
func newPlanar(kind Kind, L int) *Lattice {
	// 2L(L-1) axis bonds, plus (L-1)² diagonals for the triangular lattice.
	capacity := 2 * L * (L - 1)
	diagonals := kind == Triangular2D
	if diagonals {
		capacity += (L - 1) * (L - 1)
	}
	bonds := make([]Bond, 0, capacity)

	for r := 0; r < L; r++ {
		for c := 0; c < L; c++ {
			u := int32(r*L + c) // current cell

			// Right neighbor (r, c+1).
			if c+1 < L {
				bonds = append(bonds, Bond{U: u, V: u + 1})
			}
			// Down neighbor (r+1, c).
			if r+1 < L {
				bonds = append(bonds, Bond{U: u, V: u + int32(L)})
			}
			if !diagonals || r+1 >= L {
				continue
			}
			// Diagonal: direction alternates by row parity.
			if r%2 == 0 {
				if c+1 < L {
					bonds = append(bonds, Bond{U: u, V: u + int32(L) + 1})
				}
			} else if c-1 >= 0 {
				bonds = append(bonds, Bond{U: u, V: u + int32(L) - 1})
			}
		}
	}

	return &Lattice{
		kind:  kind,
		dims:  []int{L, L},
		order: L * L,
		bonds: bonds,
	}
}
