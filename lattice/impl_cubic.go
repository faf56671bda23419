// SPDX-License-Identifier: MIT
// Package: lvperc/lattice
//
// impl_cubic.go — Cubic(L) constructor.
//
// Contract:
//   • MinGridSide ≤ L, and the lattice fits MaxOrder/MaxBonds (else ErrInvalidSize).
//   • Vertex (i,j,k) has id (i*L + j)*L + k.
//   • For each vertex in id order emit +k, +j, +i neighbors when in range.
//
// Complexity:
//   • Time: O(L³). Space: O(L³); the bond count is 3L²(L-1).

package lattice

import "fmt"

const methodCubic = "Cubic"

// Cubic returns the L×L×L simple cubic lattice. L ≤ 710.
func Cubic(L int) (*Lattice, error) {
	if L < MinGridSide {
		return nil, fmt.Errorf("%s: L=%d < min=%d: %w", methodCubic, L, MinGridSide, ErrInvalidSize)
	}
	if L > 1<<11 { // L³ alone exceeds MaxOrder
		return nil, fmt.Errorf("%s: L=%d: %w", methodCubic, L, ErrInvalidSize)
	}
	side := int64(L)
	if err := fits(methodCubic, side*side*side, 3*side*side*(side-1)); err != nil {
		return nil, err
	}

	plane := int32(L * L) // id stride along i
	row := int32(L)       // id stride along j
	bonds := make([]Bond, 0, 3*L*L*(L-1))

	for i := 0; i < L; i++ {
		for j := 0; j < L; j++ {
			for k := 0; k < L; k++ {
				u := int32((i*L+j)*L + k)
				if k+1 < L {
					bonds = append(bonds, Bond{U: u, V: u + 1})
				}
				if j+1 < L {
					bonds = append(bonds, Bond{U: u, V: u + row})
				}
				if i+1 < L {
					bonds = append(bonds, Bond{U: u, V: u + plane})
				}
			}
		}
	}

	return &Lattice{
		kind:  Cubic3D,
		dims:  []int{L, L, L},
		order: L * L * L,
		bonds: bonds,
	}, nil
}
