// SPDX-License-Identifier: MIT
// Package: lvperc/lattice
//
// impl_complete.go — Complete(n) and Custom(n, bonds) constructors.
//
// Contract:
//   • Complete: n ≥ MinCompleteOrder (else ErrInvalidSize); bonds (i,j), i<j,
//     lexicographic.
//   • Both: at most MaxOrder vertices and MaxBonds bonds (else ErrInvalidSize).
//   • Custom: n ≥ 0 (else ErrInvalidSize); every bond endpoint in [0,n) and
//     U ≠ V (else ErrInvalidBond). Endpoints are normalized to U < V and the
//     input order is kept. Duplicates are kept; they never change connectivity.
//
// Complexity:
//   • Complete: O(n²) time and space.
//   • Custom:   O(len(bonds)) time and space.

package lattice

import "fmt"

const (
	methodComplete = "Complete"
	methodCustom   = "Custom"
)

// Complete returns K_n. n ≤ 46341.
func Complete(n int) (*Lattice, error) {
	if n < MinCompleteOrder {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteOrder, ErrInvalidSize)
	}
	if n > 1<<16 { // n(n-1)/2 alone exceeds MaxBonds
		return nil, fmt.Errorf("%s: n=%d: %w", methodComplete, n, ErrInvalidSize)
	}
	if err := fits(methodComplete, int64(n), int64(n)*int64(n-1)/2); err != nil {
		return nil, err
	}

	bonds := make([]Bond, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			bonds = append(bonds, Bond{U: int32(i), V: int32(j)})
		}
	}

	return &Lattice{
		kind:  CompleteGraph,
		dims:  []int{n},
		order: n,
		bonds: bonds,
	}, nil
}

// Custom returns an arbitrary undirected graph over vertices 0..n-1.
// The input slice is copied.
func Custom(n int, bonds []Bond) (*Lattice, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d < 0: %w", methodCustom, n, ErrInvalidSize)
	}
	if err := fits(methodCustom, int64(n), int64(len(bonds))); err != nil {
		return nil, err
	}

	own := make([]Bond, len(bonds))
	for i, b := range bonds {
		if b.U < 0 || int(b.U) >= n || b.V < 0 || int(b.V) >= n {
			return nil, fmt.Errorf("%s: bond %d (%d,%d) outside [0,%d): %w", methodCustom, i, b.U, b.V, n, ErrInvalidBond)
		}
		if b.U == b.V {
			return nil, fmt.Errorf("%s: bond %d is a self-loop on %d: %w", methodCustom, i, b.U, ErrInvalidBond)
		}
		if b.U > b.V {
			b.U, b.V = b.V, b.U
		}
		own[i] = b
	}

	return &Lattice{
		kind:  CustomGraph,
		dims:  []int{n},
		order: n,
		bonds: own,
	}, nil
}
