// Package lattice enumerates the vertices and candidate bonds of the lattice
// topologies used for bond percolation.
//
// What:
//
//   - Square(L):     L×L grid, axis-neighbor bonds, no wraparound.
//   - Cubic(L):      L×L×L grid, axis-neighbor bonds, no wraparound.
//   - Triangular(L): L×L grid plus one diagonal per vertex, direction by row parity.
//   - Complete(n):   K_n, every unordered pair is a candidate bond.
//   - Custom(n, bs): arbitrary undirected graph over n vertices.
//
// Every vertex has a dense integer id in [0, Order()). Grid ids are row-major
// (square/triangular: r*L + c; cubic: (i*L + j)*L + k). The candidate bond
// list is computed once by the constructor and never mutated afterwards, so a
// *Lattice is safe for concurrent readers.
//
// Triangular diagonal policy:
//
//	even row r: (r,c) — (r+1,c+1)   (down-right)
//	odd  row r: (r,c) — (r+1,c-1)   (down-left)
//
// Determinism:
//
//   - Vertex order: ascending id.
//   - Bond order: for each vertex in id order, bonds to higher-id neighbors,
//     innermost axis first (square: right, down; triangular: right, down,
//     diagonal; cubic: +k, +j, +i; complete: (i,j) with i<j lexicographic).
//
// Complexity:
//
//   - Square/Triangular: O(L²) time and memory.
//   - Cubic:             O(L³) time and memory.
//   - Complete:          O(n²) time and memory.
//
// Errors:
//
//   - ErrInvalidSize:     size too small for the topology, or beyond MaxOrder/MaxBonds.
//   - ErrUnknownTopology: unrecognized Kind or topology name.
//   - ErrInvalidBond:     Custom bond endpoint out of range or a self-loop.
//   - ErrEmptyLattice:    classification for a zero-vertex lattice (Custom(0, nil)).
//   - ErrUnknownOrigin:   unrecognized origin policy.
package lattice
