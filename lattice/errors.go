// SPDX-License-Identifier: MIT
// Package: lvperc/lattice
//
// errors.go — sentinel errors for the lattice package.
//
// Callers branch with errors.Is; constructors attach the method name and the
// offending parameters with %w.

package lattice

import "errors"

// ErrInvalidSize indicates a size parameter that is non-positive or too small
// for the neighbor rule of the requested topology (grids need L ≥ 2).
var ErrInvalidSize = errors.New("lattice: invalid size")

// ErrUnknownTopology indicates an unrecognized Kind value or topology name.
var ErrUnknownTopology = errors.New("lattice: unknown topology")

// ErrInvalidBond indicates a Custom bond that references a vertex outside
// [0, n) or joins a vertex to itself.
var ErrInvalidBond = errors.New("lattice: invalid bond")

// ErrEmptyLattice classifies a lattice with zero vertices. It is not returned
// by constructors; observables degrade to 0 and the driver reports it as a
// warning.
var ErrEmptyLattice = errors.New("lattice: empty lattice")

// ErrUnknownOrigin indicates an unrecognized origin policy name or value.
var ErrUnknownOrigin = errors.New("lattice: unknown origin policy")
