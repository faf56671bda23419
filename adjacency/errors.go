package adjacency

import "errors"

var (
	// ErrMaskLength indicates the open-bond mask length differs from the bond count.
	ErrMaskLength = errors.New("adjacency: mask length mismatch")

	// ErrBondOutOfRange indicates a bond endpoint outside [0, order).
	ErrBondOutOfRange = errors.New("adjacency: bond endpoint out of range")

	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("adjacency: negative order")
)
