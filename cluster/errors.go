package cluster

import "errors"

var (
	// ErrInvalidOrigin indicates origin vertices outside the vertex set. Reach
	// tolerates them; ValidateSeeds reports them.
	ErrInvalidOrigin = errors.New("cluster: origin vertex outside lattice")

	// ErrPartitionBroken indicates a Partition that is not an exact, maximal
	// partition of the vertex set.
	ErrPartitionBroken = errors.New("cluster: partition invariant violated")
)
