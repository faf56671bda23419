package montecarlo

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/lvperc/adjacency"
	"github.com/katalvlaran/lvperc/cluster"
	"github.com/katalvlaran/lvperc/lattice"
	"github.com/katalvlaran/lvperc/sampler"
)

// Realization is one sampled configuration of a lattice.
type Realization struct {
	// Lattice is the source lattice.
	Lattice *lattice.Lattice
	// P is the bond probability the mask was drawn with.
	P float64
	// Key identifies the random stream.
	Key sampler.TrialKey
	// Open has bit b set iff bond b is open.
	Open bits.Bits
	// Graph is the open-bond subgraph.
	Graph *adjacency.List
	// Partition labels the connected components of Graph.
	Partition *cluster.Partition
}

// Realize samples lat at p with the stream of key and labels its
// components. The same (lat, p, key) always yields the same realization,
// and matches what Driver.Run measures for that key.
func Realize(lat *lattice.Lattice, p float64, key sampler.TrialKey) (*Realization, error) {
	if lat == nil {
		return nil, ErrNilLattice
	}
	open, g, err := sampleGraph(lat, p, key)
	if err != nil {
		return nil, err
	}
	return &Realization{
		Lattice:   lat,
		P:         p,
		Key:       key,
		Open:      open,
		Graph:     g,
		Partition: cluster.Components(g),
	}, nil
}

// OpenBonds lists the open bonds in bond order.
func (r *Realization) OpenBonds() []lattice.Bond {
	bonds := r.Lattice.Bonds()
	out := make([]lattice.Bond, 0, r.Graph.EdgeCount())
	for b := range bonds {
		if r.Open.Bit(b) == 1 {
			out = append(out, bonds[b])
		}
	}
	return out
}

// sampleGraph draws the open-bond mask for key and builds its subgraph.
func sampleGraph(lat *lattice.Lattice, p float64, key sampler.TrialKey) (bits.Bits, *adjacency.List, error) {
	open, err := sampler.Sample(lat.Size(), p, key)
	if err != nil {
		return bits.Bits{}, nil, fmt.Errorf("sample %s: %w", lat, err)
	}
	g, err := adjacency.FromLattice(lat, open)
	if err != nil {
		return bits.Bits{}, nil, fmt.Errorf("adjacency %s: %w", lat, err)
	}
	return open, g, nil
}
