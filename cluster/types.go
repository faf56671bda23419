package cluster

import "github.com/soniakeys/bits"

// Partition is the full component decomposition of one realization.
type Partition struct {
	labels  []int32 // labels[v] = component of v
	members []int32 // vertices grouped by component, BFS order inside each
	starts  []int   // component c spans members[starts[c]:starts[c+1]]
}

// Count returns the number of components.
func (p *Partition) Count() int { return len(p.starts) - 1 }

// Order returns the number of vertices partitioned.
func (p *Partition) Order() int { return len(p.labels) }

// Label returns the component of v, or -1 for ids outside the vertex set.
func (p *Partition) Label(v int) int {
	if v < 0 || v >= len(p.labels) {
		return -1
	}
	return int(p.labels[v])
}

// Size returns the vertex count of component c, 0 for unknown labels.
func (p *Partition) Size(c int) int {
	if c < 0 || c >= p.Count() {
		return 0
	}
	return p.starts[c+1] - p.starts[c]
}

// Members returns the vertices of component c as a read-only view, in BFS
// order from the component's lowest id.
func (p *Partition) Members(c int) []int32 {
	if c < 0 || c >= p.Count() {
		return nil
	}
	return p.members[p.starts[c]:p.starts[c+1]]
}

// Sizes returns the size of every component, indexed by label.
func (p *Partition) Sizes() []int {
	out := make([]int, p.Count())
	for c := range out {
		out[c] = p.Size(c)
	}
	return out
}

// Largest returns the label and size of the largest component. Ties go to
// the lowest label. An empty partition returns (-1, 0).
func (p *Partition) Largest() (label, size int) {
	label = -1
	for c := 0; c < p.Count(); c++ {
		if s := p.Size(c); s > size {
			label, size = c, s
		}
	}
	return label, size
}

// ReachSet is the vertex set reachable from a seed set.
type ReachSet struct {
	members  []int32
	visited  bits.Bits
	rejected int
}

// Size returns the number of reachable vertices, seeds included.
func (r *ReachSet) Size() int { return len(r.members) }

// Members returns the reachable vertices in BFS order (seeds first, in the
// order given).
func (r *ReachSet) Members() []int32 { return r.members }

// Contains reports whether v is reachable.
func (r *ReachSet) Contains(v int) bool {
	if v < 0 || v >= r.visited.Num {
		return false
	}
	return r.visited.Bit(v) == 1
}

// Rejected returns how many seeds were outside the vertex set.
func (r *ReachSet) Rejected() int { return r.rejected }
