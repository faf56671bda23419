package cluster

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/lvperc/adjacency"
)

// unlabeled marks a vertex not yet reached by any traversal.
const unlabeled int32 = -1

// Components labels every connected component of g.
//
// Behavior:
//  1. Scan vertices in ascending id.
//  2. For each unlabeled vertex, BFS from it, labeling everything reached
//     with the next label. The queue is the tail of members, so each
//     component ends up contiguous in members.
//
// Time: O(V + E). Memory: O(V).
func Components(g *adjacency.List) *Partition {
	n := g.Order()
	labels := make([]int32, n)
	for v := range labels {
		labels[v] = unlabeled
	}
	members := make([]int32, 0, n)
	starts := make([]int, 1, n+1)

	var label int32
	for s := 0; s < n; s++ {
		if labels[s] != unlabeled {
			continue
		}
		head := len(members)
		labels[s] = label
		members = append(members, int32(s))

		// members[head:] is the FIFO frontier of this component.
		for ; head < len(members); head++ {
			for _, w := range g.Neighbors(int(members[head])) {
				if labels[w] == unlabeled {
					labels[w] = label
					members = append(members, w)
				}
			}
		}
		starts = append(starts, len(members))
		label++
	}

	return &Partition{labels: labels, members: members, starts: starts}
}

// Reach returns the vertices reachable from seeds, with all valid seeds
// enqueued before the traversal starts. Invalid seeds are skipped.
//
// Time: O(V_reached + E_reached + len(seeds)). Memory: O(V).
func Reach(g *adjacency.List, seeds []int) *ReachSet {
	n := g.Order()
	visited := bits.New(n)
	r := &ReachSet{visited: visited}

	for _, s := range seeds {
		if s < 0 || s >= n {
			r.rejected++
			continue
		}
		if visited.Bit(s) == 0 {
			visited.SetBit(s, 1)
			r.members = append(r.members, int32(s))
		}
	}

	for head := 0; head < len(r.members); head++ {
		for _, w := range g.Neighbors(int(r.members[head])) {
			if visited.Bit(int(w)) == 0 {
				visited.SetBit(int(w), 1)
				r.members = append(r.members, w)
			}
		}
	}
	return r
}

// ValidateSeeds reports seeds outside [0, order) as ErrInvalidOrigin.
func ValidateSeeds(order int, seeds []int) error {
	var bad []int
	for _, s := range seeds {
		if s < 0 || s >= order {
			bad = append(bad, s)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("seeds %v outside [0,%d): %w", bad, order, ErrInvalidOrigin)
	}
	if len(seeds) == 0 {
		return fmt.Errorf("no seeds: %w", ErrInvalidOrigin)
	}
	return nil
}

// Verify checks that p is an exact partition of g's vertices into maximal
// connected sets:
//   - every vertex carries a label in [0, Count()) and appears exactly once
//     in members, inside its label's range;
//   - component sizes sum to Order();
//   - both endpoints of every open bond share a label.
func (p *Partition) Verify(g *adjacency.List) error {
	n := g.Order()
	if len(p.labels) != n {
		return fmt.Errorf("Verify: %d labels for %d vertices: %w", len(p.labels), n, ErrPartitionBroken)
	}
	if len(p.members) != n || p.starts[len(p.starts)-1] != n {
		return fmt.Errorf("Verify: components cover %d of %d vertices: %w", len(p.members), n, ErrPartitionBroken)
	}

	seen := bits.New(n)
	for c := 0; c < p.Count(); c++ {
		if p.Size(c) == 0 {
			return fmt.Errorf("Verify: component %d is empty: %w", c, ErrPartitionBroken)
		}
		for _, v := range p.Members(c) {
			if v < 0 || int(v) >= n {
				return fmt.Errorf("Verify: member %d out of range: %w", v, ErrPartitionBroken)
			}
			if seen.Bit(int(v)) == 1 {
				return fmt.Errorf("Verify: vertex %d in two components: %w", v, ErrPartitionBroken)
			}
			seen.SetBit(int(v), 1)
			if int(p.labels[v]) != c {
				return fmt.Errorf("Verify: vertex %d labeled %d, listed in %d: %w", v, p.labels[v], c, ErrPartitionBroken)
			}
		}
	}

	for v := 0; v < n; v++ {
		for _, w := range g.Neighbors(v) {
			if p.labels[v] != p.labels[w] {
				return fmt.Errorf("Verify: bond (%d,%d) crosses components %d and %d: %w",
					v, w, p.labels[v], p.labels[w], ErrPartitionBroken)
			}
		}
	}
	return nil
}
