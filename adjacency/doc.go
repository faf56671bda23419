// Package adjacency turns an open-bond mask over a candidate bond list into
// neighbor lists indexed by dense vertex id.
//
// The representation is a single arena: offsets[v]..offsets[v+1] delimits
// the neighbors of v inside one flat slice. Every vertex in [0, Order()) has
// an entry, isolated vertices included (empty range). Neighbor order follows
// candidate bond order, so the structure is a pure, deterministic function of
// (order, bonds, mask).
//
// Complexity: Build is O(V + B) time and O(V + 2·open) memory, where B is the
// candidate bond count.
package adjacency
