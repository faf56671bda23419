// Package cluster computes connected components of a percolation realization.
//
// Two modes:
//
//   - Components: full partition. Vertices are scanned in canonical id order;
//     each unlabeled vertex starts a breadth-first traversal that labels its
//     whole component. Labels are dense, assigned in discovery order.
//   - Reach: seeded reachability. One BFS seeded with every origin vertex at
//     once (a single center, or a whole boundary column/face) returns the set
//     reachable from the seeds.
//
// Both use a FIFO frontier and a visited marker sized to the vertex count.
// The frontier doubles as the output slice, as in gridgraph's island scan,
// so membership is independent of traversal order and the result is
// reproducible bit-for-bit.
//
// Seeds outside [0, Order()) are ignored and counted in ReachSet.Rejected; a
// seed set with no valid vertex yields an empty reach of size 0.
//
// Complexity: O(V + E) time, O(V) memory for both modes.
package cluster
