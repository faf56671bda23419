// Package observable reduces one realization to the scalar order parameter
// averaged by the Monte Carlo driver.
//
//   - Global: size of the largest component / |V| (0 when |V| = 0).
//   - Local:  size of the cluster reachable from the origin seeds, as a raw
//     count or normalized by |V|.
//
// Extractors are pure functions of a cluster result.
package observable
