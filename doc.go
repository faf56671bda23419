// Package lvperc estimates bond percolation curves by Monte Carlo sampling
// on lattices and complete graphs.
//
// What is lvperc?
//
//	A small, deterministic pipeline that, for every bond probability p of a
//	sweep, draws N independent open-bond configurations and averages an
//	order parameter over them:
//		• Lattices: square, triangular, cubic, complete, custom
//		• Sampling: per-trial PCG streams keyed by (seed, p, trial), bitset masks
//		• Clusters: BFS component partition and seeded reach
//		• Observables: largest-component fraction, origin cluster size
//		• Driver: errgroup worker pool, zap logging, Prometheus metrics
//
// Packages:
//
//	lattice/    — topologies, vertex enumeration, candidate bonds, origins
//	sampler/    — TrialKey streams and open-bond masks
//	adjacency/  — compact open-bond adjacency (offsets + flat neighbors)
//	cluster/    — Components (full partition) and Reach (from seeds)
//	observable/ — order parameters and their selector
//	montecarlo/ — the sweep driver, Realize for single configurations
//	export/     — the (p, value) CSV table
//	config/     — YAML run files
//	cmd/percolate — command-line front end
//
// Quick ASCII example, a 3×3 square grid with bonds open at p=1:
//
//	0───1───2
//	│   │   │
//	3───4───5
//	│   │   │
//	6───7───8
//
// has one component of size 9, so the global observable is 9/9 = 1.
//
//	go install github.com/katalvlaran/lvperc/cmd/percolate@latest
package lvperc
