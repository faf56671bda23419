// Package config loads a sweep run from a YAML file.
//
//	topology: square2d          # square2d | cubic3d | triangular2d | complete
//	size: 200                   # side L for grids, n for complete
//	p_range: {start: 0.1, stop: 0.9, count: 30}   # or p_values: [0.1, 0.2]
//	trials_per_p: 30
//	observable: local_cluster_from_origin
//	origin_policy: single_center_vertex
//	normalize: false
//	base_seed: 1
//	workers: 0                  # 0 = one per CPU
//
// Validate reports every problem of a file at once; Build turns a valid
// file into the lattice and montecarlo.Config of the run.
package config
