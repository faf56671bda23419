// Package montecarlo sweeps the bond probability p over a lattice and
// averages an observable over independent trials per p.
//
// For every p (in input order) the driver runs N trials
//
//	sampler → adjacency → cluster → observable
//
// on a bounded errgroup worker pool. Trial i of p-index k always uses the
// random stream of TrialKey{BaseSeed, k, i}; its sample lands in slot i and
// the slots are summed in trial order after the batch joins, so the mean
// does not depend on the worker count or on scheduling.
//
// A failing trial cancels the rest of its batch and is returned as a
// *TrialError naming p, the p-index and the trial index. No row is emitted
// for a failed or canceled batch. Rows finished before the failure are
// returned alongside the error. Cancellation through ctx is observed between
// p values and before each trial is dispatched.
//
// Realize exposes a single (lattice, p, key) realization with its component
// partition, for callers that render or inspect one sample.
package montecarlo
