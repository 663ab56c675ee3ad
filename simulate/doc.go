// Package simulate is the experiment harness around the coloring core.
//
// What
//
//   - Run: generate one random k-colorable instance from a seed and
//     color it with a named algorithm, yielding the competitive ratio
//     NumColors / k.
//   - RunOn: color a pre-built instance (e.g. loaded from an EDGES file).
//   - RunBatch: N independent instances with derived seeds; mean ratio
//     and sample standard deviation. WithWorkers(w) parallelizes across
//     instances only; a single run is always sequential.
//   - RunGrid / GenerateAll: full n-by-k sweeps, optionally backed by
//     pre-generated EDGES files (WithGraphDir).
//
// Algorithms are addressed by name ("FirstFit", "CBIP",
// "FirstFitHeuristic"); an unknown name fails immediately with
// ErrUnknownAlgorithm, before any instance work. Algorithm-level
// preconditions, such as CBIP's k = 2 requirement, propagate from the
// coloring package untouched.
//
// Determinism
//
//	A batch's instance i uses seed base+i for both the graph and its
//	arrival order, and results are collected by index, so outputs are
//	identical for any worker count.
package simulate
