// Package coloring implements online graph coloring: vertices arrive one
// at a time, each must be colored immediately using only edges to
// vertices that have already arrived, and no assignment is ever revised.
//
// What
//
//   - FirstFit: greedy smallest-free-color over the revealed neighbors.
//   - CBIP: bipartite-only (k = 2) colorer that bipartitions the revealed
//     connected component of each arriving vertex by BFS parity and
//     colors it against the opposite side. Always proper on bipartite
//     inputs, and exactly 2 colors whenever the arrival order keeps the
//     revealed graph connected.
//   - FirstFitHeuristic: FirstFit with a self-chosen order, revealing
//     the highest revealed-degree candidate first (ties: smallest ID).
//
// The online contract
//
//	Every colorer observes the graph solely through an Oracle:
//	neighbors of a vertex restricted to the revealed set. Oracles must
//	be deterministic, side-effect free, symmetric on revealed pairs,
//	and monotone as the revealed set grows. A reported neighbor outside
//	the revealed set aborts the run with ErrOracleContract; the
//	properness guarantees do not survive a broken oracle, so the
//	violation is never tolerated silently.
//
// Determinism
//
//	Oracles built with GraphOracle answer in ascending vertex order, so
//	FirstFit and CBIP are byte-reproducible for a fixed arrival order,
//	and FirstFitHeuristic is reproducible thanks to its fixed tie-break.
//
// Concurrency
//
//	A colorer owns the state of exactly one run and is not safe for
//	concurrent use. Independent runs over the same read-only graph may
//	execute in parallel with no coordination.
//
// Usage
//
//	ff, err := coloring.NewFirstFit(coloring.GraphOracle(g))
//	if err != nil { ... }
//	res, err := ff.Run(order)
//	// res.Colors, res.NumColors
//
// Errors
//
//   - ErrNilOracle        colorer constructed without an oracle.
//   - ErrBadVertex        non-positive vertex ID.
//   - ErrVertexRevealed   a vertex stepped twice (or pool exhausted).
//   - ErrDuplicateVertex  candidate pool repeats a vertex.
//   - ErrOracleContract   oracle reported an unrevealed neighbor.
//   - ErrNonBipartite     CBIP found an odd cycle in a revealed component.
//   - ErrChromaticNumber  CBIP constructed with k != 2.
package coloring
