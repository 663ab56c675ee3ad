// Package builder assembles graph instances for online coloring runs.
//
// What
//
//   - Deterministic fixtures: Path(n), Cycle(n), Star(n),
//     CompleteBipartite(n1, n2), all on ascending int vertex IDs from 1.
//   - RandomKColorable(n, k, p): the planted-partition model behind the
//     competitive-ratio experiments. Vertices are dealt into k non-empty
//     independent sets; cross-set pairs get edges with probability p, so
//     the instance is k-colorable by construction.
//   - Ordering(g, rng): a uniform random arrival order over the vertices.
//
// Determinism
//
//	Same constructors, same seed, same call order: identical graph and
//	ordering. Stochastic constructors require an explicit RNG
//	(WithSeed or WithRand); there is no hidden time-based source.
//
// Usage
//
//	g, err := builder.Build(
//	    []builder.Constructor{builder.RandomKColorable(100, 2, 0.5)},
//	    builder.WithSeed(42),
//	)
//
// Errors
//
//   - ErrTooFewVertices     size parameter below the constructor minimum.
//   - ErrInvalidProbability p outside [0,1].
//   - ErrNeedRandSource     stochastic constructor without an RNG.
//   - ErrConstructFailed    nil constructor or graph-level failure.
package builder
