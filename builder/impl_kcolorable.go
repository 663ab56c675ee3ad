package builder

import (
	"fmt"

	"github.com/katalvlaran/onlicolor/graph"
)

// File-local constants for the random k-colorable model.
const (
	methodKColorable = "RandomKColorable"
	minSets          = 1
	probLo           = 0.0
	probHi           = 1.0
)

// RandomKColorable returns a Constructor for a random graph on vertices
// 1..n that is k-colorable by construction: the vertex set is split into
// k non-empty independent sets (a uniformly shuffled round-robin
// assignment), and each cross-set pair receives an edge independently
// with probability p. Same-set pairs are never joined, so the planted
// partition witnesses chromatic number <= k.
//
// Contract:
//   - k >= 1, n >= k (else ErrTooFewVertices): every set must be non-empty.
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - cfg.rng required, even for p in {0,1} (else ErrNeedRandSource).
//
// Determinism: fixed seed implies a fixed set assignment and a fixed
// Bernoulli trial order (pairs u < v ascending), hence identical graphs.
//
// Complexity: O(n) assignment + O(n²) edge trials.
func RandomKColorable(n, k int, p float64) Constructor {
	return func(g *graph.Graph, cfg config) error {
		if k < minSets || n < k {
			return fmt.Errorf("%s: n=%d, k=%d (need k >= %d and n >= k): %w",
				methodKColorable, n, k, minSets, ErrTooFewVertices)
		}
		if p < probLo || p > probHi {
			return fmt.Errorf("%s: p=%g not in [%g,%g]: %w",
				methodKColorable, p, probLo, probHi, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodKColorable, ErrNeedRandSource)
		}

		// Shuffled round-robin: permute 1..n, then deal into k sets.
		// With n >= k every set receives at least one vertex.
		perm := cfg.rng.Perm(n)
		setOf := make([]int, n+1) // vertex -> independent set index
		for i, idx := range perm {
			setOf[idx+1] = i % k
		}

		for v := 1; v <= n; v++ {
			if err := g.AddVertex(v); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodKColorable, v, err)
			}
		}
		// Bernoulli trial per cross-set pair, ascending (u,v) order.
		for u := 1; u <= n; u++ {
			for v := u + 1; v <= n; v++ {
				if setOf[u] == setOf[v] {
					continue
				}
				if cfg.rng.Float64() < p {
					if err := g.AddEdge(u, v); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodKColorable, u, v, err)
					}
				}
			}
		}
		return nil
	}
}
