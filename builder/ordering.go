package builder

import (
	"math/rand"

	"github.com/katalvlaran/onlicolor/graph"
)

// Ordering returns a random arrival order: a uniform permutation of the
// graph's vertices. Deterministic for a fixed RNG state; a nil rng
// yields the natural ascending order.
func Ordering(g *graph.Graph, rng *rand.Rand) []int {
	order := g.Vertices()
	if rng == nil {
		return order
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}
