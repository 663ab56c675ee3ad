package coloring

import "github.com/katalvlaran/onlicolor/graph"

// GraphOracle adapts a graph.Graph into an Oracle: neighbor queries are
// answered from the true edge set, restricted to the revealed vertices.
// A query for a vertex absent from g yields no neighbors, which the
// colorers then surface as an oracle contract failure when the vertex
// was expected to exist.
func GraphOracle(g *graph.Graph) Oracle {
	return func(vertex int, revealed *Revealed) []int {
		nbrs, err := g.RevealedNeighbors(vertex, revealed.Has)
		if err != nil {
			return nil
		}
		return nbrs
	}
}

// forbiddenColors validates the oracle's answer for vertex v and collects
// the colors of its revealed neighbors into a colorSet. Every reported
// neighbor must already be revealed and colored; anything else is an
// ErrOracleContract naming the offending pair.
func forbiddenColors(v int, nbrs []int, colors map[int]int, revealed *Revealed) (colorSet, error) {
	var forbidden colorSet
	for _, w := range nbrs {
		if !revealed.Has(w) {
			return nil, contractErr(v, w)
		}
		c, ok := colors[w]
		if !ok {
			return nil, contractErr(v, w)
		}
		forbidden.mark(c)
	}
	return forbidden, nil
}
