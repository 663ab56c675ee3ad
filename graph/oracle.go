package graph

import "sort"

// RevealedNeighbors is the neighbor oracle for online algorithms: it
// returns the true neighbors of v that satisfy the revealed predicate,
// in ascending order. The vertex v itself need not be revealed.
//
// The result is deterministic for a fixed (v, predicate, edge set), has
// no side effects, and is monotone: enlarging the revealed set can only
// enlarge the result. Returns ErrVertexNotFound if v is absent.
//
// Complexity: O(d log d) for degree d.
func (g *Graph) RevealedNeighbors(v int, revealed func(int) bool) ([]int, error) {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(nbrs))
	for w := range nbrs {
		if revealed(w) {
			out = append(out, w)
		}
	}
	sort.Ints(out)
	return out, nil
}
