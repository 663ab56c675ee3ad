package coloring

import (
	"fmt"
	"sort"
)

// FirstFitHeuristic colors with the FirstFit rule but chooses its own
// reveal order: each round it selects the not-yet-revealed candidate with
// the highest revealed degree, ties broken by smallest vertex ID. The
// tie-break is fixed so runs are reproducible.
//
// The heuristic is online-safe: a candidate's degree counts only its
// already-revealed neighbors, obtained through the oracle, so no edge to
// an unrevealed vertex is ever consulted.
type FirstFitHeuristic struct {
	oracle    Oracle
	pool      []int // remaining candidates, ascending
	colors    map[int]int
	numColors int
	revealed  *Revealed
}

// NewFirstFitHeuristic creates a heuristic colorer over the candidate
// pool. The pool is the vertex set to color, in any order; it is sorted
// internally. Returns ErrNilOracle, ErrBadVertex, or ErrDuplicateVertex.
func NewFirstFitHeuristic(oracle Oracle, pool []int) (*FirstFitHeuristic, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	seen := make(map[int]struct{}, len(pool))
	sorted := make([]int, 0, len(pool))
	for _, v := range pool {
		if v < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrBadVertex, v)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: vertex %d", ErrDuplicateVertex, v)
		}
		seen[v] = struct{}{}
		sorted = append(sorted, v)
	}
	sort.Ints(sorted)
	return &FirstFitHeuristic{
		oracle:   oracle,
		pool:     sorted,
		colors:   make(map[int]int),
		revealed: newRevealed(),
	}, nil
}

// Remaining returns how many candidates are still uncolored.
func (h *FirstFitHeuristic) Remaining() int { return len(h.pool) }

// Step performs one selection round: pick the remaining candidate with
// the maximum revealed degree (smallest ID on ties), color it with the
// FirstFit rule, and reveal it. Returns the chosen vertex and its color,
// or ErrVertexRevealed once the pool is exhausted.
//
// Selection is a linear scan over the remaining pool, one oracle query
// per candidate; O(n) queries per round is the documented trade-off
// against a lazily updated priority queue.
func (h *FirstFitHeuristic) Step() (vertex, color int, err error) {
	if len(h.pool) == 0 {
		return 0, 0, fmt.Errorf("%w: candidate pool exhausted", ErrVertexRevealed)
	}
	best, bestDeg, bestIdx := 0, -1, 0
	for i, v := range h.pool {
		deg := len(h.oracle(v, h.revealed))
		// strict > on an ascending pool makes ties resolve to the smallest ID
		if deg > bestDeg {
			best, bestDeg, bestIdx = v, deg, i
		}
	}
	forbidden, err := forbiddenColors(best, h.oracle(best, h.revealed), h.colors, h.revealed)
	if err != nil {
		return 0, 0, err
	}
	c := forbidden.smallestFree()
	h.colors[best] = c
	if c > h.numColors {
		h.numColors = c
	}
	h.revealed.add(best)
	h.pool = append(h.pool[:bestIdx], h.pool[bestIdx+1:]...)
	return best, c, nil
}

// Run colors the entire pool and returns the final result.
func (h *FirstFitHeuristic) Run() (*Result, error) {
	for len(h.pool) > 0 {
		if _, _, err := h.Step(); err != nil {
			return nil, err
		}
	}
	return h.Result(), nil
}

// Result returns an independent snapshot of the run so far.
func (h *FirstFitHeuristic) Result() *Result {
	return snapshotResult(h.colors, h.numColors, h.revealed)
}

// NumColors returns the maximum color assigned so far.
func (h *FirstFitHeuristic) NumColors() int { return h.numColors }
