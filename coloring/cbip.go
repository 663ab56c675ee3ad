package coloring

import "fmt"

// CBIP is the online colorer for bipartite graphs (k = 2). Each arriving
// vertex is colored against the opposite side of the bipartition of its
// connected component within the revealed subgraph; never with a color
// from its own side. The coloring is always proper, and when every prefix
// of the arrival order keeps the revealed graph connected the run uses
// exactly 2 colors: a connected bipartite component has a unique
// bipartition, so the opposite side pins the color. Orders that reveal
// separate components which later merge can cost more, since the merged
// sides may have been colored incompatibly.
//
// The bipartition is recomputed from scratch on every step by a parity
// BFS rooted at the new vertex. That costs O(component) per step, O(n²)
// worst case over a run. Each step's partition is consistent with the
// revealed subgraph at that moment, which is the invariant the 2-color
// argument rests on; an incremental union-find-with-parity variant would
// have to maintain the same property across merges.
type CBIP struct {
	oracle    Oracle
	k         int
	colors    map[int]int
	numColors int
	revealed  *Revealed
}

// NewCBIP creates a CBIP colorer for a graph with claimed chromatic
// number k. Only k = 2 carries the optimality argument; any other value
// is rejected up front with ErrChromaticNumber.
func NewCBIP(oracle Oracle, k int) (*CBIP, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	if k != 2 {
		return nil, fmt.Errorf("%w: got k=%d", ErrChromaticNumber, k)
	}
	return &CBIP{
		oracle:   oracle,
		k:        k,
		colors:   make(map[int]int),
		revealed: newRevealed(),
	}, nil
}

// Step colors the newly arrived vertex v and reveals it.
// Returns ErrNonBipartite if the revealed component containing v holds an
// odd cycle, or ErrOracleContract if the oracle breaks its contract.
//
// Complexity: O(size of v's revealed component) per step.
func (c *CBIP) Step(v int) (int, error) {
	if err := checkStep(v, c.revealed); err != nil {
		return 0, err
	}
	// Base case: first vertex of the run.
	if c.revealed.Len() == 0 {
		c.assign(v, 1)
		return 1, nil
	}
	opposite, err := c.bipartition(v)
	if err != nil {
		return 0, err
	}
	var forbidden colorSet
	for _, w := range opposite {
		forbidden.mark(c.colors[w])
	}
	col := forbidden.smallestFree()
	c.assign(v, col)
	return col, nil
}

// bipartition walks v's connected component within the revealed subgraph
// by BFS, labeling vertices with their parity from v (side 0 contains v).
// It returns the side-1 members, whose colors v must avoid. The walk is
// rooted at v even though v is not yet revealed; every other member, and
// every vertex the oracle reports, must be revealed and colored.
func (c *CBIP) bipartition(v int) ([]int, error) {
	parity := map[int]int{v: 0}
	queue := []int{v}
	var opposite []int

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, w := range c.oracle(u, c.revealed) {
			if !c.revealed.Has(w) {
				return nil, contractErr(u, w)
			}
			if _, ok := c.colors[w]; !ok {
				return nil, contractErr(u, w)
			}
			side, seen := parity[w]
			if !seen {
				side = 1 - parity[u]
				parity[w] = side
				if side == 1 {
					opposite = append(opposite, w)
				}
				queue = append(queue, w)
				continue
			}
			if side == parity[u] {
				return nil, fmt.Errorf("%w: edge %d-%d closes an odd cycle", ErrNonBipartite, u, w)
			}
		}
	}
	return opposite, nil
}

// Run processes an arrival order in sequence and returns the final result.
func (c *CBIP) Run(order []int) (*Result, error) {
	for _, v := range order {
		if _, err := c.Step(v); err != nil {
			return nil, err
		}
	}
	return c.Result(), nil
}

// Result returns an independent snapshot of the run so far.
func (c *CBIP) Result() *Result {
	return snapshotResult(c.colors, c.numColors, c.revealed)
}

// NumColors returns the maximum color assigned so far.
func (c *CBIP) NumColors() int { return c.numColors }

func (c *CBIP) assign(v, col int) {
	c.colors[v] = col
	if col > c.numColors {
		c.numColors = col
	}
	c.revealed.add(v)
}
