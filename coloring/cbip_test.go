package coloring_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onlicolor/coloring"
	"github.com/katalvlaran/onlicolor/graph"
)

// TestCBIP_Construction rejects missing oracles and k != 2.
func TestCBIP_Construction(t *testing.T) {
	_, err := coloring.NewCBIP(nil, 2)
	assert.ErrorIs(t, err, coloring.ErrNilOracle)

	oracle := coloring.GraphOracle(graph.NewGraph())
	for _, k := range []int{0, 1, 3, 4} {
		_, err = coloring.NewCBIP(oracle, k)
		assert.ErrorIs(t, err, coloring.ErrChromaticNumber, "k=%d", k)
	}
}

// TestCBIP_Path pins the path scenario: order 1,2,3,4 on the path
// 1-2-3-4 yields {1:1, 2:2, 3:1, 4:2} with 2 colors.
func TestCBIP_Path(t *testing.T) {
	g := pathGraph(t)
	cb, err := coloring.NewCBIP(coloring.GraphOracle(g), 2)
	require.NoError(t, err)

	res, err := cb.Run([]int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 1, 4: 2}, res.Colors)
	assert.Equal(t, 2, res.NumColors)
	assertProper(t, g, res)
}

// TestCBIP_Triangle must surface ErrNonBipartite once the third edge
// closes an odd cycle inside a revealed component.
func TestCBIP_Triangle(t *testing.T) {
	g := triangleGraph(t)
	cb, err := coloring.NewCBIP(coloring.GraphOracle(g), 2)
	require.NoError(t, err)

	_, err = cb.Run([]int{1, 2, 3})
	assert.ErrorIs(t, err, coloring.ErrNonBipartite)
}

// TestCBIP_Edgeless uses one color on a graph with no edges.
func TestCBIP_Edgeless(t *testing.T) {
	g := graph.NewGraph()
	for v := 1; v <= 4; v++ {
		require.NoError(t, g.AddVertex(v))
	}
	cb, err := coloring.NewCBIP(coloring.GraphOracle(g), 2)
	require.NoError(t, err)

	res, err := cb.Run([]int{3, 1, 4, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, res.NumColors)
}

// TestCBIP_Star checks 2 colors on the star for the natural order.
func TestCBIP_Star(t *testing.T) {
	g := starGraph(t)
	cb, err := coloring.NewCBIP(coloring.GraphOracle(g), 2)
	require.NoError(t, err)

	res, err := cb.Run([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 2, res.NumColors)
	assertProper(t, g, res)
}

// TestCBIP_ComponentMerge documents the disconnected-merge behavior:
// two path halves revealed apart spend colors independently, and joining
// them can force a third color. The coloring stays proper throughout;
// the 2-color guarantee belongs to connectivity-preserving orders.
func TestCBIP_ComponentMerge(t *testing.T) {
	// path 1-2-3-4-5-6 revealed ends-first
	g := graph.NewGraph()
	for v := 1; v < 6; v++ {
		require.NoError(t, g.AddEdge(v, v+1))
	}
	cb, err := coloring.NewCBIP(coloring.GraphOracle(g), 2)
	require.NoError(t, err)

	res, err := cb.Run([]int{1, 6, 2, 5, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 3, res.NumColors)
	assertProper(t, g, res)
}

// TestCBIP_TwoColorsOnConnectedOrders is the optimality property: when
// every arriving vertex after the first attaches to the revealed
// component, CBIP uses exactly 2 colors on any connected bipartite graph
// with at least one edge, regardless of which such order the adversary
// picks.
func TestCBIP_TwoColorsOnConnectedOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		g := randomConnectedBipartite(t, rng, 20, 0.3)
		order := connectedOrder(t, g, rng)

		cb, err := coloring.NewCBIP(coloring.GraphOracle(g), 2)
		require.NoError(t, err)
		res, err := cb.Run(order)
		require.NoError(t, err, "trial %d order %v", trial, order)
		assert.Equal(t, 2, res.NumColors, "trial %d order %v", trial, order)
		assertProper(t, g, res)
	}
}

// TestCBIP_ProperOnArbitraryOrders relaxes the color bound but demands
// properness for adversarial (possibly disconnecting) reveal orders.
func TestCBIP_ProperOnArbitraryOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		g := randomConnectedBipartite(t, rng, 16, 0.25)
		order := rng.Perm(16)
		for i := range order {
			order[i]++
		}

		cb, err := coloring.NewCBIP(coloring.GraphOracle(g), 2)
		require.NoError(t, err)
		res, err := cb.Run(order)
		require.NoError(t, err, "trial %d order %v", trial, order)
		assertProper(t, g, res)
	}
}

// TestCBIP_OddCycleLateDetection reveals a 5-cycle so the odd cycle only
// closes on the final vertex.
func TestCBIP_OddCycleLateDetection(t *testing.T) {
	g := graph.NewGraph()
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	cb, err := coloring.NewCBIP(coloring.GraphOracle(g), 2)
	require.NoError(t, err)

	// first four vertices form a path: fine
	for _, v := range []int{1, 2, 3, 4} {
		_, err = cb.Step(v)
		require.NoError(t, err)
	}
	// vertex 5 closes the odd cycle
	_, err = cb.Step(5)
	assert.ErrorIs(t, err, coloring.ErrNonBipartite)
}

// randomConnectedBipartite builds a connected bipartite graph on
// vertices 1..n with parity sides: a spanning cross-parity chain plus
// extra cross-parity edges with probability p.
func randomConnectedBipartite(t *testing.T, rng *rand.Rand, n int, p float64) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	// vertex v attaches to a random earlier vertex of opposite parity
	require.NoError(t, g.AddEdge(1, 2))
	for v := 3; v <= n; v++ {
		var earlier []int
		for u := 1; u < v; u++ {
			if u%2 != v%2 {
				earlier = append(earlier, u)
			}
		}
		require.NoError(t, g.AddEdge(earlier[rng.Intn(len(earlier))], v))
	}
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if u%2 == v%2 || g.HasEdge(u, v) {
				continue
			}
			if rng.Float64() < p {
				require.NoError(t, g.AddEdge(u, v))
			}
		}
	}
	return g
}

// connectedOrder builds a random arrival order in which every vertex
// after the first has a previously revealed neighbor.
func connectedOrder(t *testing.T, g *graph.Graph, rng *rand.Rand) []int {
	t.Helper()
	vertices := g.Vertices()
	start := vertices[rng.Intn(len(vertices))]
	order := []int{start}
	revealed := map[int]bool{start: true}
	frontier := map[int]bool{}
	addFrontier := func(v int) {
		nbrs, err := g.Neighbors(v)
		require.NoError(t, err)
		for _, w := range nbrs {
			if !revealed[w] {
				frontier[w] = true
			}
		}
	}
	addFrontier(start)
	for len(order) < len(vertices) {
		candidates := make([]int, 0, len(frontier))
		for v := range frontier {
			candidates = append(candidates, v)
		}
		require.NotEmpty(t, candidates, "graph must be connected")
		sort.Ints(candidates)
		next := candidates[rng.Intn(len(candidates))]
		delete(frontier, next)
		revealed[next] = true
		order = append(order, next)
		addFrontier(next)
	}
	return order
}
