package builder

import (
	"fmt"

	"github.com/katalvlaran/onlicolor/graph"
)

// File-local constants: method tags and minima.
const (
	methodPath       = "Path"
	methodCycle      = "Cycle"
	methodStar       = "Star"
	methodBipartite  = "CompleteBipartite"
	minPathVertices  = 1
	minCycleVertices = 3
	minStarVertices  = 2
	minPartitionSize = 1
)

// Path returns a Constructor for the path graph on vertices 1..n with
// edges {i, i+1}. n = 1 yields a single isolated vertex.
// Deterministic: vertices and edges are emitted in ascending order.
func Path(n int) Constructor {
	return func(g *graph.Graph, _ config) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d (must be >= %d): %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		if err := g.AddVertex(1); err != nil {
			return fmt.Errorf("%s: AddVertex(1): %w", methodPath, err)
		}
		for v := 2; v <= n; v++ {
			if err := g.AddEdge(v-1, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, v-1, v, err)
			}
		}
		return nil
	}
}

// Cycle returns a Constructor for the cycle graph on vertices 1..n
// (n >= 3): the path 1..n closed by the edge {n, 1}.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg config) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d (must be >= %d): %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}
		if err := g.AddEdge(n, 1); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,1): %w", methodCycle, n, err)
		}
		return nil
	}
}

// Star returns a Constructor for the star on n vertices (n >= 2):
// center 1 joined to leaves 2..n.
func Star(n int) Constructor {
	return func(g *graph.Graph, _ config) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d (must be >= %d): %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		for leaf := 2; leaf <= n; leaf++ {
			if err := g.AddEdge(1, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(1,%d): %w", methodStar, leaf, err)
			}
		}
		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}: left side
// 1..n1, right side n1+1..n1+n2, every cross pair joined.
// Deterministic edge emission: left index ascending, then right.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *graph.Graph, _ config) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be >= %d): %w",
				methodBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		for u := 1; u <= n1; u++ {
			for v := n1 + 1; v <= n1+n2; v++ {
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodBipartite, u, v, err)
				}
			}
		}
		return nil
	}
}
