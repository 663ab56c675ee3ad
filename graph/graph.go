// Package graph defines the undirected simple graph type used by the
// online-coloring algorithms, keyed by positive integer vertex IDs.
//
// This file declares Graph, Edge, sentinel errors, and the NewGraph
// constructor.
package graph

import (
	"errors"
	"sort"
)

// Sentinel errors for graph operations.
var (
	// ErrBadVertexID indicates a non-positive vertex identifier.
	ErrBadVertexID = errors.New("graph: vertex ID must be positive")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("graph: self-loops not allowed")
)

// Edge is an unordered pair of distinct vertices, normalized so that U < V.
type Edge struct {
	U, V int
}

// Graph is an undirected simple graph over positive-int vertex IDs.
//
// The zero value is not usable; construct with NewGraph. A Graph is safe
// for concurrent reads once construction is complete; mutation is not
// synchronized and belongs to the build phase of exactly one owner.
type Graph struct {
	// adjacency[u][v] exists iff the edge {u,v} does; kept symmetric.
	adjacency map[int]map[int]struct{}
	edgeCount int
}

// NewGraph creates an empty undirected simple graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[int]map[int]struct{})}
}

// AddVertex inserts vertex v if absent. Idempotent.
// Returns ErrBadVertexID for non-positive IDs.
func (g *Graph) AddVertex(v int) error {
	if v < 1 {
		return ErrBadVertexID
	}
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[int]struct{})
	}
	return nil
}

// AddEdge inserts the undirected edge {u,v}, creating missing endpoints.
// Duplicate edges are idempotent. Returns ErrBadVertexID or ErrSelfLoop.
func (g *Graph) AddEdge(u, v int) error {
	if u < 1 || v < 1 {
		return ErrBadVertexID
	}
	if u == v {
		return ErrSelfLoop
	}
	if err := g.AddVertex(u); err != nil {
		return err
	}
	if err := g.AddVertex(v); err != nil {
		return err
	}
	if _, dup := g.adjacency[u][v]; dup {
		return nil
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++
	return nil
}

// HasVertex reports whether v is present.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.adjacency[v]
	return ok
}

// HasEdge reports whether the undirected edge {u,v} is present.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.adjacency[u][v]
	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Degree returns the number of neighbors of v,
// or ErrVertexNotFound if v is absent.
func (g *Graph) Degree(v int) (int, error) {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return len(nbrs), nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	out := make([]int, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Neighbors returns the neighbors of v in ascending order,
// or ErrVertexNotFound if v is absent.
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(v int) ([]int, error) {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(nbrs))
	for w := range nbrs {
		out = append(out, w)
	}
	sort.Ints(out)
	return out, nil
}

// Edges returns every edge exactly once, normalized U < V and sorted
// lexicographically. Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})
	return out
}

// Clone returns a deep copy of g. The copy shares no state with the
// original and may be mutated independently.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		adjacency: make(map[int]map[int]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for v, nbrs := range g.adjacency {
		m := make(map[int]struct{}, len(nbrs))
		for w := range nbrs {
			m[w] = struct{}{}
		}
		c.adjacency[v] = m
	}
	return c
}
