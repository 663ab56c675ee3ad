// Package graph provides the in-memory undirected simple graph that the
// onlicolor algorithms color, plus the restricted neighbor view those
// algorithms are allowed to observe.
//
// What
//
//   - Graph: adjacency-list storage over positive-int vertex IDs.
//   - AddVertex / AddEdge build the instance; duplicates are idempotent,
//     self-loops and non-positive IDs are rejected with sentinel errors.
//   - Vertices, Neighbors, Edges return ascending, reproducible orders.
//   - RevealedNeighbors(v, revealed) is the neighbor oracle consumed by
//     the coloring package: only neighbors passing the revealed
//     predicate are visible, which is what makes an algorithm "online".
//
// Determinism
//
//	All enumeration methods sort their output, so any traversal that
//	follows them is fully reproducible across runs and platforms.
//
// Concurrency
//
//	Build the graph in one goroutine, then share it read-only. Query
//	methods never mutate, so independent coloring runs may read the
//	same Graph in parallel without coordination.
//
// Errors
//
//   - ErrBadVertexID    non-positive vertex identifier.
//   - ErrVertexNotFound query for an absent vertex.
//   - ErrSelfLoop       edge with coinciding endpoints.
package graph
