// Package coloring provides online graph coloring: shared contracts,
// error definitions, and the per-run state types every colorer owns.
package coloring

import (
	"errors"
	"sort"
)

// Sentinel errors for coloring runs.
var (
	// ErrNilOracle is returned when a colorer is constructed without an oracle.
	ErrNilOracle = errors.New("coloring: oracle is nil")

	// ErrBadVertex is returned for a non-positive vertex identifier.
	ErrBadVertex = errors.New("coloring: vertex ID must be positive")

	// ErrVertexRevealed is returned when a vertex is stepped twice in one run.
	ErrVertexRevealed = errors.New("coloring: vertex already revealed")

	// ErrOracleContract is returned when the oracle reports a neighbor that
	// is not a member of the revealed set. The coloring proofs depend on the
	// oracle contract, so this aborts the run.
	ErrOracleContract = errors.New("coloring: oracle contract violation")

	// ErrNonBipartite is returned by CBIP when a revealed component contains
	// an odd cycle, i.e. the k=2 precondition does not hold.
	ErrNonBipartite = errors.New("coloring: revealed component is not bipartite")

	// ErrChromaticNumber is returned when CBIP is constructed with k != 2.
	ErrChromaticNumber = errors.New("coloring: chromatic number must be 2")

	// ErrDuplicateVertex is returned when a candidate pool repeats a vertex.
	ErrDuplicateVertex = errors.New("coloring: duplicate vertex in pool")
)

// Oracle reports the neighbors of vertex that are members of the revealed
// set, in ascending order. It is the sole channel through which a colorer
// observes graph structure; vertex itself need not be revealed.
//
// The oracle must be deterministic and side-effect free, symmetric on
// revealed pairs, and monotone under growth of the revealed set.
type Oracle func(vertex int, revealed *Revealed) []int

// Revealed is the monotone set of vertices processed so far in one run.
// A vertex enters exactly once, immediately after being colored, and the
// set never shrinks. Colorers own their Revealed; callers only read it
// through the oracle they are handed.
type Revealed struct {
	members map[int]struct{}
	order   []int
}

func newRevealed() *Revealed {
	return &Revealed{members: make(map[int]struct{})}
}

// Has reports membership of v.
func (r *Revealed) Has(v int) bool {
	_, ok := r.members[v]
	return ok
}

// Len returns the number of revealed vertices, which equals the number
// of coloring decisions made so far.
func (r *Revealed) Len() int { return len(r.order) }

// Members returns the revealed vertices in ascending order.
func (r *Revealed) Members() []int {
	out := make([]int, len(r.order))
	copy(out, r.order)
	sort.Ints(out)
	return out
}

// Order returns the reveal order, one entry per processed vertex.
func (r *Revealed) Order() []int {
	out := make([]int, len(r.order))
	copy(out, r.order)
	return out
}

// add records v; the caller guarantees v is fresh.
func (r *Revealed) add(v int) {
	r.members[v] = struct{}{}
	r.order = append(r.order, v)
}

// Result is the outcome of one coloring run:
//   - Colors: vertex → color (colors are positive integers from 1).
//   - NumColors: the maximum color assigned.
//   - Order: the reveal order actually used.
type Result struct {
	Colors    map[int]int
	NumColors int
	Order     []int
}

// snapshotResult copies run state into an independent Result.
func snapshotResult(colors map[int]int, numColors int, revealed *Revealed) *Result {
	out := &Result{
		Colors:    make(map[int]int, len(colors)),
		NumColors: numColors,
		Order:     revealed.Order(),
	}
	for v, c := range colors {
		out.Colors[v] = c
	}
	return out
}
