// Package simulate runs online-coloring experiments: single instances,
// seed-derived batches, and full n-by-k sweeps, producing competitive
// ratios and their aggregate statistics.
package simulate

import "errors"

// Algorithm names accepted by the registry.
const (
	AlgFirstFit          = "FirstFit"
	AlgCBIP              = "CBIP"
	AlgFirstFitHeuristic = "FirstFitHeuristic"
)

// ErrUnknownAlgorithm is returned for an unrecognized algorithm name,
// before any graph work begins.
var ErrUnknownAlgorithm = errors.New("simulate: unknown algorithm")

// Algorithms lists the registered algorithm names in display order.
func Algorithms() []string {
	return []string{AlgFirstFit, AlgCBIP, AlgFirstFitHeuristic}
}

// Spec describes one experiment configuration: a random k-colorable
// instance on N vertices with cross-set edge probability P, colored by
// Algorithm. Seed pins the instance and its arrival order.
type Spec struct {
	N         int
	K         int
	P         float64
	Algorithm string
	Seed      int64
}

// RunResult is the outcome of coloring one instance.
//   - NumColors: colors the algorithm spent.
//   - Ratio: NumColors divided by the planted chromatic number K.
type RunResult struct {
	Spec      Spec
	NumColors int
	Ratio     float64
	Colors    map[int]int
}

// BatchResult aggregates Runs independent instances of one Spec
// (seeds Seed, Seed+1, ...): the mean competitive ratio and its sample
// standard deviation (0 when Runs < 2).
type BatchResult struct {
	Spec      Spec
	Runs      int
	MeanRatio float64
	StdDev    float64
	Ratios    []float64
}
