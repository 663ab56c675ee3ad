package simulate

import (
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/onlicolor/builder"
	"github.com/katalvlaran/onlicolor/coloring"
	"github.com/katalvlaran/onlicolor/graph"
)

// Run generates the instance described by spec (graph and arrival order
// both derived from spec.Seed) and colors it. Returns
// ErrUnknownAlgorithm for an unregistered name; algorithm preconditions
// (CBIP with k != 2, non-bipartite input) surface as the coloring
// package's sentinels.
func Run(spec Spec) (RunResult, error) {
	if err := checkAlgorithm(spec.Algorithm); err != nil {
		return RunResult{}, err
	}
	g, ordering, err := Instance(spec)
	if err != nil {
		return RunResult{}, err
	}
	return RunOn(spec, g, ordering)
}

// Instance builds the random graph and arrival order spec describes,
// both derived from spec.Seed. Run uses it internally; callers that
// need the graph itself (drawing, saving) get the identical instance.
func Instance(spec Spec) (*graph.Graph, []int, error) {
	rng := rand.New(rand.NewSource(spec.Seed))
	g, err := builder.Build(
		[]builder.Constructor{builder.RandomKColorable(spec.N, spec.K, spec.P)},
		builder.WithRand(rng),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("simulate: generate n=%d k=%d: %w", spec.N, spec.K, err)
	}
	return g, builder.Ordering(g, rng), nil
}

// RunOn colors a pre-built instance with spec.Algorithm, using the given
// arrival order (ignored by FirstFitHeuristic, which derives its own).
func RunOn(spec Spec, g *graph.Graph, ordering []int) (RunResult, error) {
	res, err := colorInstance(spec, g, ordering)
	if err != nil {
		return RunResult{}, err
	}
	out := RunResult{
		Spec:      spec,
		NumColors: res.NumColors,
		Ratio:     float64(res.NumColors) / float64(spec.K),
		Colors:    res.Colors,
	}
	log.Debugf("run %s n=%d k=%d seed=%d: %d colors (ratio %.4f)",
		spec.Algorithm, spec.N, spec.K, spec.Seed, out.NumColors, out.Ratio)
	return out, nil
}

func checkAlgorithm(name string) error {
	switch name {
	case AlgFirstFit, AlgCBIP, AlgFirstFitHeuristic:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// colorInstance dispatches to the registered colorer. Each call owns a
// fresh colorer: no state crosses runs.
func colorInstance(spec Spec, g *graph.Graph, ordering []int) (*coloring.Result, error) {
	oracle := coloring.GraphOracle(g)
	switch spec.Algorithm {
	case AlgFirstFit:
		ff, err := coloring.NewFirstFit(oracle)
		if err != nil {
			return nil, err
		}
		return ff.Run(ordering)
	case AlgCBIP:
		cb, err := coloring.NewCBIP(oracle, spec.K)
		if err != nil {
			return nil, err
		}
		return cb.Run(ordering)
	case AlgFirstFitHeuristic:
		h, err := coloring.NewFirstFitHeuristic(oracle, g.Vertices())
		if err != nil {
			return nil, err
		}
		return h.Run()
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, spec.Algorithm)
}
