package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onlicolor/coloring"
	"github.com/katalvlaran/onlicolor/simulate"
)

// TestRun_UnknownAlgorithm fails before any instance work.
func TestRun_UnknownAlgorithm(t *testing.T) {
	_, err := simulate.Run(simulate.Spec{N: 10, K: 2, P: 0.5, Algorithm: "Greedy", Seed: 1})
	assert.ErrorIs(t, err, simulate.ErrUnknownAlgorithm)

	_, err = simulate.RunBatch(simulate.Spec{N: 10, K: 2, P: 0.5, Algorithm: "nope", Seed: 1}, 3)
	assert.ErrorIs(t, err, simulate.ErrUnknownAlgorithm)

	_, err = simulate.RunGrid([]int{10}, []int{2}, 0.5, 1, "nope", 1)
	assert.ErrorIs(t, err, simulate.ErrUnknownAlgorithm)
}

// TestRun_CBIPNeedsK2 propagates the chromatic-number precondition.
func TestRun_CBIPNeedsK2(t *testing.T) {
	_, err := simulate.Run(simulate.Spec{N: 10, K: 3, P: 0.5, Algorithm: simulate.AlgCBIP, Seed: 1})
	assert.ErrorIs(t, err, coloring.ErrChromaticNumber)
}

// TestRun_Deterministic: one seed, one result.
func TestRun_Deterministic(t *testing.T) {
	spec := simulate.Spec{N: 30, K: 3, P: 0.5, Algorithm: simulate.AlgFirstFit, Seed: 42}
	a, err := simulate.Run(spec)
	require.NoError(t, err)
	b, err := simulate.Run(spec)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a.NumColors, 3, "planted k=3 with p=0.5 needs at least k colors in practice")
	assert.InDelta(t, float64(a.NumColors)/3.0, a.Ratio, 1e-12)
}

// TestRunBatch_WorkerIndependence: the aggregate must not depend on the
// worker count.
func TestRunBatch_WorkerIndependence(t *testing.T) {
	spec := simulate.Spec{N: 20, K: 2, P: 0.5, Algorithm: simulate.AlgFirstFit, Seed: 7}
	seq, err := simulate.RunBatch(spec, 8)
	require.NoError(t, err)
	par, err := simulate.RunBatch(spec, 8, simulate.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
	assert.Len(t, seq.Ratios, 8)
	assert.GreaterOrEqual(t, seq.MeanRatio, 1.0, "ratio is at least 1 for k-colorable instances")
}

// TestRunBatch_Stats pins mean and sample standard deviation edge cases.
func TestRunBatch_Stats(t *testing.T) {
	spec := simulate.Spec{N: 12, K: 2, P: 0.5, Algorithm: simulate.AlgCBIP, Seed: 3}
	single, err := simulate.RunBatch(spec, 1)
	require.NoError(t, err)
	assert.Zero(t, single.StdDev, "one sample has no spread")
	assert.Equal(t, single.Ratios[0], single.MeanRatio)
}

// TestGrid_FilesRoundTrip generates EDGES files and sweeps them.
func TestGrid_FilesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ns := []int{10, 15}
	ks := []int{2}
	require.NoError(t, simulate.GenerateAll(ns, ks, 0.5, 3, dir, 11))

	for _, n := range ns {
		assert.FileExists(t, simulate.GraphPath(dir, n, 2, 0.5, 0))
	}

	fromFiles, err := simulate.RunGrid(ns, ks, 0.5, 3, simulate.AlgFirstFit, 11, simulate.WithGraphDir(dir))
	require.NoError(t, err)
	require.Len(t, fromFiles, 2)
	for _, batch := range fromFiles {
		assert.Equal(t, 3, batch.Runs)
		assert.GreaterOrEqual(t, batch.MeanRatio, 1.0)
	}
}

// TestHeuristic_RegisteredAndRuns smoke-tests the third registry entry.
func TestHeuristic_RegisteredAndRuns(t *testing.T) {
	res, err := simulate.Run(simulate.Spec{
		N: 25, K: 2, P: 0.4, Algorithm: simulate.AlgFirstFitHeuristic, Seed: 42,
	})
	require.NoError(t, err)
	assert.Len(t, res.Colors, 25)
	assert.GreaterOrEqual(t, res.NumColors, 2)
}
