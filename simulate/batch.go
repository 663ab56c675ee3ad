package simulate

import (
	"fmt"
	"math"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/onlicolor/edgefile"
)

// Option configures batch and grid execution.
type Option func(*batchOptions)

type batchOptions struct {
	workers  int
	graphDir string
}

func resolveOptions(opts []Option) batchOptions {
	o := batchOptions{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers fans instances of a batch out over w goroutines. The
// parallelism is strictly across independent instances; a single
// coloring run is always sequential. Values below 1 mean sequential.
func WithWorkers(w int) Option {
	return func(o *batchOptions) {
		if w > 0 {
			o.workers = w
		}
	}
}

// WithGraphDir loads pre-generated EDGES files from dir (falling back to
// generation for missing files), using the naming scheme of GenerateAll.
func WithGraphDir(dir string) Option {
	return func(o *batchOptions) {
		o.graphDir = dir
	}
}

// RunBatch executes runs independent instances of spec, with seeds
// spec.Seed, spec.Seed+1, ..., and aggregates their competitive ratios.
// Results are collected by instance index, so the output is identical
// whatever the worker count.
func RunBatch(spec Spec, runs int, opts ...Option) (BatchResult, error) {
	o := resolveOptions(opts)
	if err := checkAlgorithm(spec.Algorithm); err != nil {
		return BatchResult{}, err
	}
	ratios := make([]float64, runs)
	errs := make([]error, runs)

	var wg sync.WaitGroup
	sem := make(chan struct{}, o.workers)
	for i := 0; i < runs; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			res, err := runInstance(spec, i, o)
			if err != nil {
				errs[i] = err
				return
			}
			ratios[i] = res.Ratio
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return BatchResult{}, err
		}
	}

	return BatchResult{
		Spec:      spec,
		Runs:      runs,
		MeanRatio: mean(ratios),
		StdDev:    stdDev(ratios),
		Ratios:    ratios,
	}, nil
}

// runInstance runs instance i of a batch: from a pre-generated EDGES
// file when available, generated from the derived seed otherwise.
func runInstance(spec Spec, i int, o batchOptions) (RunResult, error) {
	derived := spec
	derived.Seed = spec.Seed + int64(i)
	if o.graphDir != "" {
		path := GraphPath(o.graphDir, spec.N, spec.K, spec.P, i)
		if _, err := os.Stat(path); err == nil {
			g, ordering, err := edgefile.LoadFile(path)
			if err != nil {
				return RunResult{}, fmt.Errorf("simulate: %s: %w", path, err)
			}
			log.Debugf("loaded %s: %d vertices, %d edges", path, g.VertexCount(), g.EdgeCount())
			return RunOn(derived, g, ordering)
		}
	}
	return Run(derived)
}

// mean returns the arithmetic mean, 0 for an empty sample.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdDev returns the sample standard deviation, 0 for fewer than two points.
func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}
