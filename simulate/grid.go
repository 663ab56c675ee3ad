package simulate

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/onlicolor/edgefile"
)

// GraphPath names the EDGES file of instance i (0-based) for the
// (n, k, p) cell, matching what GenerateAll writes.
func GraphPath(dir string, n, k int, p float64, i int) string {
	return filepath.Join(dir, fmt.Sprintf("graph_n%d_k%d_p%.2f_run%d.edges", n, k, p, i+1))
}

// GenerateAll writes runs random k-colorable instances per (n, k) cell
// to dir, each with its arrival order, seeded seed, seed+1, ... per
// cell. Existing files are overwritten so a sweep always matches its
// seed.
func GenerateAll(ns, ks []int, p float64, runs int, dir string, seed int64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	for _, k := range ks {
		for _, n := range ns {
			log.Infof("generating %d graphs: n=%d k=%d p=%.2f", runs, n, k, p)
			for i := 0; i < runs; i++ {
				g, ordering, err := Instance(Spec{N: n, K: k, P: p, Seed: seed + int64(i)})
				if err != nil {
					return err
				}
				if err = edgefile.SaveFile(GraphPath(dir, n, k, p, i), g, ordering); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// RunGrid sweeps every (k, n) cell for one algorithm, running runs
// instances per cell, and returns one BatchResult per cell in (k, n)
// iteration order.
func RunGrid(ns, ks []int, p float64, runs int, algorithm string, seed int64, opts ...Option) ([]BatchResult, error) {
	if err := checkAlgorithm(algorithm); err != nil {
		return nil, err
	}
	results := make([]BatchResult, 0, len(ns)*len(ks))
	for _, k := range ks {
		for _, n := range ns {
			spec := Spec{N: n, K: k, P: p, Algorithm: algorithm, Seed: seed}
			batch, err := RunBatch(spec, runs, opts...)
			if err != nil {
				return nil, fmt.Errorf("simulate: %s n=%d k=%d: %w", algorithm, n, k, err)
			}
			log.Infof("completed %s k=%d n=%d: avg ratio %.4f (sd %.4f)",
				algorithm, k, n, batch.MeanRatio, batch.StdDev)
			results = append(results, batch)
		}
	}
	return results, nil
}
