// Package builder constructs graph instances for coloring runs:
// deterministic fixtures (Path, Cycle, Star, CompleteBipartite) and the
// random k-colorable model the simulations are built on.
//
// This file holds the Constructor type, the Build entry point, and the
// resolved configuration.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/onlicolor/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// config. Constructors validate parameters early, return sentinel errors,
// and never panic at runtime. For a fixed config and call order the
// produced topology is identical across runs.
type Constructor func(g *graph.Graph, cfg config) error

// config is the resolved builder configuration; options mutate it before
// construction begins. No global state.
type config struct {
	rng *rand.Rand
}

// Option customizes construction via functional arguments.
type Option func(*config)

// WithRand provides an explicit RNG for stochastic constructors.
// A nil value is ignored; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a deterministic RNG with the given seed. Use this in
// tests and experiments to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// Build creates a fresh graph and applies all constructors in order.
// The first constructor error is wrapped with "builder.Build" context and
// returned immediately; callers branch with errors.Is against the
// package sentinels.
func Build(cons []Constructor, opts ...Option) (*graph.Graph, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	g := graph.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder.Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("builder.Build: %w", err)
		}
	}
	return g, nil
}
