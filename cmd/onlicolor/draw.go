package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/onlicolor/edgefile"
	"github.com/katalvlaran/onlicolor/graph"
	"github.com/katalvlaran/onlicolor/simulate"
	"github.com/katalvlaran/onlicolor/viz"
)

func newDrawCommand() *cobra.Command {
	var (
		file   string
		n      int
		k      int
		p      float64
		alg    string
		seed   int64
		width  int
		height int
	)
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Render a colored graph as ASCII art",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := simulate.Spec{N: n, K: k, P: p, Algorithm: alg, Seed: seed}
			var (
				g        *graph.Graph
				ordering []int
				err      error
			)
			if file != "" {
				if g, ordering, err = edgefile.LoadFile(file); err != nil {
					return err
				}
				spec.N = g.VertexCount()
			} else if g, ordering, err = simulate.Instance(spec); err != nil {
				return err
			}
			res, err := simulate.RunOn(spec, g, ordering)
			if err != nil {
				return err
			}
			art, err := viz.Render(g, res.Colors, viz.WithSize(width, height), viz.WithSeed(seed))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, art)
			fmt.Fprintf(out, "\n%s used %d colors (ratio %.4f)\n",
				spec.Algorithm, res.NumColors, res.Ratio)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "draw an EDGES file instead of generating")
	cmd.Flags().IntVarP(&n, "n", "n", 15, "vertex count")
	cmd.Flags().IntVarP(&k, "k", "k", 2, "planted chromatic number")
	cmd.Flags().Float64VarP(&p, "probability", "p", 0.5, "cross-set edge probability")
	cmd.Flags().StringVarP(&alg, "algorithm", "a", simulate.AlgFirstFit,
		"algorithm ("+strings.Join(simulate.Algorithms(), ", ")+")")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&width, "width", 60, "drawing width in characters")
	cmd.Flags().IntVar(&height, "height", 30, "drawing height in characters")
	return cmd
}
