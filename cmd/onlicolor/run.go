package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/onlicolor/edgefile"
	"github.com/katalvlaran/onlicolor/simulate"
)

func newRunCommand() *cobra.Command {
	var (
		n    int
		k    int
		p    float64
		alg  string
		seed int64
		file string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Color a single instance and print the competitive ratio",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := simulate.Spec{N: n, K: k, P: p, Algorithm: alg, Seed: seed}
			var (
				res simulate.RunResult
				err error
			)
			if file != "" {
				g, ordering, lerr := edgefile.LoadFile(file)
				if lerr != nil {
					return lerr
				}
				spec.N = g.VertexCount()
				res, err = simulate.RunOn(spec, g, ordering)
			} else {
				res, err = simulate.Run(spec)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "algorithm: %s\n", spec.Algorithm)
			fmt.Fprintf(out, "vertices:  %d\n", spec.N)
			fmt.Fprintf(out, "colors:    %d\n", res.NumColors)
			fmt.Fprintf(out, "ratio:     %.4f\n", res.Ratio)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 20, "vertex count")
	cmd.Flags().IntVarP(&k, "k", "k", 2, "planted chromatic number")
	cmd.Flags().Float64VarP(&p, "probability", "p", 0.5, "cross-set edge probability")
	cmd.Flags().StringVarP(&alg, "algorithm", "a", simulate.AlgFirstFit,
		"algorithm ("+strings.Join(simulate.Algorithms(), ", ")+")")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&file, "file", "f", "", "color an EDGES file instead of generating")
	return cmd
}
