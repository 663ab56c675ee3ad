package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/onlicolor/simulate"
)

func newGenerateCommand() *cobra.Command {
	var (
		ns   []int
		ks   []int
		p    float64
		runs int
		seed int64
		dir  string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random k-colorable graphs as EDGES files",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debugf("generating %d x %d grid into %s", len(ns), len(ks), dir)
			return simulate.GenerateAll(ns, ks, p, runs, dir, seed)
		},
	}
	cmd.Flags().IntSliceVar(&ns, "n", []int{10, 20, 40}, "vertex counts")
	cmd.Flags().IntSliceVar(&ks, "k", []int{2, 3}, "chromatic numbers")
	cmd.Flags().Float64VarP(&p, "probability", "p", 0.5, "cross-set edge probability")
	cmd.Flags().IntVar(&runs, "runs", 10, "instances per (n, k) cell")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base random seed")
	cmd.Flags().StringVarP(&dir, "dir", "d", "graphs", "output directory")
	return cmd
}
