// Command onlicolor generates random k-colorable graphs, colors them
// online, sweeps parameter grids, and renders results as tables or
// ASCII drawings.
package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:          "onlicolor",
		Short:        "Online graph coloring experiments",
		Long:         "onlicolor colors vertices as they arrive, one at a time, and measures how far online algorithms land from the planted chromatic number.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newSweepCommand())
	rootCmd.AddCommand(newDrawCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
