package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/onlicolor/analysis"
	"github.com/katalvlaran/onlicolor/report"
	"github.com/katalvlaran/onlicolor/simulate"
)

// sweepConfig mirrors the YAML sweep file.
type sweepConfig struct {
	NValues    []int    `yaml:"n_values"`
	KValues    []int    `yaml:"k_values"`
	P          float64  `yaml:"p"`
	Runs       int      `yaml:"runs"`
	Seed       int64    `yaml:"seed"`
	Algorithms []string `yaml:"algorithms"`
	Workers    int      `yaml:"workers"`
	GraphDir   string   `yaml:"graph_dir"`
}

func defaultSweepConfig() sweepConfig {
	return sweepConfig{
		NValues:    []int{10, 20, 40, 80},
		KValues:    []int{2, 3},
		P:          0.5,
		Runs:       10,
		Seed:       1,
		Algorithms: []string{simulate.AlgFirstFit, simulate.AlgFirstFitHeuristic},
		Workers:    1,
	}
}

func loadSweepConfig(path string) (sweepConfig, error) {
	cfg := defaultSweepConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read sweep config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse sweep config %s: %w", path, err)
	}
	return cfg, nil
}

func newSweepCommand() *cobra.Command {
	var (
		configPath string
		format     string
		output     string
		analyze    bool
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run an n-by-k parameter sweep and print a results table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSweepConfig(configPath)
			if err != nil {
				return err
			}

			var results []simulate.BatchResult
			for _, alg := range cfg.Algorithms {
				log.Debugf("sweeping %s over n=%v k=%v", alg, cfg.NValues, cfg.KValues)
				opts := []simulate.Option{simulate.WithWorkers(cfg.Workers)}
				if cfg.GraphDir != "" {
					opts = append(opts, simulate.WithGraphDir(cfg.GraphDir))
				}
				batch, err := simulate.RunGrid(
					cfg.NValues, cfg.KValues, cfg.P, cfg.Runs, alg, cfg.Seed, opts...)
				if err != nil {
					return err
				}
				results = append(results, batch...)
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}
			if err := writeTable(out, format, results); err != nil {
				return err
			}
			if analyze {
				fmt.Fprintln(out)
				fmt.Fprint(out, analysis.Report(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML sweep configuration")
	cmd.Flags().StringVarP(&format, "format", "t", "markdown", "table format (csv, markdown, latex)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the table to a file instead of stdout")
	cmd.Flags().BoolVar(&analyze, "analyze", false, "append a trend analysis to the table")
	return cmd
}

func writeTable(w io.Writer, format string, results []simulate.BatchResult) error {
	switch strings.ToLower(format) {
	case "csv":
		return report.WriteCSV(w, results)
	case "markdown", "md":
		return report.WriteMarkdown(w, results)
	case "latex", "tex":
		return report.WriteLaTeX(w, results)
	default:
		return fmt.Errorf("unknown table format %q", format)
	}
}
