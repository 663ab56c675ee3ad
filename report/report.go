// Package report renders sweep results as CSV, Markdown, or LaTeX
// tables. Rows are sorted by algorithm, then k, then n, and ratios are
// printed with four decimal places.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/onlicolor/simulate"
)

var header = []string{
	"Algorithm", "k", "n", "N",
	"Average Competitive Ratio", "Standard Deviation",
}

// sortedRows copies and orders the results for stable table output.
func sortedRows(results []simulate.BatchResult) []simulate.BatchResult {
	rows := make([]simulate.BatchResult, len(results))
	copy(rows, results)
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i].Spec, rows[j].Spec
		if a.Algorithm != b.Algorithm {
			return a.Algorithm < b.Algorithm
		}
		if a.K != b.K {
			return a.K < b.K
		}
		return a.N < b.N
	})
	return rows
}

func cells(r simulate.BatchResult) []string {
	return []string{
		r.Spec.Algorithm,
		strconv.Itoa(r.Spec.K),
		strconv.Itoa(r.Spec.N),
		strconv.Itoa(r.Runs),
		fmt.Sprintf("%.4f", r.MeanRatio),
		fmt.Sprintf("%.4f", r.StdDev),
	}
}

// WriteCSV emits the results table in CSV form.
func WriteCSV(w io.Writer, results []simulate.BatchResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}
	for _, r := range sortedRows(results) {
		if err := cw.Write(cells(r)); err != nil {
			return fmt.Errorf("report: write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush csv: %w", err)
	}
	return nil
}

// WriteMarkdown emits the results as a GitHub-flavored Markdown table.
func WriteMarkdown(w io.Writer, results []simulate.BatchResult) error {
	row := func(cols []string) error {
		_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cols, " | "))
		return err
	}
	if err := row(header); err != nil {
		return fmt.Errorf("report: write markdown: %w", err)
	}
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	if err := row(sep); err != nil {
		return fmt.Errorf("report: write markdown: %w", err)
	}
	for _, r := range sortedRows(results) {
		if err := row(cells(r)); err != nil {
			return fmt.Errorf("report: write markdown: %w", err)
		}
	}
	return nil
}

// WriteLaTeX emits the results as a LaTeX tabular environment.
func WriteLaTeX(w io.Writer, results []simulate.BatchResult) error {
	rows := sortedRows(results)
	var b strings.Builder
	b.WriteString("\\begin{tabular}{l r r r r r}\n")
	b.WriteString("\\hline\n")
	b.WriteString(strings.Join(header, " & ") + " \\\\\n")
	b.WriteString("\\hline\n")
	for _, r := range rows {
		b.WriteString(strings.Join(cells(r), " & ") + " \\\\\n")
	}
	b.WriteString("\\hline\n")
	b.WriteString("\\end{tabular}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: write latex: %w", err)
	}
	return nil
}
