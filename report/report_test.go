package report

import (
	"strings"
	"testing"

	"github.com/katalvlaran/onlicolor/simulate"
)

func sample() []simulate.BatchResult {
	mk := func(alg string, k, n int, mean, sd float64) simulate.BatchResult {
		return simulate.BatchResult{
			Spec:      simulate.Spec{N: n, K: k, P: 0.5, Algorithm: alg},
			Runs:      10,
			MeanRatio: mean,
			StdDev:    sd,
		}
	}
	return []simulate.BatchResult{
		mk(simulate.AlgFirstFit, 2, 40, 1.35, 0.12),
		mk(simulate.AlgCBIP, 2, 10, 1.0, 0.0),
		mk(simulate.AlgFirstFit, 2, 10, 1.15, 0.08),
	}
}

func TestWriteCSV(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, sample()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4:\n%s", len(lines), b.String())
	}
	if lines[0] != "Algorithm,k,n,N,Average Competitive Ratio,Standard Deviation" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != simulate.AlgCBIP+",2,10,10,1.0000,0.0000" {
		t.Fatalf("first row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], simulate.AlgFirstFit+",2,10,") {
		t.Fatalf("rows not sorted by (algorithm, k, n): %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], simulate.AlgFirstFit+",2,40,") {
		t.Fatalf("rows not sorted by (algorithm, k, n): %q", lines[3])
	}
}

func TestWriteMarkdown(t *testing.T) {
	var b strings.Builder
	if err := WriteMarkdown(&b, sample()); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "| Algorithm | k | n | N | Average Competitive Ratio | Standard Deviation |") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "| --- | --- | --- | --- | --- | --- |") {
		t.Fatalf("missing separator:\n%s", out)
	}
	if !strings.Contains(out, "| 1.3500 | 0.1200 |") {
		t.Fatalf("missing formatted row:\n%s", out)
	}
}

func TestWriteLaTeX(t *testing.T) {
	var b strings.Builder
	if err := WriteLaTeX(&b, sample()); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{
		"\\begin{tabular}{l r r r r r}",
		"Algorithm & k & n & N & Average Competitive Ratio & Standard Deviation \\\\",
		simulate.AlgCBIP + " & 2 & 10 & 10 & 1.0000 & 0.0000 \\\\",
		"\\end{tabular}",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}
}
