package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/onlicolor/simulate"
)

// Trend classifies how a ratio series moves with n.
type Trend string

const (
	TrendGrowing   Trend = "growing"
	TrendFlat      Trend = "flat"
	TrendShrinking Trend = "shrinking"
)

// flatTolerance bounds the relative end-to-end change still called flat.
const flatTolerance = 0.02

// Classify compares the first and last mean ratio of the series.
func Classify(ratios []float64) Trend {
	if len(ratios) < 2 {
		return TrendFlat
	}
	first, last := ratios[0], ratios[len(ratios)-1]
	if first == 0 {
		return TrendFlat
	}
	rel := (last - first) / first
	switch {
	case rel > flatTolerance:
		return TrendGrowing
	case rel < -flatTolerance:
		return TrendShrinking
	default:
		return TrendFlat
	}
}

// Series is one (algorithm, k) measurement curve extracted from a sweep.
type Series struct {
	Algorithm string
	K         int
	Ns        []int
	Ratios    []float64
}

// GroupSeries buckets batch results by (algorithm, k) and sorts each
// bucket by n. Buckets come back sorted by algorithm name, then k.
func GroupSeries(results []simulate.BatchResult) []Series {
	type key struct {
		alg string
		k   int
	}
	buckets := make(map[key][]simulate.BatchResult)
	for _, r := range results {
		kk := key{r.Spec.Algorithm, r.Spec.K}
		buckets[kk] = append(buckets[kk], r)
	}
	keys := make([]key, 0, len(buckets))
	for kk := range buckets {
		keys = append(keys, kk)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].alg != keys[j].alg {
			return keys[i].alg < keys[j].alg
		}
		return keys[i].k < keys[j].k
	})

	out := make([]Series, 0, len(keys))
	for _, kk := range keys {
		rs := buckets[kk]
		sort.Slice(rs, func(i, j int) bool { return rs[i].Spec.N < rs[j].Spec.N })
		s := Series{Algorithm: kk.alg, K: kk.k}
		for _, r := range rs {
			s.Ns = append(s.Ns, r.Spec.N)
			s.Ratios = append(s.Ratios, r.MeanRatio)
		}
		out = append(out, s)
	}
	return out
}

// Report renders a plain-text trend analysis over sweep results: per
// (algorithm, k) series it prints the measured curve, the trend class,
// and the best-scoring fitted model.
func Report(results []simulate.BatchResult) string {
	var b strings.Builder
	b.WriteString("Competitive ratio trend analysis\n")
	b.WriteString("================================\n")
	for _, s := range GroupSeries(results) {
		fmt.Fprintf(&b, "\n%s (k=%d)\n", s.Algorithm, s.K)
		for i, n := range s.Ns {
			fmt.Fprintf(&b, "  n=%-6d ratio=%.4f\n", n, s.Ratios[i])
		}
		fmt.Fprintf(&b, "  trend: %s\n", Classify(s.Ratios))
		best, err := BestFit(s.Ns, s.Ratios)
		if err != nil {
			fmt.Fprintf(&b, "  fit: not enough points\n")
			continue
		}
		fmt.Fprintf(&b, "  fit: %s  (%s, R²=%.4f)\n", best.Equation, best.Kind, best.R2)
	}
	return b.String()
}
