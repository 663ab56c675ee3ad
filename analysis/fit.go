// Package analysis fits trend curves to competitive-ratio measurements
// and renders a plain-text report over sweep results.
package analysis

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooFewPoints is returned when a fit needs more data than supplied.
var ErrTooFewPoints = errors.New("analysis: too few data points")

// FitKind names the candidate model families.
type FitKind string

const (
	FitConstant   FitKind = "constant"
	FitLinear     FitKind = "linear"
	FitLog        FitKind = "logarithmic"
	FitSquareRoot FitKind = "square-root"
)

// Fit is a fitted model y = A*f(n) + B with its coefficient of
// determination. Equation is a human-readable rendering.
type Fit struct {
	Kind     FitKind
	A, B     float64
	R2       float64
	Equation string
}

const minFitPoints = 2

// FitAll fits every candidate family to the (n, ratio) series and
// returns the fits ordered as the constants above. Needs at least two
// points with distinct n.
func FitAll(ns []int, ratios []float64) ([]Fit, error) {
	if len(ns) < minFitPoints || len(ns) != len(ratios) {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(ns))
	}
	xs := make([]float64, len(ns))
	for i, n := range ns {
		xs[i] = float64(n)
	}
	fits := []Fit{fitConstant(ratios)}
	if f, ok := fitTransformed(xs, ratios, FitLinear, func(x float64) float64 { return x }); ok {
		fits = append(fits, f)
	}
	if f, ok := fitTransformed(xs, ratios, FitLog, math.Log); ok {
		fits = append(fits, f)
	}
	if f, ok := fitTransformed(xs, ratios, FitSquareRoot, math.Sqrt); ok {
		fits = append(fits, f)
	}
	return fits, nil
}

// BestFit returns the fit with the highest R².
func BestFit(ns []int, ratios []float64) (Fit, error) {
	fits, err := FitAll(ns, ratios)
	if err != nil {
		return Fit{}, err
	}
	best := fits[0]
	for _, f := range fits[1:] {
		if f.R2 > best.R2 {
			best = f
		}
	}
	return best, nil
}

// fitConstant models y = B with B the mean; R² is 0 by definition
// unless the data is exactly constant.
func fitConstant(ys []float64) Fit {
	m := meanOf(ys)
	r2 := 0.0
	if sumSquares(ys, m) == 0 {
		r2 = 1.0
	}
	return Fit{
		Kind:     FitConstant,
		B:        m,
		R2:       r2,
		Equation: fmt.Sprintf("y = %.3f", m),
	}
}

// fitTransformed runs simple linear regression of y on f(x):
// y = A*f(x) + B. Returns ok=false when f(x) is degenerate (all equal).
func fitTransformed(xs, ys []float64, kind FitKind, f func(float64) float64) (Fit, bool) {
	ts := make([]float64, len(xs))
	for i, x := range xs {
		ts[i] = f(x)
	}
	tMean, yMean := meanOf(ts), meanOf(ys)
	var cov, varT float64
	for i := range ts {
		cov += (ts[i] - tMean) * (ys[i] - yMean)
		varT += (ts[i] - tMean) * (ts[i] - tMean)
	}
	if varT == 0 {
		return Fit{}, false
	}
	a := cov / varT
	b := yMean - a*tMean

	// R² against the mean model
	var ssRes float64
	for i := range ts {
		d := ys[i] - (a*ts[i] + b)
		ssRes += d * d
	}
	ssTot := sumSquares(ys, yMean)
	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	var eq string
	switch kind {
	case FitLinear:
		eq = fmt.Sprintf("y = %.6f*n + %.3f", a, b)
	case FitLog:
		eq = fmt.Sprintf("y = %.3f*log(n) + %.3f", a, b)
	case FitSquareRoot:
		eq = fmt.Sprintf("y = %.3f*sqrt(n) + %.3f", a, b)
	default:
		eq = fmt.Sprintf("y = %.3f*f(n) + %.3f", a, b)
	}
	return Fit{Kind: kind, A: a, B: b, R2: r2, Equation: eq}, true
}

func meanOf(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func sumSquares(xs []float64, m float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += (x - m) * (x - m)
	}
	return sum
}
