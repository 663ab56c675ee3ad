// Package onlicolor is a toolkit for online graph coloring: vertices
// arrive one at a time, each must be colored the moment it is revealed,
// and decisions are final.
//
// 🚀 What does onlicolor do?
//
//	A deterministic, experiment-oriented library that brings together:
//		• Graph primitives: simple undirected graphs with sorted, stable views
//		• Online colorers: FirstFit, CBIP (bipartite), FirstFitHeuristic
//		• Instance builders: paths, cycles, stars, random k-colorable graphs
//		• EDGES files: plain-text graph interchange with arrival orders
//		• Simulation: seeded batches and n-by-k sweeps with competitive ratios
//		• Reporting: CSV, Markdown and LaTeX tables plus trend fitting
//		• Drawing: spring-layout ASCII rendering of colored graphs
//
// ✨ Why choose onlicolor?
//
//   - Reproducible – every experiment is pinned to a seed, down to the
//     individual coloring
//   - Honest online model – algorithms see revealed neighbors only,
//     through an oracle whose contract is checked at every step
//   - Measurable – competitive ratios, aggregate statistics and fitted
//     growth trends come built in
//
// Under the hood, everything is organized per concern:
//
//	graph/    — the undirected graph and its revealed-neighbor oracle
//	coloring/ — the online algorithms and their shared color machinery
//	builder/  — reproducible instance construction
//	edgefile/ — EDGES persistence
//	simulate/ — runs, batches and parameter grids
//	analysis/ — curve fitting over competitive-ratio series
//	report/   — results tables
//	viz/      — ASCII drawings
//	cmd/      — the onlicolor command-line interface
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	a 4-cycle is 2-colorable, and CBIP colors it with exactly 2 colors
//	on any connectivity-preserving arrival order.
//
//	go get github.com/katalvlaran/onlicolor
package onlicolor
