// Package viz renders small graphs as ASCII art: a force-directed
// spring layout projected onto a character grid, edges drawn as dots
// and vertices as their color symbol.
package viz

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/onlicolor/graph"
)

// ErrBadSize is returned when the requested grid cannot hold a drawing.
var ErrBadSize = errors.New("viz: grid dimensions must be positive")

// Point is a layout position in the unit square.
type Point struct {
	X, Y float64
}

const (
	defaultWidth      = 60
	defaultHeight     = 30
	defaultIterations = 50
	defaultSeed       = 1

	// minDistance caps force magnitudes when points nearly coincide.
	minDistance = 0.1
	repulsion   = 0.1
	attraction  = 0.01
	stepSize    = 0.1
)

// colorChars maps color c to colorChars[c-1]; colors past the alphabet
// render as 'X', uncolored vertices as 'O'.
const colorChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type options struct {
	width, height int
	iterations    int
	rng           *rand.Rand
}

// Option adjusts rendering parameters.
type Option func(*options)

// WithSize sets the character grid dimensions.
func WithSize(width, height int) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithIterations sets the number of spring relaxation rounds.
func WithIterations(n int) Option {
	return func(o *options) { o.iterations = n }
}

// WithRand supplies the randomness for initial placement. Layouts are
// deterministic for a fixed source.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

func buildOptions(opts []Option) options {
	o := options{
		width:      defaultWidth,
		height:     defaultHeight,
		iterations: defaultIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return o
}

// SpringLayout places the vertices of g in the unit square by force
// relaxation: every vertex pair repels, every edge attracts, and final
// coordinates are normalized to span [0,1] on each axis.
func SpringLayout(g *graph.Graph, opts ...Option) map[int]Point {
	o := buildOptions(opts)
	vertices := g.Vertices()
	pos := make(map[int]Point, len(vertices))
	for _, v := range vertices {
		pos[v] = Point{X: o.rng.Float64(), Y: o.rng.Float64()}
	}
	edges := g.Edges()
	force := make(map[int]Point, len(vertices))

	for round := 0; round < o.iterations; round++ {
		for _, v := range vertices {
			force[v] = Point{}
		}
		for i, u := range vertices {
			for _, v := range vertices[i+1:] {
				dx := pos[v].X - pos[u].X
				dy := pos[v].Y - pos[u].Y
				d := math.Max(math.Hypot(dx, dy), minDistance)
				f := repulsion / (d * d)
				fx, fy := f*dx/d, f*dy/d
				force[u] = Point{X: force[u].X - fx, Y: force[u].Y - fy}
				force[v] = Point{X: force[v].X + fx, Y: force[v].Y + fy}
			}
		}
		for _, e := range edges {
			dx := pos[e.V].X - pos[e.U].X
			dy := pos[e.V].Y - pos[e.U].Y
			d := math.Max(math.Hypot(dx, dy), minDistance)
			f := attraction * d
			fx, fy := f*dx/d, f*dy/d
			force[e.U] = Point{X: force[e.U].X + fx, Y: force[e.U].Y + fy}
			force[e.V] = Point{X: force[e.V].X - fx, Y: force[e.V].Y - fy}
		}
		for _, v := range vertices {
			pos[v] = Point{
				X: pos[v].X + stepSize*force[v].X,
				Y: pos[v].Y + stepSize*force[v].Y,
			}
		}
	}
	normalize(pos)
	return pos
}

// normalize rescales positions so each axis spans [0,1]. A degenerate
// axis keeps its raw offset from the minimum.
func normalize(pos map[int]Point) {
	if len(pos) == 0 {
		return
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pos {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	for v, p := range pos {
		pos[v] = Point{X: (p.X - minX) / rangeX, Y: (p.Y - minY) / rangeY}
	}
}

// Render draws g on a character grid. Edges appear as '.' segments,
// each colored vertex as its color symbol, uncolored vertices as 'O'.
// A nil colors map renders every vertex uncolored.
func Render(g *graph.Graph, colors map[int]int, opts ...Option) (string, error) {
	o := buildOptions(opts)
	if o.width <= 0 || o.height <= 0 {
		return "", fmt.Errorf("%w: %dx%d", ErrBadSize, o.width, o.height)
	}
	pos := SpringLayout(g, WithRand(o.rng), WithIterations(o.iterations))

	grid := make([][]byte, o.height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", o.width))
	}

	type cell struct{ x, y int }
	scaled := make(map[int]cell, len(pos))
	for v, p := range pos {
		scaled[v] = cell{
			x: int(p.X * float64(o.width-1)),
			y: int(p.Y * float64(o.height-1)),
		}
	}
	for _, e := range g.Edges() {
		a, b := scaled[e.U], scaled[e.V]
		drawLine(grid, a.x, a.y, b.x, b.y, '.')
	}
	for v, c := range scaled {
		if c.x < 0 || c.x >= o.width || c.y < 0 || c.y >= o.height {
			continue
		}
		grid[c.y][c.x] = colorChar(colors, v)
	}

	rows := make([]string, len(grid))
	for y, row := range grid {
		rows[y] = string(row)
	}
	return strings.Join(rows, "\n"), nil
}

func colorChar(colors map[int]int, v int) byte {
	c, ok := colors[v]
	if !ok {
		return 'O'
	}
	idx := c - 1
	if idx < 0 || idx >= len(colorChars) {
		return 'X'
	}
	return colorChars[idx]
}

// drawLine rasterizes a segment with Bresenham's algorithm, clipping
// to the grid.
func drawLine(grid [][]byte, x1, y1, x2, y2 int, ch byte) {
	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 >= x2 {
		sx = -1
	}
	if y1 >= y2 {
		sy = -1
	}
	err := dx - dy
	for {
		if y1 >= 0 && y1 < len(grid) && x1 >= 0 && x1 < len(grid[y1]) {
			grid[y1][x1] = ch
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
