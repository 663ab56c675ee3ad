// Package edgefile reads and writes graph instances in the EDGES text
// format used by the experiment pipeline: one "u v" pair per line, with
// an optional "# Vertex ordering:" comment carrying the arrival order.
package edgefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/onlicolor/graph"
)

// ErrBadFormat is returned when a non-comment line is not an edge pair.
var ErrBadFormat = errors.New("edgefile: malformed line")

// orderingPrefix marks the comment line holding the arrival order.
const orderingPrefix = "# Vertex ordering:"

// Save writes g to w: the ordering comment (when ordering is non-empty)
// followed by all edges, normalized u < v and sorted. The output is
// deterministic for a fixed graph and ordering.
func Save(w io.Writer, g *graph.Graph, ordering []int) error {
	bw := bufio.NewWriter(w)
	if len(ordering) > 0 {
		parts := make([]string, len(ordering))
		for i, v := range ordering {
			parts[i] = strconv.Itoa(v)
		}
		if _, err := fmt.Fprintf(bw, "%s %s\n", orderingPrefix, strings.Join(parts, " ")); err != nil {
			return fmt.Errorf("edgefile: write ordering: %w", err)
		}
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("edgefile: write edge %d-%d: %w", e.U, e.V, err)
		}
	}
	return bw.Flush()
}

// SaveFile writes g to the named file, creating or truncating it.
func SaveFile(path string, g *graph.Graph, ordering []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edgefile: %w", err)
	}
	if err = Save(f, g, ordering); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load parses an EDGES stream. Blank lines and comments are skipped;
// the ordering comment, when present, supplies the arrival order. When
// absent, the natural ascending vertex order is returned. Vertices named
// only in the ordering are added as isolated vertices.
func Load(r io.Reader) (*graph.Graph, []int, error) {
	g := graph.NewGraph()
	var ordering []int

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if strings.HasPrefix(line, orderingPrefix) {
				ord, err := parseOrdering(strings.TrimPrefix(line, orderingPrefix), lineNo)
				if err != nil {
					return nil, nil, err
				}
				ordering = ord
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: line %d: %q", ErrBadFormat, lineNo, line)
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		if errU != nil || errV != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %q", ErrBadFormat, lineNo, line)
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, nil, fmt.Errorf("edgefile: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("edgefile: %w", err)
	}

	for _, v := range ordering {
		if err := g.AddVertex(v); err != nil {
			return nil, nil, fmt.Errorf("edgefile: ordering vertex %d: %w", v, err)
		}
	}
	if ordering == nil {
		ordering = g.Vertices()
	}
	return g, ordering, nil
}

// LoadFile parses the named EDGES file.
func LoadFile(path string) (*graph.Graph, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("edgefile: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func parseOrdering(s string, lineNo int) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: ordering entry %q", ErrBadFormat, lineNo, f)
		}
		out = append(out, v)
	}
	return out, nil
}
