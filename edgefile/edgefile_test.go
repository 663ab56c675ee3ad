package edgefile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onlicolor/builder"
	"github.com/katalvlaran/onlicolor/edgefile"
)

// TestSaveLoad_RoundTrip writes a graph plus ordering and reads it back.
func TestSaveLoad_RoundTrip(t *testing.T) {
	g, err := builder.Build([]builder.Constructor{builder.Path(4)})
	require.NoError(t, err)
	ordering := []int{3, 1, 4, 2}

	var buf strings.Builder
	require.NoError(t, edgefile.Save(&buf, g, ordering))

	got, gotOrdering, err := edgefile.Load(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), got.Edges())
	assert.Equal(t, ordering, gotOrdering)
}

// TestSave_Format pins the exact text layout.
func TestSave_Format(t *testing.T) {
	g, err := builder.Build([]builder.Constructor{builder.Path(3)})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, edgefile.Save(&buf, g, []int{2, 3, 1}))
	want := "# Vertex ordering: 2 3 1\n1 2\n2 3\n"
	assert.Equal(t, want, buf.String())
}

// TestLoad_NoOrdering falls back to the natural ascending order.
func TestLoad_NoOrdering(t *testing.T) {
	in := "1 2\n2 3\n\n# a comment\n3 4\n"
	g, ordering, err := edgefile.Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, ordering)
	assert.Equal(t, 3, g.EdgeCount())
}

// TestLoad_IsolatedOrderingVertex keeps ordering-only vertices.
func TestLoad_IsolatedOrderingVertex(t *testing.T) {
	in := "# Vertex ordering: 3 1 2\n1 2\n"
	g, ordering, err := edgefile.Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ordering)
	assert.True(t, g.HasVertex(3))
	deg, err := g.Degree(3)
	require.NoError(t, err)
	assert.Zero(t, deg)
}

// TestLoad_BadLines reports the offending line number.
func TestLoad_BadLines(t *testing.T) {
	cases := []string{
		"1 2 3\n",
		"1 x\n",
		"# Vertex ordering: 1 two\n",
	}
	for _, in := range cases {
		_, _, err := edgefile.Load(strings.NewReader(in))
		assert.ErrorIs(t, err, edgefile.ErrBadFormat, "input %q", in)
	}
	// graph-level failures are wrapped, not swallowed
	_, _, err := edgefile.Load(strings.NewReader("2 2\n"))
	assert.Error(t, err)
}
