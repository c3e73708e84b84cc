package sierpinski_test

import (
	"math"
	"testing"

	"github.com/fractalgo/sierpinski"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCompactMergesCoincidentVertices(t *testing.T) {
	a := r3.Vec{X: 0, Y: 0, Z: 0}
	b := r3.Vec{X: 1, Y: 0, Z: 0}
	c := r3.Vec{X: 0, Y: 1, Z: 0}
	// a2 is within VertexTol of a and must merge into it.
	a2 := r3.Vec{X: sierpinski.VertexTol / 10}
	m := &sierpinski.Mesh{
		Vertices:  []r3.Vec{a, b, c, a2},
		Triangles: [][3]int{{0, 1, 2}, {3, 1, 2}},
	}
	m.Compact()
	require.Equal(t, []r3.Vec{a, b, c}, m.Vertices, "first occurrence retained")
	require.Equal(t, [][3]int{{0, 1, 2}}, m.Triangles, "remapped duplicate face removed")
}

func TestCompactNormalizesWinding(t *testing.T) {
	a := r3.Vec{X: 0, Y: 0, Z: 0}
	b := r3.Vec{X: 1, Y: 0, Z: 0}
	c := r3.Vec{X: 0, Y: 1, Z: 0}
	d := r3.Vec{X: 0, Y: 0, Z: 1}
	m := &sierpinski.Mesh{
		Vertices:  []r3.Vec{a, b, c, d},
		Triangles: [][3]int{{2, 0, 1}, {1, 2, 0}, {0, 1, 3}},
	}
	m.Compact()
	// The two permutations of face (0,1,2) collapse to one row with
	// ascending indices.
	require.Equal(t, [][3]int{{0, 1, 2}, {0, 1, 3}}, m.Triangles)
}

func TestCompactKeepsSeparatedVertices(t *testing.T) {
	a := r3.Vec{}
	b := r3.Vec{X: 10 * sierpinski.VertexTol}
	m := &sierpinski.Mesh{Vertices: []r3.Vec{a, b}}
	m.Compact()
	require.Len(t, m.Vertices, 2)
}

func TestMinSeparation(t *testing.T) {
	m := &sierpinski.Mesh{Vertices: []r3.Vec{
		{X: 0}, {X: 1}, {X: 3}, {X: 3.5},
	}}
	require.InDelta(t, 0.5, m.MinSeparation(), 1e-15)

	empty := &sierpinski.Mesh{}
	require.True(t, math.IsInf(empty.MinSeparation(), 1), "expected +Inf for empty mesh")
}
