package sierpinski_test

import (
	"testing"

	"github.com/fractalgo/sierpinski"
	"github.com/fractalgo/sierpinski/internal/d3"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestUnitTetraInscribed(t *testing.T) {
	const tol = 1e-15
	tetra := sierpinski.UnitTetra()
	for i, s := range tetra {
		require.InDelta(t, 1, r3.Norm(s), tol, "summit %d not on unit sphere", i)
	}
	// All edges of a regular tetrahedron have the same length.
	want := r3.Norm(r3.Sub(tetra[0], tetra[1]))
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.InDelta(t, want, r3.Norm(r3.Sub(tetra[i], tetra[j])), tol)
		}
	}
}

func TestSubdivide(t *testing.T) {
	tetra := sierpinski.UnitTetra()
	verts, tris, mids := tetra.Subdivide()

	// Face blocks in fixed order, 3 vertices each.
	wantBlocks := [4][3]r3.Vec{
		{tetra[0], tetra[1], tetra[2]},
		{tetra[0], tetra[2], tetra[3]},
		{tetra[0], tetra[3], tetra[1]},
		{tetra[1], tetra[2], tetra[3]},
	}
	for i, block := range wantBlocks {
		for j, want := range block {
			require.Equal(t, want, verts[3*i+j], "face block %d vertex %d", i, j)
		}
	}
	// One flat triangle per face block.
	for i, tri := range tris {
		require.Equal(t, [3]int{3 * i, 3*i + 1, 3*i + 2}, tri)
	}
	// Midpoints are unweighted means of the 6 summit pairs in fixed order.
	wantMids := [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for i, e := range wantMids {
		want := r3.Scale(0.5, r3.Add(tetra[e[0]], tetra[e[1]]))
		require.Equal(t, want, mids[i], "midpoint %d", i)
	}
}

func TestBuildRejectsNegative(t *testing.T) {
	m, err := sierpinski.Build(-1)
	require.ErrorIs(t, err, sierpinski.ErrNegativeIterations)
	require.Nil(t, m)
}

func TestBuildCounts(t *testing.T) {
	// After nbIt rounds there are 4^(nbIt+1) cells of 4 triangles
	// each. Cells touch at points only, so no face is ever shared and
	// the deduplicated mesh keeps all of them. Distinct vertices
	// follow the gasket recurrence G(L) = G(L-1) + 6*4^(L-1).
	for _, tc := range []struct {
		nbIt      int
		wantVerts int
		wantTris  int
	}{
		{nbIt: 0, wantVerts: 10, wantTris: 16},
		{nbIt: 1, wantVerts: 34, wantTris: 64},
		{nbIt: 2, wantVerts: 130, wantTris: 256},
		{nbIt: 3, wantVerts: 514, wantTris: 1024},
	} {
		m, err := sierpinski.Build(tc.nbIt)
		require.NoError(t, err)
		require.Len(t, m.Vertices, tc.wantVerts, "vertices at nbIt=%d", tc.nbIt)
		require.Len(t, m.Triangles, tc.wantTris, "triangles at nbIt=%d", tc.nbIt)
	}
}

func TestBuildMeshInvariants(t *testing.T) {
	m, err := sierpinski.Build(2)
	require.NoError(t, err)
	for i, tri := range m.Triangles {
		for _, idx := range tri {
			require.GreaterOrEqual(t, idx, 0, "triangle %d", i)
			require.Less(t, idx, len(m.Vertices), "triangle %d", i)
		}
		require.NotEqual(t, tri[0], tri[1], "triangle %d", i)
		require.NotEqual(t, tri[1], tri[2], "triangle %d", i)
		require.NotEqual(t, tri[0], tri[2], "triangle %d", i)
	}
	seen := make(map[[3]int]struct{}, len(m.Triangles))
	for _, tri := range m.Triangles {
		_, ok := seen[tri]
		require.False(t, ok, "duplicate triangle %v", tri)
		seen[tri] = struct{}{}
	}
	require.Greater(t, m.MinSeparation(), sierpinski.VertexTol)
}

func TestBuildDeterministic(t *testing.T) {
	a, err := sierpinski.Build(3)
	require.NoError(t, err)
	b, err := sierpinski.Build(3)
	require.NoError(t, err)
	require.Equal(t, a.Vertices, b.Vertices)
	require.Equal(t, a.Triangles, b.Triangles)
}

func TestBuildMinSeparation(t *testing.T) {
	// Cells at depth nbIt have edge length a/2^(nbIt+1) with a the
	// root edge. The closest pair of distinct vertices is one cell
	// edge apart.
	tetra := sierpinski.UnitTetra()
	edge := r3.Norm(r3.Sub(tetra[0], tetra[1]))
	for _, nbIt := range []int{0, 1, 2} {
		m, err := sierpinski.Build(nbIt)
		require.NoError(t, err)
		div := 2 << nbIt
		want := edge / float64(div)
		require.InDelta(t, want, m.MinSeparation(), 1e-12, "nbIt=%d", nbIt)
	}
}

func TestBuildBounds(t *testing.T) {
	m, err := sierpinski.Build(1)
	require.NoError(t, err)
	bb := d3.Box(m.Bounds())
	// The mesh keeps the root summits, so bounds match the root tetra.
	tetra := sierpinski.UnitTetra()
	var set d3.Box
	set.Min, set.Max = tetra[0], tetra[0]
	for _, s := range tetra[1:] {
		set.Min = d3.MinElem(set.Min, s)
		set.Max = d3.MaxElem(set.Max, s)
	}
	require.True(t, bb.Equals(set, 1e-15), "got %+v want %+v", bb, set)
}
