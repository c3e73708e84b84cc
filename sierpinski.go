// Package sierpinski generates the triangle mesh of a Sierpinski
// tetrahedron fractal at an arbitrary recursion depth. The mesh is
// built by recursively replacing each live tetrahedron with four
// smaller corner tetrahedra and merging the surviving surfaces into
// one deduplicated vertex/triangle mesh.
package sierpinski

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Tetra is a tetrahedron defined by its 4 summits. Summit order is
// meaningful: subdivision enumerates faces and edge midpoints from it,
// so permuted summits yield differently ordered output blocks.
type Tetra [4]r3.Vec

// UnitTetra returns the regular tetrahedron inscribed in the unit
// sphere centered at the origin. It is the root of every Build call.
func UnitTetra() Tetra {
	sqrt2 := math.Sqrt2
	sqrt6 := math.Sqrt(6)
	return Tetra{
		{X: 0, Y: 0, Z: 1},
		{X: 2 * sqrt2 / 3, Y: 0, Z: -1. / 3},
		{X: -sqrt2 / 3, Y: sqrt6 / 3, Z: -1. / 3},
		{X: -sqrt2 / 3, Y: -sqrt6 / 3, Z: -1. / 3},
	}
}

// tetraFaces enumerates the 4 faces of a tetrahedron as summit index
// triples. Subdivide emits one 3-vertex block per face in this order.
var tetraFaces = [4][3]int{
	{0, 1, 2},
	{0, 2, 3},
	{0, 3, 1},
	{1, 2, 3},
}

// tetraEdges enumerates the 6 edges of a tetrahedron as summit index
// pairs. Midpoints follow this order.
var tetraEdges = [6][2]int{
	{0, 1}, {0, 2}, {0, 3},
	{1, 2}, {1, 3}, {2, 3},
}

// Subdivide computes the surface and edge midpoint data of one
// tetrahedron. It returns the 12 surface vertices grouped in 4 face
// blocks of 3, the 4 triangles indexing them with local 0-based
// indices (one flat triangle per face block) and the 6 edge midpoints.
// Pure arithmetic: degenerate summits propagate silently into
// zero-area triangles.
func (t Tetra) Subdivide() (verts [12]r3.Vec, tris [4][3]int, mids [6]r3.Vec) {
	for i, f := range tetraFaces {
		verts[3*i] = t[f[0]]
		verts[3*i+1] = t[f[1]]
		verts[3*i+2] = t[f[2]]
		tris[i] = [3]int{3 * i, 3*i + 1, 3*i + 2}
	}
	for i, e := range tetraEdges {
		mids[i] = r3.Scale(0.5, r3.Add(t[e[0]], t[e[1]]))
	}
	return verts, tris, mids
}

// nearest3 selects the 3 midpoints closest to summit s by Euclidean
// distance. Distance ties keep the midpoints' enumeration order
// (stable sort, first occurrence wins).
func nearest3(s r3.Vec, mids [6]r3.Vec) [3]r3.Vec {
	var d [6]float64
	for i, m := range mids {
		d[i] = r3.Norm(r3.Sub(s, m))
	}
	idx := [6]int{0, 1, 2, 3, 4, 5}
	sort.SliceStable(idx[:], func(a, b int) bool { return d[idx[a]] < d[idx[b]] })
	return [3]r3.Vec{mids[idx[0]], mids[idx[1]], mids[idx[2]]}
}

// canonical reorders 4 candidate summits by sequential extremum
// selection: maximum z, then maximum x, then maximum y, and the
// remaining point last (minimum y). Each selection takes the first
// point attaining the extremum so ties resolve to first occurrence.
func canonical(c [4]r3.Vec) Tetra {
	left := c[:]
	pick := func(better func(a, b r3.Vec) bool) r3.Vec {
		k := 0
		for i := 1; i < len(left); i++ {
			if better(left[i], left[k]) {
				k = i
			}
		}
		v := left[k]
		left = append(left[:k], left[k+1:]...)
		return v
	}
	var out Tetra
	out[0] = pick(func(a, b r3.Vec) bool { return a.Z > b.Z })
	out[1] = pick(func(a, b r3.Vec) bool { return a.X > b.X })
	out[2] = pick(func(a, b r3.Vec) bool { return a.Y > b.Y })
	out[3] = left[0]
	return out
}
