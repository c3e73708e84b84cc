package sierpinski

import (
	"math"

	"github.com/fractalgo/sierpinski/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// VertexTol is the absolute distance below which two mesh vertices
// are treated as coincident and merged by Compact. It is on the order
// of 1e4 machine epsilons for float64.
const VertexTol = 1e-12

// Mesh is an indexed triangle mesh. Triangles reference Vertices by
// 0-based position.
type Mesh struct {
	Vertices  []r3.Vec
	Triangles [][3]int
}

// appendBlock concatenates one cell's local vertex and triangle blocks
// onto the mesh, offsetting triangle indices by the running vertex
// count.
func (m *Mesh) appendBlock(verts [12]r3.Vec, tris [4][3]int) {
	off := len(m.Vertices)
	m.Vertices = append(m.Vertices, verts[:]...)
	for _, t := range tris {
		m.Triangles = append(m.Triangles, [3]int{t[0] + off, t[1] + off, t[2] + off})
	}
}

// Compact merges vertices closer than VertexTol and removes duplicate
// faces. Vertex positions are looked up in a cache keyed by their
// position quantized to a VertexTol grid; pairwise comparison does not
// scale past a few thousand vertices. Triangle indices are normalized
// to ascending order before deduplication since winding carries no
// meaning in the final face set. Retained vertices and triangles keep
// first occurrence order.
func (m *Mesh) Compact() {
	cache := make(map[[3]int64]int, len(m.Vertices))
	remap := make([]int, len(m.Vertices))
	verts := make([]r3.Vec, 0, len(m.Vertices))
	ri := 1 / VertexTol
	for i, v := range m.Vertices {
		q := [3]int64{
			int64(math.Round(v.X * ri)),
			int64(math.Round(v.Y * ri)),
			int64(math.Round(v.Z * ri)),
		}
		j, ok := cache[q]
		if !ok {
			j = len(verts)
			cache[q] = j
			verts = append(verts, v)
		}
		remap[i] = j
	}
	seen := make(map[[3]int]struct{}, len(m.Triangles))
	tris := m.Triangles[:0]
	for _, t := range m.Triangles {
		t = [3]int{remap[t[0]], remap[t[1]], remap[t[2]]}
		if t[0] > t[1] {
			t[0], t[1] = t[1], t[0]
		}
		if t[1] > t[2] {
			t[1], t[2] = t[2], t[1]
		}
		if t[0] > t[1] {
			t[0], t[1] = t[1], t[0]
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tris = append(tris, t)
	}
	m.Vertices = verts
	m.Triangles = tris
}

// Triangle returns the ith face as explicit geometry.
func (m *Mesh) Triangle(i int) r3.Triangle {
	t := m.Triangles[i]
	return r3.Triangle{m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]}
}

// Bounds returns the axis aligned bounding box of the mesh vertices.
func (m *Mesh) Bounds() r3.Box {
	bb := d3.Box{Min: d3.Elem(math.MaxFloat64), Max: d3.Elem(-math.MaxFloat64)}
	for _, v := range m.Vertices {
		bb.Min = d3.MinElem(bb.Min, v)
		bb.Max = d3.MaxElem(bb.Max, v)
	}
	return r3.Box(bb)
}
