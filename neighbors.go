package sierpinski

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh vertex adapters for gonum's kd-tree, used to answer
// nearest-pair queries without pairwise comparison.

type vertex r3.Vec

func (v vertex) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(vertex)
	switch d {
	case 0:
		return v.X - q.X
	case 1:
		return v.Y - q.Y
	case 2:
		return v.Z - q.Z
	}
	panic("unreachable")
}

func (v vertex) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between vertices.
func (v vertex) Distance(c kdtree.Comparable) float64 {
	q := c.(vertex)
	return r3.Norm2(r3.Sub(r3.Vec(v), r3.Vec(q)))
}

type vertexSet []vertex

func (s vertexSet) Index(i int) kdtree.Comparable { return s[i] }

func (s vertexSet) Len() int { return len(s) }

func (s vertexSet) Slice(start, end int) kdtree.Interface { return s[start:end] }

func (s vertexSet) Pivot(d kdtree.Dim) int {
	p := vertexPlane{dim: d, set: s}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

type vertexPlane struct {
	dim kdtree.Dim
	set vertexSet
}

func (p vertexPlane) Less(i, j int) bool {
	return p.set[i].Compare(p.set[j], p.dim) < 0
}
func (p vertexPlane) Swap(i, j int) { p.set[i], p.set[j] = p.set[j], p.set[i] }
func (p vertexPlane) Len() int { return len(p.set) }
func (p vertexPlane) Slice(start, end int) kdtree.SortSlicer {
	p.set = p.set[start:end]
	return p
}

// MinSeparation returns the smallest Euclidean distance between two
// distinct mesh vertices. A compacted mesh always reports a value
// above VertexTol. Meshes with fewer than two vertices report +Inf.
func (m *Mesh) MinSeparation() float64 {
	if len(m.Vertices) < 2 {
		return math.Inf(1)
	}
	set := make(vertexSet, len(m.Vertices))
	for i, v := range m.Vertices {
		set[i] = vertex(v)
	}
	tree := kdtree.New(set, false)
	min2 := math.Inf(1)
	for _, v := range set {
		// Keep the 2 nearest: the query vertex itself and its
		// true neighbor.
		keep := kdtree.NewNKeeper(2)
		tree.NearestSet(keep, v)
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue
			}
			if c.Dist > 0 && c.Dist < min2 {
				min2 = c.Dist
			}
		}
	}
	return math.Sqrt(min2)
}
