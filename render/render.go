// Package render consumes generated meshes: streaming triangle
// readers, binary STL output and shaded PNG snapshots.
package render

import (
	"io"

	"github.com/fractalgo/sierpinski"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer is a source of triangles consumable by the STL writers and
// RenderAll.
type Renderer interface {
	ReadTriangles(t []r3.Triangle) (int, error)
}

// meshRenderer streams the faces of an indexed mesh in face order.
type meshRenderer struct {
	m    *sierpinski.Mesh
	next int
}

// NewMeshRenderer returns a Renderer reading the faces of m in order.
func NewMeshRenderer(m *sierpinski.Mesh) Renderer {
	return &meshRenderer{m: m}
}

// ReadTriangles writes mesh faces into the argument buffer. It returns
// the number of triangles written and io.EOF once the mesh is spent.
func (r *meshRenderer) ReadTriangles(dst []r3.Triangle) (int, error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	if r.next >= len(r.m.Triangles) {
		return 0, io.EOF
	}
	n := 0
	for n < len(dst) && r.next < len(r.m.Triangles) {
		dst[n] = r.m.Triangle(r.next)
		n++
		r.next++
	}
	return n, nil
}

// RenderAll reads the full contents of a Renderer and returns the
// slice read. It does not return error on io.EOF.
func RenderAll(r Renderer) ([]r3.Triangle, error) {
	var err error
	var nt int
	result := make([]r3.Triangle, 0, 1<<12)
	buf := make([]r3.Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		if err != nil {
			break
		}
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
