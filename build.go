package sierpinski

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNegativeIterations is returned by Build when asked for a negative
// number of recursion rounds.
var ErrNegativeIterations = errors.New("iterations must be non-negative")

// cell is one live tetrahedron at the current recursion round with its
// surface and edge midpoint data. Cells share no mutable state.
type cell struct {
	summits Tetra
	verts   [12]r3.Vec
	tris    [4][3]int
	mids    [6]r3.Vec
}

func newCell(t Tetra) cell {
	c := cell{summits: t}
	c.verts, c.tris, c.mids = t.Subdivide()
	return c
}

// children derives the 4 next-round cells of c into dst, one per
// summit: each summit keeps its 3 nearest edge midpoints and the
// resulting corner tetrahedron is reordered canonically before
// subdivision.
func (c *cell) children(dst []cell) {
	for i, s := range c.summits {
		n := nearest3(s, c.mids)
		dst[i] = newCell(canonical([4]r3.Vec{s, n[0], n[1], n[2]}))
	}
}

// Build generates the Sierpinski tetrahedron mesh after nbIt recursion
// rounds beyond the seed subdivision of the root tetrahedron inscribed
// in the unit sphere. nbIt = 0 still yields the once-subdivided root
// (4 corner cells), not the raw tetrahedron. Cell count and mesh size
// grow as O(4^nbIt); see EstimatedTriangles for the advisory estimate.
func Build(nbIt int) (*Mesh, error) {
	if nbIt < 0 {
		return nil, fmt.Errorf("build: got %d iterations: %w", nbIt, ErrNegativeIterations)
	}
	cells := buildCells(nbIt)
	m := &Mesh{
		Vertices:  make([]r3.Vec, 0, 12*len(cells)),
		Triangles: make([][3]int, 0, 4*len(cells)),
	}
	for i := range cells {
		m.appendBlock(cells[i].verts, cells[i].tris)
	}
	m.Compact()
	return m, nil
}

// buildCells runs the seed subdivision of the root followed by nbIt
// fan-out rounds and returns the 4^(nbIt+1) final cells.
func buildCells(nbIt int) []cell {
	root := newCell(UnitTetra())
	cells := make([]cell, 4)
	root.children(cells)
	for k := 0; k < nbIt; k++ {
		cells = nextRound(cells)
	}
	return cells
}

// nextRound derives all children of the current cells. Parents are
// independent so they are fanned out across GOMAXPROCS workers;
// children land in fixed slots (4 per parent) so the merge order is
// identical to the sequential loop.
func nextRound(parents []cell) []cell {
	children := make([]cell, 4*len(parents))
	nw := runtime.GOMAXPROCS(0)
	if nw > len(parents) {
		nw = len(parents)
	}
	if nw <= 1 {
		for i := range parents {
			parents[i].children(children[4*i : 4*i+4])
		}
		return children
	}
	chunk := (len(parents) + nw - 1) / nw
	var wg sync.WaitGroup
	for start := 0; start < len(parents); start += chunk {
		end := min(start+chunk, len(parents))
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				parents[i].children(children[4*i : 4*i+4])
			}
		}(start, end)
	}
	wg.Wait()
	return children
}

// EstimatedTriangles returns the approximate triangle count a
// rendering of Build(nbIt) produces, 24*12^nbIt. Beyond nbIt = 6 the
// estimate reaches hundreds of millions and rendering may exhaust
// graphics memory.
func EstimatedTriangles(nbIt int) uint64 {
	n := uint64(24)
	for i := 0; i < nbIt; i++ {
		n *= 12
	}
	return n
}
