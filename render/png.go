package render

import (
	"github.com/fogleman/fauxgl"
	"github.com/fractalgo/sierpinski/internal/d3"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// Scale down images relative to Full HD resolution.
	fhdScaler     = 0.4
	width, height = int(1920. * fhdScaler), int(1080. * fhdScaler)
)

// ViewConfig positions the camera for PNG snapshots.
type ViewConfig struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eyepos r3.Vec
	Far    float64
	Near   float64
}

// DefaultView is an isometric view suitable for meshes fitted to the
// bi-unit cube.
var DefaultView = ViewConfig{
	Up:     r3.Vec{Z: 1},
	Eyepos: d3.Elem(2.4),
	Near:   1,
	Far:    10,
}

// STLToPNG renders the triangles of an STL file to a shaded PNG image
// using a Phong software rasterizer. The mesh is fitted to a bi-unit
// cube centered at the origin before rendering.
func STLToPNG(stlName, outputname string, view ViewConfig) error {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return err
	}
	const (
		scale = 1  // optional supersampling
		fovy  = 30 // vertical field of view in degrees
	)

	var (
		far    = view.Far
		near   = view.Near
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z) // camera position
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z) // view center position
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)             // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()                  // light direction
		color  = fauxgl.HexColor("#468966")                            // object color
	)

	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(uint(width), uint(height), image, resize.Bilinear)
	return fauxgl.SavePNG(outputname, image)
}
