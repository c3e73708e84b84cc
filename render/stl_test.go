package render_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fractalgo/sierpinski"
	"github.com/fractalgo/sierpinski/render"
)

func TestSTLCreateWriteRead(t *testing.T) {
	mesh, err := sierpinski.Build(1)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "gasket.stl")
	err = render.CreateSTL(path, render.NewMeshRenderer(mesh))
	if err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	bfile, err := io.ReadAll(fp)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewMeshRenderer(mesh))
	if err != nil {
		t.Fatal(err)
	}
	if len(model) != len(mesh.Triangles) {
		t.Fatalf("RenderAll read %d triangles, mesh has %d", len(model), len(mesh.Triangles))
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if b.String() != string(bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}

func TestWriteSTLEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := render.WriteSTL(&b, nil); err == nil {
		t.Fatal("expected error for empty triangle slice")
	}
}
