// Command sierpinski generates a Sierpinski tetrahedron mesh, writes
// it as binary STL and optionally renders a shaded PNG snapshot.
package main

import (
	"fmt"

	"github.com/fractalgo/sierpinski"
	"github.com/fractalgo/sierpinski/internal/d3"
	"github.com/fractalgo/sierpinski/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// warnIterations is the depth past which rendering the mesh may
// exhaust graphics memory.
const warnIterations = 6

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		nbIt    int
		display bool
		stlPath string
		pngPath string
	)
	cmd := &cobra.Command{
		Use:   "sierpinski",
		Short: "Generate the triangle mesh of a Sierpinski tetrahedron",
		Long: `Generate the triangle mesh of a Sierpinski tetrahedron inscribed in
the unit sphere, write it as binary STL and optionally render a shaded
PNG snapshot of the result.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(nbIt, display, stlPath, pngPath)
		},
	}
	cmd.Flags().IntVarP(&nbIt, "iterations", "n", 3, "recursion rounds beyond the seed subdivision")
	cmd.Flags().BoolVar(&display, "display", true, "render a PNG snapshot of the generated mesh")
	cmd.Flags().StringVar(&stlPath, "stl", "sierpinski.stl", "output STL path")
	cmd.Flags().StringVar(&pngPath, "png", "sierpinski.png", "output PNG path, used with --display")
	return cmd
}

func run(nbIt int, display bool, stlPath, pngPath string) error {
	if display && nbIt > warnIterations {
		log.Warnf("rendering approximately %d triangles may exceed available graphics memory",
			sierpinski.EstimatedTriangles(nbIt))
	}
	mesh, err := sierpinski.Build(nbIt)
	if err != nil {
		return err
	}
	size := d3.Box(mesh.Bounds()).Size()
	log.Infof("built mesh with %d vertices, %d triangles, extent %.3gx%.3gx%.3g",
		len(mesh.Vertices), len(mesh.Triangles), size.X, size.Y, size.Z)
	if err := render.CreateSTL(stlPath, render.NewMeshRenderer(mesh)); err != nil {
		return fmt.Errorf("writing %s: %w", stlPath, err)
	}
	log.Infof("wrote %s", stlPath)
	if !display {
		return nil
	}
	if err := render.STLToPNG(stlPath, pngPath, render.DefaultView); err != nil {
		return fmt.Errorf("rendering %s: %w", pngPath, err)
	}
	log.Infof("wrote %s", pngPath)
	return nil
}
