package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/boxedit/pkg/analysis"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/philipparndt/boxedit/pkg/openscad"
	"github.com/philipparndt/boxedit/pkg/scene"
	"github.com/philipparndt/boxedit/pkg/stl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	exportOut   string
	exportASCII bool
	fitOut      string
	fitSnap     bool
	fitEdges    int
)

var exportCmd = &cobra.Command{
	Use:   "export [box.yaml]",
	Short: "Export a box as an STL mesh",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var fitCmd = &cobra.Command{
	Use:   "fit [model.stl|model.scad]",
	Short: "Create a box around an STL model",
	Long: `Read an STL file (ASCII or binary) and write the axis aligned box
that encloses it. With --snap the bounds are widened to the integer grid
so the box can be edited right away. OpenSCAD sources are rendered with
the openscad CLI first.`,
	Args: cobra.ExactArgs(1),
	RunE: runFit,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output STL file (default: input name with .stl)")
	exportCmd.Flags().BoolVar(&exportASCII, "ascii", false, "write ASCII instead of binary STL")
	fitCmd.Flags().StringVarP(&fitOut, "out", "o", "", "write the box to this YAML file instead of stdout")
	fitCmd.Flags().BoolVar(&fitSnap, "snap", true, "widen the bounds to the integer grid")
	fitCmd.Flags().IntVar(&fitEdges, "edges", 3, "number of shortest and longest edges to list")
	rootCmd.AddCommand(exportCmd, fitCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	box, err := scene.LoadBox(args[0])
	if err != nil {
		return err
	}
	if geometry.IsNull(box) {
		return errors.Errorf("%s: box has no volume", args[0])
	}

	out := exportOut
	if out == "" {
		out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".stl"
	}
	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	if err := stl.Save(out, stl.BoxModel(name, box), exportASCII); err != nil {
		return err
	}
	logger.Debug("exported box", "file", out, "ascii", exportASCII)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
	return nil
}

func loadModel(cmd *cobra.Command, path string) (*stl.Model, error) {
	if !openscad.IsSource(path) {
		return stl.Parse(path)
	}

	tmp, err := os.MkdirTemp("", "boxedit-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp dir")
	}
	defer os.RemoveAll(tmp)

	out := filepath.Join(tmp, "model.stl")
	logger.Info("rendering OpenSCAD file", "file", path)
	if err := openscad.NewRenderer(filepath.Dir(path)).RenderToSTL(cmd.Context(), filepath.Base(path), out); err != nil {
		return nil, err
	}
	return stl.Parse(out)
}

func runFit(cmd *cobra.Command, args []string) error {
	model, err := loadModel(cmd, args[0])
	if err != nil {
		return errors.Wrapf(err, "failed to load %s", args[0])
	}
	box, ok := model.FitBox(fitSnap)
	if !ok {
		return errors.Errorf("%s: model has no triangles", args[0])
	}
	if geometry.IsNull(box) {
		return errors.Errorf("%s: model is flat, the fitted box has no volume", args[0])
	}
	stats := analysis.AnalyzeModel(model)
	logger.Debug("fitted box", "file", args[0], "triangles", stats.TriangleCount,
		"volume", stats.Volume, "surface", stats.SurfaceArea)

	if fitOut == "" {
		data, err := scene.MarshalBox(box)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := scene.SaveBox(fitOut, box); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	size := geometry.Size(box)
	fmt.Fprintf(out, "Model: %d triangles, bounds %s to %s\n", stats.TriangleCount,
		analysis.FormatVector(stats.Min), analysis.FormatVector(stats.Max))
	fmt.Fprintf(out, "  Surface area: %s\n", analysis.FormatMeasurement(stats.SurfaceArea, "square units"))
	fmt.Fprintf(out, "  Volume: %s (%.1f%% of the box)\n", analysis.FormatMeasurement(stats.Volume, "cubic units"),
		100*stats.Volume/geometry.Volume(box))
	fmt.Fprintf(out, "  Edges: %d, %.4f to %.4f\n", stats.EdgeCount, stats.MinEdgeLength, stats.MaxEdgeLength)
	for _, e := range analysis.FindShortestEdges(stats, fitEdges) {
		fmt.Fprintf(out, "    shortest %.4f %s - %s\n", e.Length, analysis.FormatVector(e.Start), analysis.FormatVector(e.End))
	}
	for _, e := range analysis.FindLongestEdges(stats, fitEdges) {
		fmt.Fprintf(out, "    longest  %.4f %s - %s\n", e.Length, analysis.FormatVector(e.Start), analysis.FormatVector(e.End))
	}
	fmt.Fprintf(out, "Wrote %s (%.2f × %.2f × %.2f)\n", fitOut, size[0], size[1], size[2])
	return nil
}
