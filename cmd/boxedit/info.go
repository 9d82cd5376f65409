package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/philipparndt/boxedit/pkg/scene"
	"github.com/spf13/cobra"
)

var infoFace string

var infoCmd = &cobra.Command{
	Use:   "info [box.yaml]",
	Short: "Display information about a box file",
	Long:  "Show the pose, extents and volume of a box and the center and outward normal of each face.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringVar(&infoFace, "face", "", "only list this face (bottom, top, back, front, right, left)")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	only := geometry.FaceNone
	if infoFace != "" {
		f, err := geometry.ParseFace(strings.ToLower(infoFace))
		if err != nil {
			return err
		}
		only = f
	}

	box, err := scene.LoadBox(filename)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	size := geometry.Size(box)

	fmt.Fprintln(out, "Box Information")
	fmt.Fprintln(out, "===============")
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Pose:")
	fmt.Fprintf(out, "  Center: %s\n", formatVec(geometry.Center(box)))
	for i, name := range []string{"X", "Y", "Z"} {
		fmt.Fprintf(out, "  Axis %s: %s\n", name, formatVec(geometry.Axis(box, i)))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Size: %.6f × %.6f × %.6f units\n", size[0], size[1], size[2])
	fmt.Fprintf(out, "  Volume: %.6f cubic units\n", geometry.Volume(box))
	if geometry.IsNull(box) {
		fmt.Fprintln(out, "  (box has no volume and cannot be edited)")
		return nil
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Faces:")
	for f := geometry.Face(0); f < geometry.FaceCount; f++ {
		if only.Valid() && f != only {
			continue
		}
		plane := geometry.FacePlane(box, f)
		fmt.Fprintf(out, "  %d %-6s center %s normal %s\n", int(f), f, formatVec(plane.Col(3).Vec3()), formatVec(geometry.FaceNormal(box, f)))
	}
	return nil
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v[0], v[1], v[2])
}
