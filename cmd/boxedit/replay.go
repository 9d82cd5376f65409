package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/philipparndt/boxedit/internal/replay"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/philipparndt/boxedit/pkg/scene"
	"github.com/spf13/cobra"
)

var (
	replayPNG   string
	replayOut   string
	replayFrame int
	replayQuiet bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [script.yaml]",
	Short: "Replay a scripted pointer session against a box",
	Long: `Run the frames of a script through the editor without a window and
print what happened in each frame. The resulting box can be saved with
--out, and a frame can be rendered to a PNG file with --png.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayPNG, "png", "", "render a frame to this PNG file")
	replayCmd.Flags().IntVar(&replayFrame, "frame", -1, "frame to render with --png (negative counts from the end)")
	replayCmd.Flags().StringVarP(&replayOut, "out", "o", "", "write the final box to this YAML file")
	replayCmd.Flags().BoolVarP(&replayQuiet, "quiet", "q", false, "only print the summary")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	script, err := scene.LoadScript(args[0])
	if err != nil {
		return err
	}

	r, err := replay.Run(script, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !replayQuiet {
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FRAME\tDOWN\tHOVER\tSTATUS\tFACE\tDRAG\tFIRST\tCENTER\tSIZE")
		for _, rec := range r.Records {
			fmt.Fprintf(w, "%d\t%v\t%v\t%s\t%s\t%v\t%v\t%s\t%s\n",
				rec.Index, rec.Pointer.Down, rec.Hovering, rec.Status, rec.Face, rec.Result.Dragging, rec.Result.FirstFrame,
				formatVec(geometry.Center(rec.Box)), formatVec(geometry.Size(rec.Box)))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	final := r.Final()
	fmt.Fprintf(out, "Mode: %s, frames: %d, drags: %d\n", r.Mode, len(r.Records), r.Drags())
	fmt.Fprintf(out, "Start: center %s size %s\n", formatVec(geometry.Center(r.Start)), formatVec(geometry.Size(r.Start)))
	fmt.Fprintf(out, "Final: center %s size %s volume %.6f\n", formatVec(geometry.Center(final)), formatVec(geometry.Size(final)), geometry.Volume(final))

	if replayOut != "" {
		if err := scene.SaveBox(replayOut, final); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", replayOut)
	}

	if replayPNG != "" {
		frame := replayFrame
		if frame < 0 {
			frame += len(r.Records)
		}
		snap := cfg.Editor.Snapshot
		img, err := r.Snapshot(frame, r.Camera(), snap.Width, snap.Height, snap.Grid)
		if err != nil {
			return err
		}
		if err := replay.WritePNG(replayPNG, img); err != nil {
			return err
		}
		fmt.Fprintf(out, "Rendered frame %d to %s\n", frame, replayPNG)
	}
	return nil
}
