package render

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/boxedit"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/philipparndt/boxedit/pkg/viewer"
)

var (
	// Background is the clear color of snapshots
	Background = color.RGBA{R: 30, G: 30, B: 35, A: 255}
	// HelpTextColor is used for the hint line
	HelpTextColor = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	gridColor     = color.RGBA{R: 60, G: 60, B: 68, A: 255}
)

// SnapshotOptions controls what is drawn besides the queued commands
type SnapshotOptions struct {
	Grid     bool
	GridSize int // half extent of the ground grid in units
}

// Snapshot rasterizes a frame's queue as seen from cam. Depth tested
// commands are drawn first, then the ones flagged with
// boxedit.EffectNoDepthTest on top.
func Snapshot(q *Queue, cam *viewer.Camera, width, height int, opts SnapshotOptions) *image.RGBA {
	c := viewer.NewCanvas(width, height, Background)
	p := projector{cam: cam, w: float64(width), h: float64(height)}

	if opts.Grid {
		drawGrid(c, p, opts.GridSize)
	}

	for _, cmd := range q.Commands {
		if cmd.Effect&boxedit.EffectNoDepthTest == 0 {
			drawCommand(c, p, cmd, true)
		}
	}
	for _, cmd := range q.Commands {
		if cmd.Effect&boxedit.EffectNoDepthTest != 0 {
			drawCommand(c, p, cmd, false)
		}
	}

	if q.HelpText != "" {
		c.Text(8, height-8, q.HelpText, HelpTextColor)
	}
	return c.Image
}

type projector struct {
	cam  *viewer.Camera
	w, h float64
}

func (p projector) project(v mgl64.Vec3) (float64, float64, float64) {
	return p.cam.Project(v, p.w, p.h)
}

func drawCommand(c *viewer.Canvas, p projector, cmd Command, depthTest bool) {
	switch cmd.Kind {
	case KindWireframe:
		for _, e := range geometry.Edges(cmd.Matrix) {
			drawSegment(c, p, e[0], e[1], cmd.Color, depthTest)
		}
	case KindFilledPlane:
		corners := PlaneCorners(cmd.Matrix)
		drawTriangle(c, p, corners[0], corners[1], corners[2], cmd.Color, depthTest)
		drawTriangle(c, p, corners[0], corners[2], corners[3], cmd.Color, depthTest)
	case KindArrow:
		drawSegment(c, p, cmd.From, cmd.To, cmd.Color, depthTest)
		for _, seg := range ArrowHead(cmd.From, cmd.To) {
			drawSegment(c, p, seg[0], seg[1], cmd.Color, depthTest)
		}
	}
}

func drawSegment(c *viewer.Canvas, p projector, a, b mgl64.Vec3, col color.RGBA, depthTest bool) {
	x1, y1, z1 := p.project(a)
	x2, y2, z2 := p.project(b)
	if z1 <= 0 || z2 <= 0 {
		return
	}
	c.Line(int(math.Round(x1)), int(math.Round(y1)), z1, int(math.Round(x2)), int(math.Round(y2)), z2, opaque(col), depthTest)
}

func drawTriangle(c *viewer.Canvas, p projector, a, b, d mgl64.Vec3, col color.RGBA, depthTest bool) {
	x1, y1, z1 := p.project(a)
	x2, y2, z2 := p.project(b)
	x3, y3, z3 := p.project(d)
	if z1 <= 0 || z2 <= 0 || z3 <= 0 {
		return
	}
	c.FillTriangle(x1, y1, z1, x2, y2, z2, x3, y3, z3, col, depthTest)
}

// opaque lifts the alpha of line colors; one pixel wide lines at the
// highlight alpha would be invisible
func opaque(col color.RGBA) color.RGBA {
	col.A = 255
	return col
}

func drawGrid(c *viewer.Canvas, p projector, half int) {
	if half <= 0 {
		half = 10
	}
	n := float64(half)
	for i := -half; i <= half; i++ {
		f := float64(i)
		drawSegment(c, p, mgl64.Vec3{f, 0, -n}, mgl64.Vec3{f, 0, n}, gridColor, true)
		drawSegment(c, p, mgl64.Vec3{-n, 0, f}, mgl64.Vec3{n, 0, f}, gridColor, true)
	}
}
