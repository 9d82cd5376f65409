package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/boxedit"
	"github.com/philipparndt/boxedit/internal/render"
	"github.com/philipparndt/boxedit/pkg/geometry"
)

// overlayOptions controls how a render queue is drawn with raylib
type overlayOptions struct {
	// Thickness of lines, in world units. Scale it with the camera distance
	// for a constant screen thickness.
	Thickness float32
}

const cylinderSegments = int32(8)

// toRaylib converts a vector for raylib
func toRaylib(v mgl64.Vec3) rl.Vector3 {
	return rl.Vector3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}

// fromRaylib converts a raylib vector
func fromRaylib(v rl.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// drawOverlay draws the queued commands. Must be called between
// rl.BeginMode3D and rl.EndMode3D. Commands without depth test are drawn
// last, on top of everything else.
func drawOverlay(q *render.Queue, opts overlayOptions) {
	if opts.Thickness <= 0 {
		opts.Thickness = 0.02
	}

	for _, c := range q.Commands {
		if c.Effect&boxedit.EffectNoDepthTest == 0 {
			drawCommand(c, opts)
		}
	}

	// Flush what was batched so far before changing the depth state
	rl.DrawRenderBatchActive()
	rl.DisableDepthTest()
	for _, c := range q.Commands {
		if c.Effect&boxedit.EffectNoDepthTest != 0 {
			drawCommand(c, opts)
		}
	}
	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()
}

func drawCommand(c render.Command, opts overlayOptions) {
	col := toColor(c.Color)
	switch c.Kind {
	case render.KindWireframe:
		for _, e := range geometry.Edges(c.Matrix) {
			rl.DrawCylinderEx(toRaylib(e[0]), toRaylib(e[1]), opts.Thickness, opts.Thickness, cylinderSegments, col)
		}
	case render.KindFilledPlane:
		p := render.PlaneCorners(c.Matrix)
		a, b, cc, d := toRaylib(p[0]), toRaylib(p[1]), toRaylib(p[2]), toRaylib(p[3])
		// Both windings so the plane shows from either side
		rl.DrawTriangle3D(a, b, cc, col)
		rl.DrawTriangle3D(a, cc, d, col)
		rl.DrawTriangle3D(a, cc, b, col)
		rl.DrawTriangle3D(a, d, cc, col)
	case render.KindArrow:
		length := float32(c.To.Sub(c.From).Len())
		tip := c.To.Sub(c.To.Sub(c.From).Mul(0.2))
		rl.DrawCylinderEx(toRaylib(c.From), toRaylib(tip), opts.Thickness*2, opts.Thickness*2, cylinderSegments, col)
		rl.DrawCylinderEx(toRaylib(tip), toRaylib(c.To), length*0.08, 0, cylinderSegments, col)
	}
}
