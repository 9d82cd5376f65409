package boxedit

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/gesture"
	"github.com/philipparndt/boxedit/pkg/geometry"
)

const (
	highlightAlpha = 16
	arrowAlpha     = 100
	arrowLength    = 3
	// Lift of the highlight above the face so it does not z-fight with it
	highlightOffset = 0.001
)

// Face colors follow the axis the face is perpendicular to: Y green, Z blue, X red
var faceColors = [geometry.FaceCount]color.RGBA{
	{0, 255, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{0, 0, 255, 255},
	{255, 0, 0, 255},
	{255, 0, 0, 255},
}

// FaceColor returns the color of face f with the given alpha. FaceNone has
// no color and gives the zero value.
func FaceColor(f geometry.Face, alpha uint8) color.RGBA {
	if !f.Valid() {
		return color.RGBA{}
	}
	c := faceColors[f]
	c.A = alpha
	return c
}

// OnHover reacts to the pointer being over the box
func (w *Widget) OnHover(c gesture.Cursor) {
	w.hints.SetHelpText(HelpText)
	if w.session.Status != StatusMoving {
		w.session.Status = StatusSnapped
	}
	w.session.Face = geometry.ResolveBoxFace(w.session.Box, c.Normal)
	if !w.session.Face.Valid() {
		return
	}
	w.highlightFace(w.session.Box, w.session.Face)
	w.renderGizmo(w.session.Box, w.session.Face)
}

// highlightFace fills the face with a translucent plane. The renderer fills
// the [-0.5, 0.5] square of the plane frame, hence the scale by 2.
func (w *Widget) highlightFace(box mgl64.Mat4, f geometry.Face) {
	plane := geometry.FacePlane(box, f).
		Mul4(mgl64.Scale3D(2, 2, 1)).
		Mul4(mgl64.Translate3D(0, 0, highlightOffset))
	w.renderer.RenderFilledPlane(plane, FaceColor(f, highlightAlpha))
}

// renderGizmo draws an arrow out of the face center along its normal
func (w *Widget) renderGizmo(box mgl64.Mat4, f geometry.Face) {
	plane := geometry.FacePlane(box, f)
	dir := geometry.SafeNormalize(plane.Col(2).Vec3())
	from := plane.Col(3).Vec3()
	to := from.Add(dir.Mul(arrowLength))
	w.renderer.RenderArrow(from, to, FaceColor(f, arrowAlpha), EffectNoDepthTest)
}
