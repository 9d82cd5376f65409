package boxedit

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/gesture"
	"github.com/philipparndt/boxedit/pkg/geometry"
)

type planeCall struct {
	plane mgl64.Mat4
	color color.RGBA
}

type arrowCall struct {
	from, to mgl64.Vec3
	color    color.RGBA
	effect   Effect
}

// recorder captures renderer and hint requests
type recorder struct {
	wireframes []mgl64.Mat4
	planes     []planeCall
	arrows     []arrowCall
	help       []string
}

func (r *recorder) RenderWireframe(box mgl64.Mat4) {
	r.wireframes = append(r.wireframes, box)
}

func (r *recorder) RenderFilledPlane(plane mgl64.Mat4, c color.RGBA) {
	r.planes = append(r.planes, planeCall{plane, c})
}

func (r *recorder) RenderArrow(from, to mgl64.Vec3, c color.RGBA, effect Effect) {
	r.arrows = append(r.arrows, arrowCall{from, to, c, effect})
}

func (r *recorder) SetHelpText(text string) {
	r.help = append(r.help, text)
}

func (r *recorder) calls() int {
	return len(r.wireframes) + len(r.planes) + len(r.arrows) + len(r.help)
}

// scriptedInput delivers at most one queued event per registration, the way
// the gesture dispatcher does, and keeps the snap plane slot between frames.
type scriptedInput struct {
	hover *gesture.Cursor
	drag  *dragEvent
	plane geometry.SnapPlane

	hoverShapes []mgl64.Mat4
	dragShapes  []mgl64.Mat4
}

type dragEvent struct {
	phase  gesture.Phase
	cursor gesture.Cursor
}

func (in *scriptedInput) RegisterHover(shape mgl64.Mat4, h gesture.HoverHandler) {
	in.hoverShapes = append(in.hoverShapes, shape)
	if in.hover != nil {
		h.OnHover(*in.hover)
		in.hover = nil
	}
}

func (in *scriptedInput) RegisterDrag(shape mgl64.Mat4, h gesture.DragHandler) {
	in.dragShapes = append(in.dragShapes, shape)
	if in.drag != nil {
		h.OnDrag(in.drag.phase, in.drag.cursor, &in.plane)
		in.drag = nil
	}
}

func (in *scriptedInput) calls() int {
	return len(in.hoverShapes) + len(in.dragShapes)
}

func (in *scriptedInput) queueHover(pos, normal mgl64.Vec3) {
	in.hover = &gesture.Cursor{Position: pos, Normal: normal}
}

func (in *scriptedInput) queueDrag(phase gesture.Phase, pos, normal mgl64.Vec3) {
	in.drag = &dragEvent{phase: phase, cursor: gesture.Cursor{Position: pos, Normal: normal}}
}

func newTestWidget() (*Widget, *scriptedInput, *recorder) {
	in := &scriptedInput{}
	rec := &recorder{}
	return New(in, rec, rec), in, rec
}
