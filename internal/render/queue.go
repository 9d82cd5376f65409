// Package render collects the overlay requests of the box widget during a
// frame and rasterizes them into an image.
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/boxedit"
)

// Kind is the type of a render command
type Kind int

const (
	KindWireframe Kind = iota
	KindFilledPlane
	KindArrow
)

func (k Kind) String() string {
	switch k {
	case KindWireframe:
		return "wireframe"
	case KindFilledPlane:
		return "plane"
	case KindArrow:
		return "arrow"
	default:
		return "unknown"
	}
}

// Command is one recorded draw request
type Command struct {
	Kind   Kind
	Matrix mgl64.Mat4 // box for wireframes, plane frame for filled planes
	From   mgl64.Vec3 // arrows only
	To     mgl64.Vec3
	Color  color.RGBA
	Effect boxedit.Effect
}

// WireframeColor is used for box outlines
var WireframeColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Queue records render commands and the help text for one frame. It
// implements boxedit.Renderer and boxedit.Hints.
type Queue struct {
	Commands []Command
	HelpText string
}

var (
	_ boxedit.Renderer = (*Queue)(nil)
	_ boxedit.Hints    = (*Queue)(nil)
)

// Reset clears the queue for a new frame
func (q *Queue) Reset() {
	q.Commands = q.Commands[:0]
	q.HelpText = ""
}

// Clone returns a copy that does not share storage with q
func (q *Queue) Clone() Queue {
	return Queue{
		Commands: append([]Command(nil), q.Commands...),
		HelpText: q.HelpText,
	}
}

// RenderWireframe queues the outline of a box
func (q *Queue) RenderWireframe(box mgl64.Mat4) {
	q.Commands = append(q.Commands, Command{Kind: KindWireframe, Matrix: box, Color: WireframeColor})
}

// RenderFilledPlane queues the [-0.5, 0.5] square of a plane frame
func (q *Queue) RenderFilledPlane(plane mgl64.Mat4, c color.RGBA) {
	q.Commands = append(q.Commands, Command{Kind: KindFilledPlane, Matrix: plane, Color: c})
}

// RenderArrow queues an arrow
func (q *Queue) RenderArrow(from, to mgl64.Vec3, c color.RGBA, effect boxedit.Effect) {
	q.Commands = append(q.Commands, Command{Kind: KindArrow, From: from, To: to, Color: c, Effect: effect})
}

// SetHelpText records the hint to display
func (q *Queue) SetHelpText(text string) {
	q.HelpText = text
}

// Count returns the number of commands of the given kind
func (q *Queue) Count(kind Kind) int {
	n := 0
	for _, c := range q.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// PlaneCorners returns the four world corners of a filled plane command
func PlaneCorners(plane mgl64.Mat4) [4]mgl64.Vec3 {
	return [4]mgl64.Vec3{
		mgl64.TransformCoordinate(mgl64.Vec3{-0.5, -0.5, 0}, plane),
		mgl64.TransformCoordinate(mgl64.Vec3{0.5, -0.5, 0}, plane),
		mgl64.TransformCoordinate(mgl64.Vec3{0.5, 0.5, 0}, plane),
		mgl64.TransformCoordinate(mgl64.Vec3{-0.5, 0.5, 0}, plane),
	}
}

// ArrowHead returns the two segments of the arrow tip, lying in a plane
// that contains the shaft.
func ArrowHead(from, to mgl64.Vec3) [2][2]mgl64.Vec3 {
	dir := to.Sub(from)
	length := dir.Len()
	if length == 0 {
		return [2][2]mgl64.Vec3{{to, to}, {to, to}}
	}
	dir = dir.Mul(1 / length)
	side := dir.Cross(mgl64.Vec3{0, 1, 0})
	if side.Len() < 1e-6 {
		side = dir.Cross(mgl64.Vec3{1, 0, 0})
	}
	side = side.Normalize().Mul(length * 0.1)
	back := to.Sub(dir.Mul(length * 0.2))
	return [2][2]mgl64.Vec3{
		{to, back.Add(side)},
		{to, back.Sub(side)},
	}
}
