package measurement

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/pkg/geometry"
)

const (
	labelFontSize = 14
	labelPadding  = 4
)

var axisNames = [3]string{"X", "Y", "Z"}

// RenderContext holds what is needed to label the edges of a box
type RenderContext struct {
	Camera     rl.Camera3D
	Font       rl.Font
	Box        mgl64.Mat4
	Face       geometry.Face // face under the pointer or being dragged
	Dragging   bool
	AxisColors [3]rl.Color
}

// DrawBoxDimensions labels one edge per box axis with its length. The axis
// of the hovered face is highlighted, and selected while dragging.
func DrawBoxDimensions(ctx RenderContext) []rl.Rectangle {
	if geometry.IsNull(ctx.Box) {
		return nil
	}
	edges := geometry.Edges(ctx.Box)
	size := geometry.Size(ctx.Box)

	faceAxis := -1
	if ctx.Face.Valid() {
		faceAxis, _ = ctx.Face.Axis()
	}

	rects := make([]rl.Rectangle, 0, 3)
	for axis := 0; axis < 3; axis++ {
		// Edges are grouped by axis, four each
		e := edges[axis*4]
		mid := e[0].Add(e[1]).Mul(0.5)
		pos := toRaylib(mid)
		if !inFront(ctx.Camera, pos) {
			continue
		}

		label := Label{
			Text:       fmt.Sprintf("%s %.2f", axisNames[axis], size[axis]),
			ScreenPos:  rl.GetWorldToScreen(pos, ctx.Camera),
			BaseColor:  ctx.AxisColors[axis],
			HoverColor: brighten(ctx.AxisColors[axis]),
		}
		if axis == faceAxis {
			label.State = LabelHovered
			if ctx.Dragging {
				label.State = LabelSelected
			}
		}
		rects = append(rects, label.Draw(ctx.Font, labelFontSize, labelPadding))
	}
	return rects
}

func inFront(cam rl.Camera3D, p rl.Vector3) bool {
	forward := rl.Vector3Subtract(cam.Target, cam.Position)
	return rl.Vector3DotProduct(forward, rl.Vector3Subtract(p, cam.Position)) > 0
}

func brighten(c rl.Color) rl.Color {
	lift := func(v uint8) uint8 {
		return uint8(min(int(v)+80, 255))
	}
	return rl.NewColor(lift(c.R), lift(c.G), lift(c.B), c.A)
}

func toRaylib(v mgl64.Vec3) rl.Vector3 {
	return rl.Vector3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}
