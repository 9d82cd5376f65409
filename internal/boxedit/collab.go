package boxedit

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/gesture"
)

// Input delivers pointer gestures restricted to a shape
type Input interface {
	RegisterHover(shape mgl64.Mat4, h gesture.HoverHandler)
	RegisterDrag(shape mgl64.Mat4, h gesture.DragHandler)
}

// Effect modifies how a render request is drawn
type Effect uint8

const (
	// EffectNoDepthTest draws on top of the scene
	EffectNoDepthTest Effect = 1 << iota
)

// Renderer draws the widget overlays
type Renderer interface {
	RenderWireframe(box mgl64.Mat4)
	RenderFilledPlane(plane mgl64.Mat4, c color.RGBA)
	RenderArrow(from, to mgl64.Vec3, c color.RGBA, effect Effect)
}

// Hints shows short usage text to the user
type Hints interface {
	SetHelpText(text string)
}
