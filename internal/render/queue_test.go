package render

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/boxedit"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRecords(t *testing.T) {
	var q Queue
	box := geometry.FromCenterSize(mgl64.Vec3{}, mgl64.Vec3{2, 2, 2})
	red := color.RGBA{R: 255, A: 100}

	q.RenderWireframe(box)
	q.RenderFilledPlane(mgl64.Ident4(), red)
	q.RenderArrow(mgl64.Vec3{}, mgl64.Vec3{0, 3, 0}, red, boxedit.EffectNoDepthTest)
	q.SetHelpText("hint")

	require.Len(t, q.Commands, 3)
	assert.Equal(t, KindWireframe, q.Commands[0].Kind)
	assert.Equal(t, box, q.Commands[0].Matrix)
	assert.Equal(t, KindFilledPlane, q.Commands[1].Kind)
	assert.Equal(t, red, q.Commands[1].Color)
	assert.Equal(t, boxedit.EffectNoDepthTest, q.Commands[2].Effect)
	assert.Equal(t, "hint", q.HelpText)
	assert.Equal(t, 1, q.Count(KindArrow))
}

func TestQueueResetAndClone(t *testing.T) {
	var q Queue
	q.RenderWireframe(mgl64.Ident4())
	q.SetHelpText("hint")

	clone := q.Clone()
	q.Reset()
	q.RenderArrow(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, color.RGBA{}, 0)

	assert.Empty(t, q.HelpText)
	assert.Equal(t, 1, q.Count(KindArrow))
	assert.Equal(t, 0, q.Count(KindWireframe))

	require.Len(t, clone.Commands, 1)
	assert.Equal(t, KindWireframe, clone.Commands[0].Kind)
	assert.Equal(t, "hint", clone.HelpText)
}

func TestPlaneCorners(t *testing.T) {
	plane := mgl64.Translate3D(0, 0, 5).Mul4(mgl64.Scale3D(2, 4, 1))
	corners := PlaneCorners(plane)

	assert.True(t, corners[0].ApproxEqual(mgl64.Vec3{-1, -2, 5}))
	assert.True(t, corners[2].ApproxEqual(mgl64.Vec3{1, 2, 5}))
}

func TestArrowHead(t *testing.T) {
	head := ArrowHead(mgl64.Vec3{}, mgl64.Vec3{10, 0, 0})
	for _, seg := range head {
		assert.Equal(t, mgl64.Vec3{10, 0, 0}, seg[0])
		assert.InDelta(t, 8.0, seg[1][0], 1e-9)
	}

	// Vertical arrows fall back to another side vector
	head = ArrowHead(mgl64.Vec3{}, mgl64.Vec3{0, 3, 0})
	assert.NotEqual(t, head[0][1], head[1][1])
}
