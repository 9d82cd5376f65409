package viewer

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraProjectsTargetToCenter(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{2, 2, 2})

	x, y, z := cam.Project(cam.Target, 800, 600)
	assert.InDelta(t, 400, x, 1e-9)
	assert.InDelta(t, 300, y, 1e-9)
	assert.InDelta(t, cam.Distance, z, 1e-9)
}

func TestCameraUnprojectRoundTrip(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{}, mgl64.Vec3{4, 4, 4})
	cam.Rotate(0.3, -1.1)

	ray := cam.Unproject(123, 456, 800, 600)
	point := ray.At(7)

	x, y, z := cam.Project(point, 800, 600)
	assert.InDelta(t, 123, x, 1e-6)
	assert.InDelta(t, 456, y, 1e-6)
	assert.Greater(t, z, 0.0)
}

func TestCameraLookAt(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
	cam.LookAt(mgl64.Vec3{3, 4, -5}, mgl64.Vec3{1, 1, 1})

	assert.True(t, cam.Position.ApproxEqualThreshold(mgl64.Vec3{3, 4, -5}, 1e-9), "position %v", cam.Position)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, cam.Target)
}

func TestCameraRotateClampsPitch(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
	cam.Rotate(10, 0)
	assert.Less(t, cam.RotationX, math.Pi/2)

	cam.Zoom(-5)
	assert.Equal(t, 0.1, cam.Distance)
}

func TestFillTriangleRespectsDepth(t *testing.T) {
	bg := color.RGBA{A: 255}
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	c := NewCanvas(20, 20, bg)

	c.FillTriangle(0, 0, 5, 19, 0, 5, 0, 19, 5, red, true)
	// Behind the red triangle
	c.FillTriangle(0, 0, 9, 19, 0, 9, 0, 19, 9, blue, true)
	assert.Equal(t, red, c.Image.RGBAAt(2, 2))
	assert.Equal(t, 5.0, c.Depth(2, 2))

	// Without depth test it paints over
	c.FillTriangle(0, 0, 9, 19, 0, 9, 0, 19, 9, blue, false)
	assert.Equal(t, blue, c.Image.RGBAAt(2, 2))
	assert.Equal(t, bg, c.Image.RGBAAt(18, 18), "outside the triangle")
}

func TestFillTriangleBlendsTranslucent(t *testing.T) {
	c := NewCanvas(10, 10, color.RGBA{A: 255})
	c.FillTriangle(0, 0, 1, 9, 0, 1, 0, 9, 1, color.RGBA{G: 255, A: 128}, true)

	px := c.Image.RGBAAt(1, 1)
	assert.InDelta(t, 128, int(px.G), 1)
	assert.Equal(t, math.MaxFloat64, c.Depth(1, 1), "translucent pixels keep depth")
}

func TestLineEndpoints(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	c := NewCanvas(10, 10, color.RGBA{A: 255})
	c.Line(1, 1, 1, 8, 4, 1, white, false)

	assert.Equal(t, white, c.Image.RGBAAt(1, 1))
	assert.Equal(t, white, c.Image.RGBAAt(8, 4))

	// Clipped lines do not panic
	c.Line(-5, -5, 1, 50, 50, 1, white, true)
}

func TestText(t *testing.T) {
	c := NewCanvas(100, 20, color.RGBA{A: 255})
	c.Text(2, 14, "Hi", color.RGBA{255, 255, 255, 255})

	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 100; x++ {
			if c.Image.RGBAAt(x, y).R > 0 {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
	require.Equal(t, 14, TextWidth("Hi"))
}
