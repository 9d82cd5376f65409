package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is an RGBA image with a depth buffer
type Canvas struct {
	Image   *image.RGBA
	zbuffer []float64
}

// NewCanvas creates a canvas cleared to the background color
func NewCanvas(width, height int, background color.RGBA) *Canvas {
	c := &Canvas{
		Image:   image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuffer: make([]float64, width*height),
	}
	c.Clear(background)
	return c
}

// Clear fills the image and resets the depth buffer
func (c *Canvas) Clear(background color.RGBA) {
	draw.Draw(c.Image, c.Image.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)
	for i := range c.zbuffer {
		c.zbuffer[i] = math.MaxFloat64
	}
}

// Width returns the image width in pixels
func (c *Canvas) Width() int {
	return c.Image.Bounds().Dx()
}

// Height returns the image height in pixels
func (c *Canvas) Height() int {
	return c.Image.Bounds().Dy()
}

// Depth returns the stored depth at a pixel
func (c *Canvas) Depth(x, y int) float64 {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return math.MaxFloat64
	}
	return c.zbuffer[y*c.Width()+x]
}

// plot blends col into a pixel. With depthTest set the pixel is only drawn
// if z is closer than what is stored; opaque pixels update the depth.
func (c *Canvas) plot(x, y int, z float64, col color.RGBA, depthTest bool) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return
	}
	idx := y*c.Width() + x
	if depthTest && z >= c.zbuffer[idx] {
		return
	}
	if col.A == 255 {
		c.Image.SetRGBA(x, y, col)
		if depthTest {
			c.zbuffer[idx] = z
		}
		return
	}
	c.Image.SetRGBA(x, y, blend(c.Image.RGBAAt(x, y), col))
}

// blend composites a straight-alpha color over dst
func blend(dst, src color.RGBA) color.RGBA {
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(d)*(1-a) + float64(s)*a))
	}
	return color.RGBA{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: 255,
	}
}

// FillTriangle fills a screen space triangle using a scanline algorithm,
// interpolating depth across it
func (c *Canvas) FillTriangle(x1, y1, z1, x2, y2, z2, x3, y3, z3 float64, col color.RGBA, depthTest bool) {
	vertices := [3][3]float64{
		{x1, y1, z1},
		{x2, y2, z2},
		{x3, y3, z3},
	}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	top, mid, bottom := vertices[0], vertices[1], vertices[2]
	if bottom[1] == top[1] {
		return
	}

	yMin := int(math.Ceil(math.Max(0, top[1])))
	yMax := int(math.Floor(math.Min(float64(c.Height()-1), bottom[1])))

	for y := yMin; y <= yMax; y++ {
		fy := float64(y)

		// One end on the long edge, the other on the short edge of this half
		var xs, zs [2]float64
		xs[0], zs[0] = edgeAt(top, bottom, fy)
		if fy < mid[1] {
			xs[1], zs[1] = edgeAt(top, mid, fy)
		} else {
			xs[1], zs[1] = edgeAt(mid, bottom, fy)
		}

		// Ensure xStart < xEnd
		if xs[0] > xs[1] {
			xs[0], xs[1] = xs[1], xs[0]
			zs[0], zs[1] = zs[1], zs[0]
		}

		xStart := int(math.Ceil(math.Max(0, xs[0])))
		xEnd := int(math.Floor(math.Min(float64(c.Width()-1), xs[1])))
		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if xs[1] != xs[0] {
				t = (float64(x) - xs[0]) / (xs[1] - xs[0])
			}
			c.plot(x, y, zs[0]+t*(zs[1]-zs[0]), col, depthTest)
		}
	}
}

// edgeAt interpolates x and depth on the edge a-b at scanline y
func edgeAt(a, b [3]float64, y float64) (float64, float64) {
	if a[1] == b[1] {
		return a[0], a[2]
	}
	t := (y - a[1]) / (b[1] - a[1])
	return a[0] + t*(b[0]-a[0]), a[2] + t*(b[2]-a[2])
}

// Line draws a line using Bresenham's algorithm, interpolating depth along it
func (c *Canvas) Line(x1, y1 int, z1 float64, x2, y2 int, z2 float64, col color.RGBA, depthTest bool) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	steps := max(dx, dy)
	step := 0
	err := dx - dy

	for {
		z := z1
		if steps > 0 {
			z = z1 + (z2-z1)*float64(step)/float64(steps)
		}
		// Lines sit slightly in front of coplanar faces
		c.plot(x1, y1, z-1e-6, col, depthTest)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
		step++
	}
}

// Text draws a string with its baseline starting at (x, y)
func (c *Canvas) Text(x, y int, text string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  c.Image,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// TextWidth returns the advance of a string in pixels
func TextWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Round()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
