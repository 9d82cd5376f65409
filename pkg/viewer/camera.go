package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/pkg/geometry"
)

// Camera is an orbit camera looking at a target
type Camera struct {
	Position  mgl64.Vec3
	Target    mgl64.Vec3
	Up        mgl64.Vec3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Rotation around X axis (vertical)
	RotationY float64 // Rotation around Y axis (horizontal)
}

// NewCamera creates a camera framing a region of the given center and size
func NewCamera(center, size mgl64.Vec3) *Camera {
	distance := math.Max(size[0], math.Max(size[1], size[2])) * 3.0
	if distance <= 0 {
		distance = 10
	}

	c := &Camera{
		Target:    center,
		Up:        mgl64.Vec3{0, 1, 0},
		FOV:       math.Pi / 4, // 45 degrees
		Distance:  distance,
		RotationX: 0.4,
		RotationY: 0.6,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(mgl64.Vec3{x, y, z})
}

// LookAt places the camera at eye, orbiting around target
func (c *Camera) LookAt(eye, target mgl64.Vec3) {
	offset := eye.Sub(target)
	c.Target = target
	c.Distance = offset.Len()
	if c.Distance == 0 {
		c.Distance = 0.1
		offset = mgl64.Vec3{0, 0, c.Distance}
	}
	c.RotationX = math.Asin(mgl64.Clamp(offset[1]/c.Distance, -1, 1))
	c.RotationY = math.Atan2(offset[0], offset[2])
	c.UpdatePosition()
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = mgl64.Clamp(c.RotationX, -maxAngle, maxAngle)

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

func (c *Camera) basis() (forward, right, up mgl64.Vec3) {
	forward = geometry.SafeNormalize(c.Target.Sub(c.Position))
	right = geometry.SafeNormalize(forward.Cross(c.Up))
	up = right.Cross(forward)
	return forward, right, up
}

// Project projects a 3D point to screen coordinates. The third value is the
// depth along the view direction; points behind the camera have depth <= 0.
func (c *Camera) Project(point mgl64.Vec3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	depth := z
	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, depth
}

// Unproject converts screen coordinates to a ray from the camera
func (c *Camera) Unproject(screenX, screenY, width, height float64) geometry.Ray {
	// Normalized device coordinates (-1 to 1)
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	forward, right, up := c.basis()
	dir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))

	return geometry.Ray{Origin: c.Position, Direction: geometry.SafeNormalize(dir)}
}
