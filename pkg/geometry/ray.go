package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half line in world space
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRayTowards creates a ray starting at origin and passing through target
func NewRayTowards(origin, target mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: SafeNormalize(target.Sub(origin))}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit describes where a ray meets a surface
type Hit struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// IntersectBox intersects the ray with the outside of an oriented box. A
// ray starting inside the box does not hit it.
func (r Ray) IntersectBox(box mgl64.Mat4) (Hit, bool) {
	if IsNull(box) {
		return Hit{}, false
	}
	inv := box.Inv()
	origin := mgl64.TransformCoordinate(r.Origin, inv)
	dir := mgl64.TransformNormal(r.Direction, inv)

	// Slab test against the [-1, 1] cube
	tmin, tmax := math.Inf(-1), math.Inf(1)
	hitAxis, hitSign := -1, 0.0
	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < -1 || origin[i] > 1 {
				return Hit{}, false
			}
			continue
		}
		t1 := (-1 - origin[i]) / dir[i]
		t2 := (1 - origin[i]) / dir[i]
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			hitAxis, hitSign = i, sign
		}
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return Hit{}, false
		}
	}
	if hitAxis < 0 || tmin < 0 {
		return Hit{}, false
	}

	var local mgl64.Vec3
	local[hitAxis] = hitSign
	normal := SafeNormalize(inv.Mat3().Transpose().Mul3x1(local))

	// Box space is affine, so the world parameter is the same t
	pos := r.At(tmin)
	return Hit{Position: pos, Normal: normal, Distance: tmin * r.Direction.Len()}, true
}
