package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Project returns the component of v along n
func Project(v, n mgl64.Vec3) mgl64.Vec3 {
	nn := n.Dot(n)
	if nn == 0 {
		return mgl64.Vec3{}
	}
	return n.Mul(v.Dot(n) / nn)
}

// Reject returns the component of v perpendicular to n
func Reject(v, n mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(Project(v, n))
}

// RoundVec rounds every coordinate to the nearest integer, halves away from zero
func RoundVec(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Round(v[0]), math.Round(v[1]), math.Round(v[2])}
}

// SafeNormalize returns a unit vector in the same direction, or the zero vector
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	length := v.Len()
	if length == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1.0 / length)
}
