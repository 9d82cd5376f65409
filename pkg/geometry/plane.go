package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const planeEpsilon = 1e-9

// SnapPlane constrains the pointer during a drag. It is built once when the
// drag begins and stays fixed until the gesture ends. The pointer moves in
// the plane spanned by Normal and Reference, so it can travel along Normal.
type SnapPlane struct {
	Origin    mgl64.Vec3 // hit point at drag begin
	Normal    mgl64.Vec3 // hit normal at drag begin
	Reference mgl64.Vec3 // in-plane axis fixing the orientation
}

// NewSnapPlane creates a snap plane from an origin and two spanning vectors.
// The reference is made a unit vector perpendicular to the normal.
func NewSnapPlane(origin, normal, reference mgl64.Vec3) SnapPlane {
	if ref := SafeNormalize(Reject(reference, normal)); ref.Len() > 0 {
		reference = ref
	}
	return SnapPlane{Origin: origin, Normal: normal, Reference: reference}
}

// PlaneNormal returns the unit normal of the constraint plane
func (p SnapPlane) PlaneNormal() mgl64.Vec3 {
	n := SafeNormalize(p.Normal.Cross(p.Reference))
	if n.Len() == 0 {
		// Degenerate spanning vectors, fall back to the face plane itself
		return SafeNormalize(p.Normal)
	}
	return n
}

// Matrix returns the plane as a frame: Normal, Reference, their cross
// product and the origin as columns. Columns 0 and 1 span the plane.
func (p SnapPlane) Matrix() mgl64.Mat4 {
	return mgl64.Mat4FromCols(
		p.Normal.Vec4(0),
		p.Reference.Vec4(0),
		p.Normal.Cross(p.Reference).Vec4(0),
		p.Origin.Vec4(1),
	)
}

// Intersect returns where the ray crosses the constraint plane. Rays
// parallel to the plane or pointing away from it miss.
func (p SnapPlane) Intersect(r Ray) (mgl64.Vec3, bool) {
	n := p.PlaneNormal()
	denom := r.Direction.Dot(n)
	if math.Abs(denom) < planeEpsilon {
		return mgl64.Vec3{}, false
	}
	t := p.Origin.Sub(r.Origin).Dot(n) / denom
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	return r.At(t), true
}
