package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// A box pose is a 4x4 affine matrix mapping the [-1, 1] cube to the box:
// columns 0..2 are the local axes scaled by the half extents and column 3
// is the center.

// FromCenterSize builds an axis aligned box pose from its center and full size
func FromCenterSize(center, size mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(center[0], center[1], center[2]).
		Mul4(mgl64.Scale3D(size[0]/2, size[1]/2, size[2]/2))
}

// FromCenterSizeRotation builds an oriented box pose
func FromCenterSizeRotation(center, size mgl64.Vec3, rotation mgl64.Mat4) mgl64.Mat4 {
	return mgl64.Translate3D(center[0], center[1], center[2]).
		Mul4(rotation).
		Mul4(mgl64.Scale3D(size[0]/2, size[1]/2, size[2]/2))
}

// Volume returns the volume of the box
func Volume(box mgl64.Mat4) float64 {
	// The unit box has a size of 2 along each axis.
	return 8 * math.Abs(box.Mat3().Det())
}

// IsNull reports whether the box has no volume
func IsNull(box mgl64.Mat4) bool {
	return Volume(box) == 0
}

// Center returns the center of the box
func Center(box mgl64.Mat4) mgl64.Vec3 {
	return box.Col(3).Vec3()
}

// Axis returns column i of the box, the local axis scaled by its half extent
func Axis(box mgl64.Mat4, i int) mgl64.Vec3 {
	return box.Col(i).Vec3()
}

// HalfExtents returns the half size of the box along each of its axes
func HalfExtents(box mgl64.Mat4) mgl64.Vec3 {
	return mgl64.Vec3{Axis(box, 0).Len(), Axis(box, 1).Len(), Axis(box, 2).Len()}
}

// Size returns the full size of the box along each of its axes
func Size(box mgl64.Mat4) mgl64.Vec3 {
	return HalfExtents(box).Mul(2)
}

// FacePlane returns the world frame of a face: columns 0 and 1 span the
// face, column 2 goes from the center of the box to the face center and
// column 3 is the face center.
func FacePlane(box mgl64.Mat4, f Face) mgl64.Mat4 {
	return box.Mul4(f.Matrix())
}

// FaceNormal returns the unit outward normal of a face in world space
func FaceNormal(box mgl64.Mat4, f Face) mgl64.Vec3 {
	return SafeNormalize(FacePlane(box, f).Col(2).Vec3())
}

// MoveFace returns the box obtained by moving face f so that it passes
// through pos, measured along the face axis. The opposite face and the
// extents along the two other axes stay where they are. ok is false when
// the face would reach or cross the opposite face.
func MoveFace(box mgl64.Mat4, f Face, pos mgl64.Vec3) (out mgl64.Mat4, ok bool) {
	if !f.Valid() {
		return box, false
	}
	axis, _ := f.Axis()
	col := Axis(box, axis)
	half := col.Len()
	if half == 0 {
		return box, false
	}

	// The opposite face stays fixed
	outward := FaceNormal(box, f)
	opposite := FacePlane(box, f.Opposite()).Col(3).Vec3()
	dist := pos.Sub(opposite).Dot(outward)
	if dist <= 0 {
		return box, false
	}

	out = box
	out.SetCol(axis, col.Mul(dist/(2*half)).Vec4(0))
	out.SetCol(3, opposite.Add(outward.Mul(dist/2)).Vec4(1))
	return out, true
}

// Corners returns the eight corners of the box in world space
func Corners(box mgl64.Mat4) [8]mgl64.Vec3 {
	var corners [8]mgl64.Vec3
	for i := range corners {
		local := mgl64.Vec3{-1, -1, -1}
		if i&1 != 0 {
			local[0] = 1
		}
		if i&2 != 0 {
			local[1] = 1
		}
		if i&4 != 0 {
			local[2] = 1
		}
		corners[i] = mgl64.TransformCoordinate(local, box)
	}
	return corners
}

// boxEdges lists corner index pairs, indices follow Corners
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along X
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along Y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along Z
}

// Edges returns the twelve edges of the box as pairs of world points
func Edges(box mgl64.Mat4) [12][2]mgl64.Vec3 {
	corners := Corners(box)
	var edges [12][2]mgl64.Vec3
	for i, e := range boxEdges {
		edges[i] = [2]mgl64.Vec3{corners[e[0]], corners[e[1]]}
	}
	return edges
}

// RelativeTransform returns the transform that maps src onto dst, that is
// dst * inverse(src).
func RelativeTransform(src, dst mgl64.Mat4) mgl64.Mat4 {
	return dst.Mul4(src.Inv())
}
