package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Face identifies one of the six sides of a box
type Face int

const (
	FaceNone Face = -1

	FaceBottom Face = iota - 1 // -Y
	FaceTop                    // +Y
	FaceBack                   // -Z
	FaceFront                  // +Z
	FaceRight                  // +X
	FaceLeft                   // -X
)

// FaceCount is the number of faces of a box
const FaceCount = 6

// faceAcceptance is the minimum dot product between a normal and a face
// normal for the face to be picked (about a 60 degree cone).
const faceAcceptance = 0.5

var faceNormals = [FaceCount]mgl64.Vec3{
	{0, -1, 0},
	{0, 1, 0},
	{0, 0, -1},
	{0, 0, 1},
	{1, 0, 0},
	{-1, 0, 0},
}

// Face frames in the unit box space, column-major. Column 0 and 1 span the
// face, column 2 is the outward normal and column 3 the face center.
var faceMatrices = [FaceCount]mgl64.Mat4{
	{1, 0, 0, 0, 0, 0, 1, 0, 0, -1, 0, 0, 0, -1, 0, 1},
	{1, 0, 0, 0, 0, 0, -1, 0, 0, 1, 0, 0, 0, 1, 0, 1},
	{-1, 0, 0, 0, 0, 1, 0, 0, 0, 0, -1, 0, 0, 0, -1, 1},
	{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1},
	{0, 0, -1, 0, 0, 1, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1},
	{0, 0, 1, 0, 0, 1, 0, 0, -1, 0, 0, 0, -1, 0, 0, 1},
}

var faceNames = [FaceCount]string{"bottom", "top", "back", "front", "right", "left"}

// Valid reports whether f names one of the six faces
func (f Face) Valid() bool {
	return f >= 0 && f < FaceCount
}

// Normal returns the outward normal of the face in box space, or the zero
// vector for an invalid face
func (f Face) Normal() mgl64.Vec3 {
	if !f.Valid() {
		return mgl64.Vec3{}
	}
	return faceNormals[f]
}

// Matrix returns the local frame of the face in box space, or the zero
// matrix for an invalid face
func (f Face) Matrix() mgl64.Mat4 {
	if !f.Valid() {
		return mgl64.Mat4{}
	}
	return faceMatrices[f]
}

// Axis returns the box axis (0=X, 1=Y, 2=Z) the face is perpendicular to
// and the sign of its outward normal along it. An invalid face gives -1, 0.
func (f Face) Axis() (axis int, sign float64) {
	n := f.Normal()
	for i := 0; i < 3; i++ {
		if n[i] != 0 {
			return i, n[i]
		}
	}
	return -1, 0
}

// Opposite returns the face on the other side of the box
func (f Face) Opposite() Face {
	if !f.Valid() {
		return FaceNone
	}
	return f ^ 1
}

func (f Face) String() string {
	if !f.Valid() {
		return "none"
	}
	return faceNames[f]
}

// ParseFace converts a face name back to a Face
func ParseFace(name string) (Face, error) {
	for i, n := range faceNames {
		if n == name {
			return Face(i), nil
		}
	}
	return FaceNone, errors.Errorf("unknown face %q", name)
}

// ResolveFace classifies a unit normal into a face. Faces are tried in
// index order and the first one within the acceptance cone wins.
func ResolveFace(n mgl64.Vec3) Face {
	for f := Face(0); f < FaceCount; f++ {
		if n.Dot(faceNormals[f]) > faceAcceptance {
			return f
		}
	}
	return FaceNone
}

// ResolveBoxFace classifies a world space normal against the faces of box
func ResolveBoxFace(box mgl64.Mat4, n mgl64.Vec3) Face {
	// Normals transform with the inverse transpose, so going back to box
	// space is a multiplication by the transpose of the linear part.
	local := SafeNormalize(box.Mat3().Transpose().Mul3x1(n))
	return ResolveFace(local)
}
