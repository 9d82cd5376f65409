// Package scene reads and writes box poses and scripted pointer sessions
// as YAML files.
package scene

import (
	"bytes"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// BoxSpec is the file representation of a box pose. Either Matrix holds the
// 16 column-major entries of the pose, or the pose is built from Center,
// Size and Rotation (Euler angles in degrees, applied X, then Y, then Z).
type BoxSpec struct {
	Center   [3]float64 `yaml:"center,flow"`
	Size     [3]float64 `yaml:"size,flow"`
	Rotation [3]float64 `yaml:"rotation,flow,omitempty"`
	Matrix   []float64  `yaml:"matrix,flow,omitempty"`
}

// Pose converts the spec to a box matrix
func (s BoxSpec) Pose() (mgl64.Mat4, error) {
	if s.Matrix != nil {
		if len(s.Matrix) != 16 {
			return mgl64.Mat4{}, errors.Errorf("matrix needs 16 values, got %d", len(s.Matrix))
		}
		var m mgl64.Mat4
		copy(m[:], s.Matrix)
		if m.Row(3) != (mgl64.Vec4{0, 0, 0, 1}) {
			return mgl64.Mat4{}, errors.New("matrix is not affine")
		}
		return m, nil
	}

	for i, v := range s.Size {
		if v < 0 {
			return mgl64.Mat4{}, errors.Errorf("negative size %v on axis %d", v, i)
		}
	}

	rot := mgl64.HomogRotate3DZ(mgl64.DegToRad(s.Rotation[2])).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(s.Rotation[1]))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(s.Rotation[0])))
	return geometry.FromCenterSizeRotation(mgl64.Vec3(s.Center), mgl64.Vec3(s.Size), rot), nil
}

// SpecFromPose converts a box matrix to its file representation. Axis
// aligned boxes are written as center and size, all others as a matrix.
func SpecFromPose(box mgl64.Mat4) BoxSpec {
	if axisAligned(box) {
		return BoxSpec{
			Center: geometry.Center(box),
			Size:   geometry.Size(box),
		}
	}
	return BoxSpec{
		Center: geometry.Center(box),
		Size:   geometry.Size(box),
		Matrix: append([]float64(nil), box[:]...),
	}
}

func axisAligned(box mgl64.Mat4) bool {
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			v := box.At(row, col)
			if row == col && v < 0 {
				return false
			}
			if row != col && math.Abs(v) > 1e-12 {
				return false
			}
		}
	}
	return true
}

// ParseBox decodes a box spec from YAML
func ParseBox(data []byte) (mgl64.Mat4, error) {
	var spec BoxSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return mgl64.Mat4{}, errors.Wrap(err, "failed to decode box")
	}
	return spec.Pose()
}

// LoadBox reads a box pose from a YAML file
func LoadBox(path string) (mgl64.Mat4, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mgl64.Mat4{}, errors.Wrapf(err, "failed to read box file %s", path)
	}
	box, err := ParseBox(data)
	if err != nil {
		return mgl64.Mat4{}, errors.Wrapf(err, "invalid box file %s", path)
	}
	return box, nil
}

// MarshalBox encodes a box pose as YAML
func MarshalBox(box mgl64.Mat4) ([]byte, error) {
	var buffer bytes.Buffer
	enc := yaml.NewEncoder(&buffer)
	enc.SetIndent(2)
	if err := enc.Encode(SpecFromPose(box)); err != nil {
		return nil, errors.Wrap(err, "failed to marshal box")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to close yaml encoder")
	}
	return buffer.Bytes(), nil
}

// SaveBox writes a box pose to a YAML file
func SaveBox(path string, box mgl64.Mat4) error {
	data, err := MarshalBox(box)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write box file %s", path)
	}
	return nil
}
