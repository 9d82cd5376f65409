package scene

import (
	"bytes"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Frame is one scripted pointer state. The pointer ray either goes from the
// script's eye towards Target, or is given by Origin and Dir.
type Frame struct {
	Target *[3]float64 `yaml:"target,flow,omitempty"`
	Origin *[3]float64 `yaml:"origin,flow,omitempty"`
	Dir    *[3]float64 `yaml:"dir,flow,omitempty"`
	Down   bool        `yaml:"down"`
	Repeat int         `yaml:"repeat,omitempty"` // play the frame this many times
}

// DefaultEye is where target frames are aimed from when a script sets no eye
var DefaultEye = [3]float64{0, 0, 10}

// Script is a box plus a sequence of pointer frames to replay against it
type Script struct {
	Box    BoxSpec    `yaml:"box"`
	Mode   string     `yaml:"mode"`
	Eye    [3]float64 `yaml:"eye,flow"`
	Frames []Frame    `yaml:"frames"`
}

// Step is an expanded script frame
type Step struct {
	Ray  geometry.Ray
	Down bool
}

// Rays expands the frames into pointer steps, honoring Repeat
func (s *Script) Rays() ([]Step, error) {
	steps := make([]Step, 0, len(s.Frames))
	for i, f := range s.Frames {
		ray, err := s.frameRay(f)
		if err != nil {
			return nil, errors.Wrapf(err, "frame %d", i)
		}
		n := f.Repeat
		if n < 1 {
			n = 1
		}
		for j := 0; j < n; j++ {
			steps = append(steps, Step{Ray: ray, Down: f.Down})
		}
	}
	return steps, nil
}

func (s *Script) frameRay(f Frame) (geometry.Ray, error) {
	switch {
	case f.Target != nil && (f.Origin != nil || f.Dir != nil):
		return geometry.Ray{}, errors.New("target and origin/dir are exclusive")
	case f.Target != nil:
		eye := mgl64.Vec3(s.Eye)
		target := mgl64.Vec3(*f.Target)
		if eye.ApproxEqual(target) {
			return geometry.Ray{}, errors.New("target equals eye")
		}
		return geometry.NewRayTowards(eye, target), nil
	case f.Origin != nil && f.Dir != nil:
		dir := mgl64.Vec3(*f.Dir)
		if dir.Len() == 0 {
			return geometry.Ray{}, errors.New("zero direction")
		}
		return geometry.Ray{Origin: mgl64.Vec3(*f.Origin), Direction: dir.Normalize()}, nil
	default:
		return geometry.Ray{}, errors.New("frame needs a target or an origin and dir")
	}
}

// ParseScript decodes a script from YAML
func ParseScript(data []byte) (*Script, error) {
	s := &Script{Mode: "move", Eye: DefaultEye}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, errors.Wrap(err, "failed to decode script")
	}
	if len(s.Frames) == 0 {
		return nil, errors.New("script has no frames")
	}
	return s, nil
}

// LoadScript reads a script from a YAML file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read script %s", path)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid script %s", path)
	}
	return s, nil
}
