package boxedit

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/pkg/errors"
)

// Mode selects what dragging a face does
type Mode int

const (
	// Move translates the whole box
	Move Mode = iota
	// Resize moves the dragged face only
	Resize
)

func (m Mode) String() string {
	switch m {
	case Move:
		return "move"
	case Resize:
		return "resize"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "move" or "resize" to a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "move":
		return Move, nil
	case "resize":
		return Resize, nil
	}
	return Move, errors.Errorf("unknown mode %q (expected move or resize)", s)
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == Move {
		return Resize
	}
	return Move
}

// Status is what the pointer did with the box during the current frame
type Status int

const (
	StatusIdle    Status = iota // pointer away from the box
	StatusSnapped               // pointer over a face
	StatusMoving                // a drag is updating the box
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSnapped:
		return "snapped"
	case StatusMoving:
		return "moving"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Session is the state of one box edit. It lives as long as a box is being
// edited and is overwritten with the caller's box and mode on every frame.
type Session struct {
	Mode      Mode
	Box       mgl64.Mat4 // box passed to the current frame
	StartBox  mgl64.Mat4 // box when the drag began
	Transform mgl64.Mat4 // output, relative to Box
	Face      geometry.Face
	Status    Status

	// firstFrame is set on drag begin and cleared once reported
	firstFrame bool
}

func newSession() Session {
	return Session{
		Box:       mgl64.Ident4(),
		StartBox:  mgl64.Ident4(),
		Transform: mgl64.Ident4(),
		Face:      geometry.FaceNone,
	}
}

// load prepares the session for a new frame
func (s *Session) load(box mgl64.Mat4, mode Mode) {
	s.Mode = mode
	s.Box = box
	s.Transform = mgl64.Ident4()
	s.Status = StatusIdle
}

// takeFirstFrame reports and clears the first frame flag
func (s *Session) takeFirstFrame() bool {
	first := s.firstFrame
	s.firstFrame = false
	return first
}
