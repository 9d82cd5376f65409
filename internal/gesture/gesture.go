// Package gesture turns per-frame pointer state into hover and drag
// gestures on 3D shapes.
package gesture

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/pkg/geometry"
)

// Phase is the stage of a drag gesture
type Phase int

const (
	// PhaseBegin is the first event of a gesture
	PhaseBegin Phase = iota
	// PhaseActive is every following event while the pointer is held
	PhaseActive
)

func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseActive:
		return "active"
	default:
		return "unknown"
	}
}

// Cursor is the pointer position on a shape
type Cursor struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
}

// HoverHandler receives hover events
type HoverHandler interface {
	OnHover(c Cursor)
}

// DragHandler receives drag events. plane is the snap plane slot of the
// gesture: written on PhaseBegin, read on PhaseActive.
type DragHandler interface {
	OnDrag(phase Phase, c Cursor, plane *geometry.SnapPlane)
}

// Pointer is the state of the pointing device for one frame
type Pointer struct {
	Ray  geometry.Ray
	Down bool
}
