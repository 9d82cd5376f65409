package gesture

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/pkg/geometry"
)

// dragState is the per-gesture slot kept between frames
type dragState struct {
	plane  geometry.SnapPlane
	normal mgl64.Vec3
	events int
}

// Dispatcher hit-tests gestures registered during a frame against the
// pointer and calls their handlers synchronously. It is not safe for
// concurrent use; the owner drives it from the UI loop:
//
//	d.BeginFrame(pointer)
//	... tools call RegisterHover / RegisterDrag ...
//	d.EndFrame()
type Dispatcher struct {
	log *slog.Logger

	pointer  Pointer
	wasDown  bool
	drag     *dragState
	hovering bool
}

// NewDispatcher creates a dispatcher. A nil logger means slog.Default().
func NewDispatcher(log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{log: log}
}

// BeginFrame sets the pointer state used by the registrations of this frame
func (d *Dispatcher) BeginFrame(p Pointer) {
	d.pointer = p
	d.hovering = false
	if d.drag != nil && !p.Down {
		d.log.Debug("drag gesture ended", "events", d.drag.events)
		d.drag = nil
	}
}

// EndFrame closes the frame and remembers the button state for press detection
func (d *Dispatcher) EndFrame() {
	d.wasDown = d.pointer.Down
}

// Dragging reports whether a drag gesture is in progress
func (d *Dispatcher) Dragging() bool {
	return d.drag != nil
}

// Hovering reports whether a hover handler fired during the current frame
func (d *Dispatcher) Hovering() bool {
	return d.hovering
}

// SnapPlane returns the constraint plane of the drag in progress
func (d *Dispatcher) SnapPlane() (geometry.SnapPlane, bool) {
	if d.drag == nil {
		return geometry.SnapPlane{}, false
	}
	return d.drag.plane, true
}

func (d *Dispatcher) pressed() bool {
	return d.pointer.Down && !d.wasDown
}

// RegisterHover calls h when the pointer is over shape with the button up
// and no drag in progress.
func (d *Dispatcher) RegisterHover(shape mgl64.Mat4, h HoverHandler) {
	if d.drag != nil || d.pointer.Down {
		return
	}
	hit, ok := d.pointer.Ray.IntersectBox(shape)
	if !ok {
		return
	}
	d.hovering = true
	h.OnHover(Cursor{Position: hit.Position, Normal: hit.Normal})
}

// RegisterDrag starts a drag gesture when the button is pressed over shape
// and keeps feeding it, constrained to its snap plane, until release.
func (d *Dispatcher) RegisterDrag(shape mgl64.Mat4, h DragHandler) {
	if d.drag != nil {
		pos, ok := d.drag.plane.Intersect(d.pointer.Ray)
		if !ok {
			// Pointer ray parallel to the snap plane: skip this frame
			return
		}
		d.drag.events++
		h.OnDrag(PhaseActive, Cursor{Position: pos, Normal: d.drag.normal}, &d.drag.plane)
		return
	}

	if !d.pressed() {
		return
	}
	hit, ok := d.pointer.Ray.IntersectBox(shape)
	if !ok {
		return
	}
	d.drag = &dragState{normal: hit.Normal}
	d.log.Debug("drag gesture began", "pos", hit.Position, "normal", hit.Normal)
	h.OnDrag(PhaseBegin, Cursor{Position: hit.Position, Normal: hit.Normal}, &d.drag.plane)
}
