// Package boxedit implements the interactive box gizmo: it reacts to hover
// and drag gestures on the faces of an oriented box and computes the
// transform that moves or resizes it, snapped to the integer grid.
package boxedit

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/pkg/geometry"
)

// HelpText is shown while the pointer is over or dragging a face
const HelpText = "Drag to move face"

// Result is what one frame of editing produced
type Result struct {
	// Dragging is true while a drag updates the box
	Dragging bool
	// Transform must be applied to the box passed to Drive: newBox = Transform * box
	Transform mgl64.Mat4
	// FirstFrame is true for the frame in which the drag began
	FirstFrame bool
}

// Widget edits one box at a time. It owns the edit session and must be
// driven once per frame from the UI goroutine.
type Widget struct {
	input    Input
	renderer Renderer
	hints    Hints
	log      *slog.Logger

	session Session
}

// Option configures a Widget
type Option func(*Widget)

// WithLogger sets the logger used for drag diagnostics
func WithLogger(log *slog.Logger) Option {
	return func(w *Widget) {
		if log != nil {
			w.log = log
		}
	}
}

// New creates a widget wired to its collaborators
func New(input Input, renderer Renderer, hints Hints, opts ...Option) *Widget {
	w := &Widget{
		input:    input,
		renderer: renderer,
		hints:    hints,
		log:      slog.Default(),
		session:  newSession(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Session returns a copy of the current session state
func (w *Widget) Session() Session {
	return w.session
}

// Drive runs one frame of the edit for box in the given mode. Gesture
// handlers are invoked by the input collaborator before Drive returns. A
// box without volume is ignored.
func (w *Widget) Drive(box mgl64.Mat4, mode Mode) Result {
	if geometry.IsNull(box) {
		return Result{Transform: mgl64.Ident4()}
	}

	w.session.load(box, mode)

	w.input.RegisterHover(box, w)
	w.input.RegisterDrag(box, w)
	w.renderer.RenderWireframe(box)

	return Result{
		Dragging:   w.session.Status == StatusMoving,
		Transform:  w.session.Transform,
		FirstFrame: w.session.takeFirstFrame(),
	}
}
