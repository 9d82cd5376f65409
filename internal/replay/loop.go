// Package replay runs the box editor frame by frame: the interactive app
// feeds it live pointer states, the replay command feeds it the frames of
// a script.
package replay

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/boxedit"
	"github.com/philipparndt/boxedit/internal/gesture"
	"github.com/philipparndt/boxedit/internal/render"
	"github.com/philipparndt/boxedit/pkg/geometry"
)

// Record is the outcome of one frame
type Record struct {
	Index   int
	Pointer gesture.Pointer
	Result  boxedit.Result
	Box     mgl64.Mat4 // box after the frame
	Status   boxedit.Status
	Face     geometry.Face
	Hovering bool // pointer over the box with no drag in progress
	Queue    render.Queue
}

// Loop wires a dispatcher, a box widget and a render queue together and
// owns the edited box
type Loop struct {
	log        *slog.Logger
	dispatcher *gesture.Dispatcher
	widget     *boxedit.Widget
	queue      render.Queue

	box   mgl64.Mat4
	mode  boxedit.Mode
	frame int
}

// NewLoop creates a loop editing box in the given mode
func NewLoop(box mgl64.Mat4, mode boxedit.Mode, log *slog.Logger) *Loop {
	if log == nil {
		log = slog.Default()
	}
	l := &Loop{
		log:        log,
		dispatcher: gesture.NewDispatcher(log),
		box:        box,
		mode:       mode,
	}
	l.widget = boxedit.New(l.dispatcher, &l.queue, &l.queue, boxedit.WithLogger(log))
	return l
}

// Box returns the edited box
func (l *Loop) Box() mgl64.Mat4 {
	return l.box
}

// SetBox replaces the edited box, e.g. after the file changed on disk
func (l *Loop) SetBox(box mgl64.Mat4) {
	l.box = box
}

// Mode returns the edit mode
func (l *Loop) Mode() boxedit.Mode {
	return l.mode
}

// SetMode changes the edit mode for the next frames
func (l *Loop) SetMode(mode boxedit.Mode) {
	l.mode = mode
}

// Dragging reports whether a drag gesture is in progress
func (l *Loop) Dragging() bool {
	return l.dispatcher.Dragging()
}

// SnapPlane returns the constraint plane of the drag in progress
func (l *Loop) SnapPlane() (geometry.SnapPlane, bool) {
	return l.dispatcher.SnapPlane()
}

// Session returns the widget state after the last frame
func (l *Loop) Session() boxedit.Session {
	return l.widget.Session()
}

// Queue returns the render commands of the last frame. The queue is reused
// by the next Step.
func (l *Loop) Queue() *render.Queue {
	return &l.queue
}

// Step runs one frame with the given pointer state. The widget's transform
// is applied to the box on every dragging frame.
func (l *Loop) Step(p gesture.Pointer) Record {
	l.queue.Reset()
	l.dispatcher.BeginFrame(p)
	res := l.widget.Drive(l.box, l.mode)
	if res.Dragging {
		l.box = res.Transform.Mul4(l.box)
	}
	hovering := l.dispatcher.Hovering()
	l.dispatcher.EndFrame()

	if res.FirstFrame {
		l.log.Debug("drag started", "frame", l.frame, "face", l.widget.Session().Face, "mode", l.mode)
	}

	s := l.widget.Session()
	rec := Record{
		Index:   l.frame,
		Pointer: p,
		Result:  res,
		Box:     l.box,
		Status:   s.Status,
		Face:     s.Face,
		Hovering: hovering,
		Queue:    l.queue.Clone(),
	}
	l.frame++
	return rec
}
