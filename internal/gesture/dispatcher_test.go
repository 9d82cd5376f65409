package gesture

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	phase  Phase
	cursor Cursor
}

type handler struct {
	hovers []Cursor
	drags  []event
	// plane written on begin, like a real drag handler does
	plane geometry.SnapPlane
}

func (h *handler) OnHover(c Cursor) {
	h.hovers = append(h.hovers, c)
}

func (h *handler) OnDrag(phase Phase, c Cursor, plane *geometry.SnapPlane) {
	if phase == PhaseBegin {
		*plane = h.plane
	}
	h.drags = append(h.drags, event{phase, c})
}

var (
	box = geometry.FromCenterSize(mgl64.Vec3{}, mgl64.Vec3{2, 2, 2})
	eye = mgl64.Vec3{0, 0, 10}
)

func pointerAt(target mgl64.Vec3, down bool) Pointer {
	return Pointer{Ray: geometry.NewRayTowards(eye, target), Down: down}
}

func frame(d *Dispatcher, p Pointer, h *handler) {
	d.BeginFrame(p)
	d.RegisterHover(box, h)
	d.RegisterDrag(box, h)
	d.EndFrame()
}

func TestHoverFiresOverShape(t *testing.T) {
	d := NewDispatcher(nil)
	h := &handler{}

	frame(d, pointerAt(mgl64.Vec3{0.5, 0.5, 0}, false), h)

	require.Len(t, h.hovers, 1)
	assert.True(t, h.hovers[0].Position.ApproxEqual(mgl64.Vec3{0.5, 0.5, 1}))
	assert.True(t, h.hovers[0].Normal.ApproxEqual(mgl64.Vec3{0, 0, 1}))
	assert.True(t, d.Hovering())
	assert.Empty(t, h.drags)
}

func TestHoverMissesOutsideShape(t *testing.T) {
	d := NewDispatcher(nil)
	h := &handler{}

	frame(d, pointerAt(mgl64.Vec3{5, 5, 0}, false), h)

	assert.Empty(t, h.hovers)
	assert.False(t, d.Hovering())
}

func TestDragLifecycle(t *testing.T) {
	d := NewDispatcher(nil)
	// Snap plane spanned by +Z (face normal) and +X: the XZ plane at y=0.5
	h := &handler{plane: geometry.NewSnapPlane(mgl64.Vec3{0.5, 0.5, 1}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0})}

	frame(d, pointerAt(mgl64.Vec3{0.5, 0.5, 0}, true), h)
	require.Len(t, h.drags, 1)
	assert.Equal(t, PhaseBegin, h.drags[0].phase)
	assert.Empty(t, h.hovers, "no hover while pressing")
	assert.True(t, d.Dragging())
	plane, ok := d.SnapPlane()
	require.True(t, ok)
	assert.Equal(t, h.plane, plane)

	// Held: events are constrained to the snap plane, even off the box
	frame(d, Pointer{Ray: geometry.NewRayTowards(mgl64.Vec3{3, 10, 4}, mgl64.Vec3{3, 0.5, 4}), Down: true}, h)
	frame(d, pointerAt(mgl64.Vec3{0.5, 0.5, 0}, true), h)
	require.Len(t, h.drags, 3)
	assert.Equal(t, PhaseActive, h.drags[1].phase)
	assert.True(t, h.drags[1].cursor.Position.ApproxEqual(mgl64.Vec3{3, 0.5, 4}), "position %v", h.drags[1].cursor.Position)
	assert.True(t, h.drags[1].cursor.Normal.ApproxEqual(mgl64.Vec3{0, 0, 1}), "begin normal is kept")
	assert.Equal(t, PhaseActive, h.drags[2].phase)

	// Release ends the gesture silently
	frame(d, pointerAt(mgl64.Vec3{0.5, 0.5, 0}, false), h)
	assert.False(t, d.Dragging())
	_, ok = d.SnapPlane()
	assert.False(t, ok)
	assert.Len(t, h.drags, 3)
	assert.Len(t, h.hovers, 1, "hover resumes after release")
}

func TestDragNeedsPressOverShape(t *testing.T) {
	d := NewDispatcher(nil)
	h := &handler{}

	// Pressed outside, then moved onto the shape while held
	frame(d, pointerAt(mgl64.Vec3{5, 5, 0}, true), h)
	frame(d, pointerAt(mgl64.Vec3{0.5, 0.5, 0}, true), h)

	assert.Empty(t, h.drags)
	assert.False(t, d.Dragging())
}

func TestOneBeginPerGesture(t *testing.T) {
	d := NewDispatcher(nil)
	h := &handler{plane: geometry.NewSnapPlane(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0})}

	for i := 0; i < 5; i++ {
		frame(d, pointerAt(mgl64.Vec3{0.1, 0.1, 0}, true), h)
	}
	frame(d, pointerAt(mgl64.Vec3{0.1, 0.1, 0}, false), h)
	frame(d, pointerAt(mgl64.Vec3{0.1, 0.1, 0}, true), h)

	begins := 0
	for _, e := range h.drags {
		if e.phase == PhaseBegin {
			begins++
		}
	}
	assert.Equal(t, 2, begins)
	assert.Equal(t, PhaseBegin, h.drags[0].phase)
	assert.Equal(t, PhaseBegin, h.drags[len(h.drags)-1].phase)
}

func TestDragSkipsFramesParallelToPlane(t *testing.T) {
	d := NewDispatcher(nil)
	// Snap plane containing the view direction
	h := &handler{plane: geometry.NewSnapPlane(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0})}

	frame(d, pointerAt(mgl64.Vec3{0, 0.2, 0}, true), h)
	frame(d, Pointer{Ray: geometry.Ray{Origin: mgl64.Vec3{0, 0.5, 10}, Direction: mgl64.Vec3{0, 0, -1}}, Down: true}, h)

	assert.Len(t, h.drags, 1, "only the begin event")
	assert.True(t, d.Dragging())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "begin", PhaseBegin.String())
	assert.Equal(t, "active", PhaseActive.String())
	assert.Equal(t, "unknown", Phase(7).String())
}
