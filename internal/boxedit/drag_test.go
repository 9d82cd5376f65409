package boxedit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/gesture"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drive queues one drag event and runs a frame, applying the result to box
// the way an editor does.
func drive(w *Widget, in *scriptedInput, box *mgl64.Mat4, mode Mode, phase gesture.Phase, pos, normal mgl64.Vec3) Result {
	in.queueDrag(phase, pos, normal)
	res := w.Drive(*box, mode)
	if res.Dragging {
		*box = res.Transform.Mul4(*box)
	}
	return res
}

func TestBeginThenActiveAtSamePointIsIdentity(t *testing.T) {
	for _, mode := range []Mode{Move, Resize} {
		t.Run(mode.String(), func(t *testing.T) {
			w, in, _ := newTestWidget()
			box := testBox()

			res := drive(w, in, &box, mode, gesture.PhaseBegin, rightHit, unitX)
			assert.True(t, res.Dragging)
			assert.True(t, res.Transform.ApproxEqualThreshold(mgl64.Ident4(), 1e-9), "begin transform %v", res.Transform)

			res = drive(w, in, &box, mode, gesture.PhaseActive, rightHit, unitX)
			assert.True(t, res.Dragging)
			assert.True(t, res.Transform.ApproxEqualThreshold(mgl64.Ident4(), 1e-9), "active transform %v", res.Transform)
			assert.True(t, box.ApproxEqualThreshold(testBox(), 1e-9))
		})
	}
}

func TestBeginBuildsSnapPlane(t *testing.T) {
	w, in, _ := newTestWidget()
	box := testBox()

	drive(w, in, &box, Move, gesture.PhaseBegin, rightHit, unitX)

	s := w.Session()
	assert.Equal(t, geometry.FaceRight, s.Face)
	assert.Equal(t, testBox(), s.StartBox)
	assert.Equal(t, rightHit, in.plane.Origin)
	assert.Equal(t, unitX, in.plane.Normal)
	// First axis of the right face frame is -Z
	assert.True(t, in.plane.Reference.ApproxEqual(mgl64.Vec3{0, 0, -1}), "reference %v", in.plane.Reference)
}

func TestResizeMovesDraggedFace(t *testing.T) {
	w, in, _ := newTestWidget()
	box := testBox()

	drive(w, in, &box, Resize, gesture.PhaseBegin, rightHit, unitX)
	res := drive(w, in, &box, Resize, gesture.PhaseActive, mgl64.Vec3{5.4, 0.3, 0.4}, unitX)

	require.True(t, res.Dragging)
	// Left face stays at -2, right face snaps to 5
	assert.True(t, geometry.Center(box).ApproxEqualThreshold(mgl64.Vec3{1.5, 0, 0}, 1e-9), "center %v", geometry.Center(box))
	assert.True(t, geometry.Size(box).ApproxEqualThreshold(mgl64.Vec3{7, 2, 2}, 1e-9), "size %v", geometry.Size(box))
}

func TestResizeIsRelativeToCurrentBox(t *testing.T) {
	w, in, _ := newTestWidget()
	box := testBox()

	drive(w, in, &box, Resize, gesture.PhaseBegin, rightHit, unitX)
	drive(w, in, &box, Resize, gesture.PhaseActive, mgl64.Vec3{4, 0.3, 0.4}, unitX)
	grown := box

	// The start box stays the reference: a later frame lands on the same
	// absolute position even though the caller already applied the
	// previous transform.
	res := drive(w, in, &box, Resize, gesture.PhaseActive, mgl64.Vec3{6, 0.3, 0.4}, unitX)
	require.True(t, res.Dragging)
	assert.True(t, geometry.Size(grown).ApproxEqualThreshold(mgl64.Vec3{6, 2, 2}, 1e-9))
	assert.True(t, geometry.Size(box).ApproxEqualThreshold(mgl64.Vec3{8, 2, 2}, 1e-9), "size %v", geometry.Size(box))
	assert.True(t, res.Transform.Mul4(grown).ApproxEqualThreshold(box, 1e-9))
}

func TestResizeRejectsCollapse(t *testing.T) {
	w, in, _ := newTestWidget()
	box := testBox()

	drive(w, in, &box, Resize, gesture.PhaseBegin, rightHit, unitX)
	drive(w, in, &box, Resize, gesture.PhaseActive, mgl64.Vec3{3, 0.3, 0.4}, unitX)
	accepted := box

	for _, x := range []float64{-2.2, -2, -5} {
		res := drive(w, in, &box, Resize, gesture.PhaseActive, mgl64.Vec3{x, 0.3, 0.4}, unitX)
		assert.True(t, res.Dragging, "drag continues at x=%v", x)
		assert.Equal(t, mgl64.Ident4(), res.Transform, "no update at x=%v", x)
		assert.Equal(t, accepted, box, "box frozen at x=%v", x)
		assert.Greater(t, geometry.Volume(box), 0.0)
	}

	// Dragging back to a valid position resumes
	drive(w, in, &box, Resize, gesture.PhaseActive, mgl64.Vec3{0.4, 0.3, 0.4}, unitX)
	assert.True(t, geometry.Size(box).ApproxEqualThreshold(mgl64.Vec3{2, 2, 2}, 1e-9), "size %v", geometry.Size(box))
}

func TestResizeNeverCollapsesVolume(t *testing.T) {
	w, in, _ := newTestWidget()
	box := testBox()

	drive(w, in, &box, Resize, gesture.PhaseBegin, rightHit, unitX)
	for x := 6.0; x > -8; x -= 0.25 {
		drive(w, in, &box, Resize, gesture.PhaseActive, mgl64.Vec3{x, 0.3, 0.4}, unitX)
		require.Greater(t, geometry.Volume(box), 0.0, "x=%v", x)
		require.Greater(t, box.Mat3().Det(), 0.0, "x=%v", x)
	}
}

func TestMoveTranslatesAlongFaceNormal(t *testing.T) {
	w, in, _ := newTestWidget()
	box := testBox()

	drive(w, in, &box, Move, gesture.PhaseBegin, rightHit, unitX)
	// Sideways pointer motion within the snap plane is discarded
	res := drive(w, in, &box, Move, gesture.PhaseActive, mgl64.Vec3{5.4, 0.3, 2.7}, unitX)

	require.True(t, res.Dragging)
	assert.True(t, res.Transform.ApproxEqualThreshold(mgl64.Translate3D(3, 0, 0), 1e-9), "transform %v", res.Transform)
	assert.True(t, geometry.Center(box).ApproxEqualThreshold(mgl64.Vec3{3, 0, 0}, 1e-9))
	assert.True(t, geometry.Size(box).ApproxEqualThreshold(mgl64.Vec3{4, 2, 2}, 1e-9))
}

func TestMoveIsPureTranslation(t *testing.T) {
	w, in, _ := newTestWidget()
	rot := mgl64.HomogRotate3D(0.7, mgl64.Vec3{1, 2, 3}.Normalize())
	box := geometry.FromCenterSizeRotation(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{2, 4, 6}, rot)

	normal := geometry.FaceNormal(box, geometry.FaceTop)
	hit := geometry.FacePlane(box, geometry.FaceTop).Col(3).Vec3()
	drive(w, in, &box, Move, gesture.PhaseBegin, hit, normal)
	require.Equal(t, geometry.FaceTop, w.Session().Face)

	for i := 0; i < 40; i++ {
		f := float64(i)
		pos := hit.Add(normal.Mul(math.Sin(f) * 7)).Add(mgl64.Vec3{math.Cos(f * 3), 0, 0})
		res := drive(w, in, &box, Move, gesture.PhaseActive, pos, normal)
		require.True(t, res.Dragging)
		assert.Equal(t, mgl64.Ident3(), res.Transform.Mat3(), "frame %d", i)
		assert.Equal(t, mgl64.Vec4{0, 0, 0, 1}, res.Transform.Row(3), "frame %d", i)
	}
}

func TestFirstFrameReportedOnce(t *testing.T) {
	w, in, _ := newTestWidget()
	box := testBox()

	res := drive(w, in, &box, Move, gesture.PhaseBegin, rightHit, unitX)
	assert.True(t, res.FirstFrame)

	res = drive(w, in, &box, Move, gesture.PhaseActive, rightHit, unitX)
	assert.False(t, res.FirstFrame)

	res = w.Drive(box, Move)
	assert.False(t, res.FirstFrame)
	assert.False(t, res.Dragging, "no drag event, no drag")

	res = drive(w, in, &box, Move, gesture.PhaseBegin, rightHit, unitX)
	assert.True(t, res.FirstFrame, "a new gesture reports again")
}

func TestDragWithoutFaceDoesNothing(t *testing.T) {
	w, in, _ := newTestWidget()
	box := testBox()

	res := drive(w, in, &box, Resize, gesture.PhaseBegin, rightHit, mgl64.Vec3{})
	assert.False(t, res.Dragging)
	assert.True(t, res.FirstFrame)
	assert.Equal(t, mgl64.Ident4(), res.Transform)

	res = drive(w, in, &box, Resize, gesture.PhaseActive, mgl64.Vec3{9, 9, 9}, mgl64.Vec3{})
	assert.False(t, res.Dragging)
	assert.Equal(t, testBox(), box)
	assert.Equal(t, StatusIdle, w.Session().Status)
}

func TestGridSnapping(t *testing.T) {
	w, in, _ := newTestWidget()
	// Box whose top face is at y=1; drag it up with a fractional cursor
	box := geometry.FromCenterSize(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2})
	up := mgl64.Vec3{0, 1, 0}

	drive(w, in, &box, Resize, gesture.PhaseBegin, mgl64.Vec3{0.2, 1, 0.3}, up)
	drive(w, in, &box, Resize, gesture.PhaseActive, mgl64.Vec3{0.2, 3.51, 0.3}, up)

	size := geometry.Size(box)
	assert.InDelta(t, 5.0, size[1], 1e-9, "top face snapped to y=4")
	assert.InDelta(t, -1.0, geometry.Center(box)[1]-size[1]/2, 1e-9, "bottom face kept")
}
