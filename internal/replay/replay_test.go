package replay

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/boxedit"
	"github.com/philipparndt/boxedit/internal/gesture"
	"github.com/philipparndt/boxedit/internal/render"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/philipparndt/boxedit/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Pull the right face of a 2x2x2 box out to x=4 and release
const resizeScript = `
box:
  center: [0, 0, 0]
  size: [2, 2, 2]
mode: %s
frames:
  - origin: [10, 0.5, 0.5]
    dir: [-1, 0, 0]
  - origin: [10, 0.5, 0.5]
    dir: [-1, 0, 0]
    down: true
  - origin: [4, 10, 0.5]
    dir: [0, -1, 0]
    down: true
  - origin: [20, 10, 0.5]
    dir: [0, -1, 0]
`

func runScript(t *testing.T, mode string) *Replay {
	t.Helper()
	s, err := scene.ParseScript([]byte(fmt.Sprintf(resizeScript, mode)))
	require.NoError(t, err)
	r, err := Run(s, nil)
	require.NoError(t, err)
	require.Len(t, r.Records, 4)
	return r
}

func TestReplayResize(t *testing.T) {
	r := runScript(t, "resize")

	hover := r.Records[0]
	assert.False(t, hover.Result.Dragging)
	assert.Equal(t, boxedit.StatusSnapped, hover.Status)
	assert.Equal(t, geometry.FaceRight, hover.Face)
	assert.Equal(t, boxedit.HelpText, hover.Queue.HelpText)
	assert.Equal(t, 1, hover.Queue.Count(render.KindFilledPlane))
	assert.Equal(t, 1, hover.Queue.Count(render.KindArrow))
	assert.Equal(t, 1, hover.Queue.Count(render.KindWireframe))

	begin := r.Records[1]
	assert.True(t, begin.Result.Dragging)
	assert.True(t, begin.Result.FirstFrame)
	assert.True(t, begin.Result.Transform.ApproxEqualThreshold(mgl64.Ident4(), 1e-9))

	active := r.Records[2]
	assert.True(t, active.Result.Dragging)
	assert.False(t, active.Result.FirstFrame)
	assert.Equal(t, boxedit.StatusMoving, active.Status)
	assert.True(t, geometry.Size(active.Box).ApproxEqualThreshold(mgl64.Vec3{5, 2, 2}, 1e-9), "size %v", geometry.Size(active.Box))
	assert.True(t, geometry.Center(active.Box).ApproxEqualThreshold(mgl64.Vec3{1.5, 0, 0}, 1e-9))

	release := r.Records[3]
	assert.False(t, release.Result.Dragging)
	assert.Equal(t, boxedit.StatusIdle, release.Status)
	assert.Empty(t, release.Queue.HelpText)
	assert.Equal(t, active.Box, r.Final())
	assert.Equal(t, 1, r.Drags())
}

func TestReplayMove(t *testing.T) {
	r := runScript(t, "move")

	final := r.Final()
	assert.True(t, geometry.Size(final).ApproxEqualThreshold(mgl64.Vec3{2, 2, 2}, 1e-9))
	// Face snapped from x=1 to x=4
	assert.True(t, geometry.Center(final).ApproxEqualThreshold(mgl64.Vec3{3, 0, 0}, 1e-9), "center %v", geometry.Center(final))
}

func TestRunRejectsBadScript(t *testing.T) {
	s, err := scene.ParseScript([]byte(fmt.Sprintf(resizeScript, "spin")))
	require.NoError(t, err)
	_, err = Run(s, nil)
	assert.ErrorContains(t, err, "script mode")
}

func TestLoopRecordsDoNotShareQueues(t *testing.T) {
	box := geometry.FromCenterSize(mgl64.Vec3{}, mgl64.Vec3{2, 2, 2})
	l := NewLoop(box, boxedit.Move, nil)
	over := gesture.Pointer{Ray: geometry.NewRayTowards(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{})}
	away := gesture.Pointer{Ray: geometry.NewRayTowards(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{5, 5, 0})}

	first := l.Step(over)
	second := l.Step(away)

	assert.Equal(t, 3, len(first.Queue.Commands))
	assert.Equal(t, 1, len(second.Queue.Commands))
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 1, second.Index)
	assert.False(t, l.Dragging())
}

func TestLoopHoverAndSnapPlane(t *testing.T) {
	l := NewLoop(geometry.FromCenterSize(mgl64.Vec3{}, mgl64.Vec3{2, 2, 2}), boxedit.Resize, nil)
	over := gesture.Pointer{Ray: geometry.NewRayTowards(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{})}

	rec := l.Step(over)
	assert.True(t, rec.Hovering)
	assert.Equal(t, geometry.FaceFront, rec.Face)
	_, ok := l.SnapPlane()
	assert.False(t, ok)

	over.Down = true
	rec = l.Step(over)
	assert.False(t, rec.Hovering, "no hover while dragging")
	plane, ok := l.SnapPlane()
	require.True(t, ok)
	assert.True(t, plane.Normal.ApproxEqual(mgl64.Vec3{0, 0, 1}), "normal %v", plane.Normal)
	assert.True(t, plane.Reference.ApproxEqual(mgl64.Vec3{1, 0, 0}), "reference %v", plane.Reference)
	assert.True(t, plane.Matrix().Col(3).Vec3().ApproxEqual(mgl64.Vec3{0, 0, 1}))

	over.Down = false
	l.Step(over)
	_, ok = l.SnapPlane()
	assert.False(t, ok)
}

func TestLoopSetBoxAndMode(t *testing.T) {
	l := NewLoop(geometry.FromCenterSize(mgl64.Vec3{}, mgl64.Vec3{2, 2, 2}), boxedit.Move, nil)
	l.SetMode(l.Mode().Toggle())
	assert.Equal(t, boxedit.Resize, l.Mode())

	other := geometry.FromCenterSize(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1})
	l.SetBox(other)
	rec := l.Step(gesture.Pointer{Ray: geometry.Ray{Origin: mgl64.Vec3{0, 50, 0}, Direction: mgl64.Vec3{0, 1, 0}}})
	assert.Equal(t, other, rec.Box)
	assert.Equal(t, other, l.Queue().Commands[0].Matrix)
}

func TestSnapshotAndPNG(t *testing.T) {
	r := runScript(t, "resize")
	cam := r.Camera()

	img, err := r.Snapshot(0, cam, 64, 48, true)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())

	_, err = r.Snapshot(len(r.Records), cam, 64, 48, false)
	assert.ErrorContains(t, err, "out of range")

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, WritePNG(path, img))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
