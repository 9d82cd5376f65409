package boxedit

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/gesture"
	"github.com/philipparndt/boxedit/pkg/geometry"
)

// OnDrag reacts to a drag gesture on the box. The begin event snapshots the
// box and builds the snap plane, then every event including the begin one
// updates the output transform.
func (w *Widget) OnDrag(phase gesture.Phase, c gesture.Cursor, plane *geometry.SnapPlane) {
	w.hints.SetHelpText(HelpText)
	if phase == gesture.PhaseBegin {
		w.beginDrag(c, plane)
	}
	w.updateDrag(c, plane)
}

func (w *Widget) beginDrag(c gesture.Cursor, plane *geometry.SnapPlane) {
	s := &w.session
	s.StartBox = s.Box
	s.Face = geometry.ResolveBoxFace(s.Box, c.Normal)
	s.firstFrame = true
	if !s.Face.Valid() {
		w.log.Debug("drag began outside of any face", "normal", c.Normal)
		return
	}

	facePlane := geometry.FacePlane(s.Box, s.Face)
	ref := geometry.SafeNormalize(facePlane.Col(0).Vec3())
	*plane = geometry.NewSnapPlane(c.Position, c.Normal, ref)
	w.log.Debug("drag began", "face", s.Face, "mode", s.Mode, "origin", c.Position)
}

func (w *Widget) updateDrag(c gesture.Cursor, plane *geometry.SnapPlane) {
	s := &w.session
	if !s.Face.Valid() {
		// No face, no drag: the status stays as Drive reset it
		return
	}
	s.Status = StatusMoving

	// The start box gives a face normal that stays fixed for the gesture
	facePlane := geometry.FacePlane(s.StartBox, s.Face)
	n := geometry.SafeNormalize(facePlane.Col(2).Vec3())

	v := geometry.Project(c.Position.Sub(plane.Origin), n)
	pos := geometry.RoundVec(plane.Origin.Add(v))

	switch s.Mode {
	case Resize:
		box, ok := geometry.MoveFace(s.StartBox, s.Face, pos)
		if !ok || geometry.IsNull(box) {
			w.log.Debug("resize rejected, box would collapse", "face", s.Face, "pos", pos)
			return
		}
		s.Transform = geometry.RelativeTransform(s.Box, box)
	case Move:
		faceCenter := geometry.Center(s.Box).Add(facePlane.Col(2).Vec3())
		ofs := geometry.Project(pos.Sub(faceCenter), n)
		s.Transform = mgl64.Translate3D(ofs[0], ofs[1], ofs[2])
	}
}
