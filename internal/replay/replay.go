package replay

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/boxedit"
	"github.com/philipparndt/boxedit/internal/gesture"
	"github.com/philipparndt/boxedit/pkg/scene"
	"github.com/pkg/errors"
)

// Replay is the result of running a script
type Replay struct {
	Start   mgl64.Mat4
	Mode    boxedit.Mode
	Eye     mgl64.Vec3
	Records []Record
}

// Final returns the box after the last frame
func (r *Replay) Final() mgl64.Mat4 {
	if len(r.Records) == 0 {
		return r.Start
	}
	return r.Records[len(r.Records)-1].Box
}

// Drags counts the drag gestures of the replay
func (r *Replay) Drags() int {
	n := 0
	for _, rec := range r.Records {
		if rec.Result.FirstFrame {
			n++
		}
	}
	return n
}

// Run plays all frames of a script through a fresh Loop
func Run(s *scene.Script, log *slog.Logger) (*Replay, error) {
	box, err := s.Box.Pose()
	if err != nil {
		return nil, errors.Wrap(err, "script box")
	}
	mode, err := boxedit.ParseMode(s.Mode)
	if err != nil {
		return nil, errors.Wrap(err, "script mode")
	}
	steps, err := s.Rays()
	if err != nil {
		return nil, err
	}

	loop := NewLoop(box, mode, log)
	r := &Replay{
		Start:   box,
		Mode:    mode,
		Eye:     mgl64.Vec3(s.Eye),
		Records: make([]Record, 0, len(steps)),
	}
	for _, step := range steps {
		r.Records = append(r.Records, loop.Step(gesture.Pointer{Ray: step.Ray, Down: step.Down}))
	}
	return r, nil
}
