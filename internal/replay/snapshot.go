package replay

import (
	"image"
	"image/png"
	"os"

	"github.com/philipparndt/boxedit/internal/render"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/philipparndt/boxedit/pkg/viewer"
	"github.com/pkg/errors"
)

// Camera returns a camera looking from the script's eye at the start box.
// Without an eye the box is framed from the default angles.
func (r *Replay) Camera() *viewer.Camera {
	center := geometry.Center(r.Start)
	cam := viewer.NewCamera(center, geometry.Size(r.Start))
	if r.Eye != center && r.Eye.Len() > 0 {
		cam.LookAt(r.Eye, center)
	}
	return cam
}

// Snapshot renders frame i as seen by cam
func (r *Replay) Snapshot(i int, cam *viewer.Camera, width, height int, grid bool) (*image.RGBA, error) {
	if i < 0 || i >= len(r.Records) {
		return nil, errors.Errorf("frame %d out of range [0, %d)", i, len(r.Records))
	}
	q := r.Records[i].Queue
	return render.Snapshot(&q, cam, width, height, render.SnapshotOptions{Grid: grid}), nil
}

// WritePNG encodes an image to a file
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	return errors.Wrapf(f.Close(), "failed to close %s", path)
}
