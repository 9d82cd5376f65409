package viewer

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// DrawFunc renders a frame of the given size with the given camera
type DrawFunc func(cam *Camera, width, height int) image.Image

// FrameView shows software rendered frames and orbits its camera on drag
type FrameView struct {
	widget.BaseWidget
	camera    *Camera
	draw      DrawFunc
	raster    *canvas.Raster
	dragStart *fyne.Position
}

// NewFrameView creates a new view rendering through draw
func NewFrameView(cam *Camera, draw DrawFunc) *FrameView {
	v := &FrameView{camera: cam, draw: draw}
	v.raster = canvas.NewRaster(v.generate)
	v.ExtendBaseWidget(v)
	return v
}

// Camera returns the camera used for rendering
func (v *FrameView) Camera() *Camera {
	return v.camera
}

// SetDraw replaces the draw function and redraws
func (v *FrameView) SetDraw(draw DrawFunc) {
	v.draw = draw
	v.Refresh()
}

func (v *FrameView) generate(w, h int) image.Image {
	if v.draw == nil || w <= 0 || h <= 0 {
		return image.NewUniform(color.Black)
	}
	return v.draw(v.camera, w, h)
}

// CreateRenderer creates the renderer for the widget
func (v *FrameView) CreateRenderer() fyne.WidgetRenderer {
	return &frameWidgetRenderer{view: v}
}

// Dragged handles mouse drag events for rotation
func (v *FrameView) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y

		v.camera.Rotate(float64(deltaY)*0.01, float64(-deltaX)*0.01)
		v.Refresh()
	}
	pos := event.Position
	v.dragStart = &pos
}

// DragEnd handles the end of a drag event
func (v *FrameView) DragEnd() {
	v.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (v *FrameView) Scrolled(event *fyne.ScrollEvent) {
	v.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.Refresh()
}

// frameWidgetRenderer implements fyne.WidgetRenderer
type frameWidgetRenderer struct {
	view *FrameView
}

func (f *frameWidgetRenderer) Layout(size fyne.Size) {
	f.view.raster.Resize(size)
}

func (f *frameWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (f *frameWidgetRenderer) Refresh() {
	canvas.Refresh(f.view.raster)
}

func (f *frameWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{f.view.raster}
}

func (f *frameWidgetRenderer) Destroy() {}
