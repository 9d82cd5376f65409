package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/boxedit/pkg/geometry"
)

var (
	gridColor      = rl.NewColor(45, 50, 60, 255)
	startBoxColor  = rl.NewColor(120, 120, 120, 160)
	snapPlaneColor = rl.NewColor(255, 220, 80, 40)
	axisColors    = [3]rl.Color{rl.Red, rl.Green, rl.Blue}
)

// lineThickness keeps lines at a constant screen width
func (app *App) lineThickness() float32 {
	return app.Camera.distance * 0.0015
}

// drawGrid draws the ground plane grid and the world axes
func (app *App) drawGrid() {
	if app.gridSlices <= 0 {
		return
	}
	rl.DrawGrid(app.gridSlices, 1.0)

	half := float32(app.gridSlices) / 2
	for i := 0; i < 3; i++ {
		var end rl.Vector3
		switch i {
		case 0:
			end.X = half
		case 1:
			end.Y = half
		case 2:
			end.Z = half
		}
		rl.DrawLine3D(rl.Vector3{}, end, axisColors[i])
	}
}

// drawStartBox outlines the box as it was when the current drag began
func (app *App) drawStartBox() {
	if !app.Interaction.showStartBox || !app.Edit.loop.Dragging() {
		return
	}
	start := app.Edit.loop.Session().StartBox
	thickness := app.lineThickness() * 0.6
	for _, e := range geometry.Edges(start) {
		rl.DrawCylinderEx(toRaylib(e[0]), toRaylib(e[1]), thickness, thickness, cylinderSegments, startBoxColor)
	}
}

// drawSnapPlane shades the plane the pointer is constrained to while dragging
func (app *App) drawSnapPlane() {
	if !app.Interaction.showStartBox {
		return
	}
	plane, ok := app.Edit.loop.SnapPlane()
	if !ok || plane.Normal.Len() == 0 {
		return
	}
	m := plane.Matrix()
	size := geometry.Size(app.Edit.loop.Session().StartBox)
	extent := math.Max(size[0], math.Max(size[1], size[2]))
	u := m.Col(0).Vec3().Mul(extent)
	v := m.Col(1).Vec3().Mul(extent)
	o := m.Col(3).Vec3()

	a := toRaylib(o.Sub(u).Sub(v))
	b := toRaylib(o.Add(u).Sub(v))
	c := toRaylib(o.Add(u).Add(v))
	d := toRaylib(o.Sub(u).Add(v))
	// Both windings so the plane shows from either side
	rl.DrawTriangle3D(a, b, c, snapPlaneColor)
	rl.DrawTriangle3D(a, c, d, snapPlaneColor)
	rl.DrawTriangle3D(a, c, b, snapPlaneColor)
	rl.DrawTriangle3D(a, d, c, snapPlaneColor)
}
