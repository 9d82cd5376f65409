package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/boxedit/internal/gesture"
	"github.com/philipparndt/boxedit/internal/replay"
	"github.com/philipparndt/boxedit/pkg/geometry"
)

// pointer returns the gesture pointer for the current mouse state. The
// button counts as down only when the left button is not used for panning
// or orbiting.
func (app *App) pointer() gesture.Pointer {
	ray := rl.GetMouseRay(rl.GetMousePosition(), app.Camera.camera)
	down := rl.IsMouseButtonDown(rl.MouseLeftButton) && !app.Interaction.isPanning && !app.Interaction.isOrbiting
	return gesture.Pointer{
		Ray: geometry.Ray{
			Origin:    fromRaylib(ray.Position),
			Direction: geometry.SafeNormalize(fromRaylib(ray.Direction)),
		},
		Down: down,
	}
}

// handleInput processes keyboard and camera input. It runs before the edit
// step of the frame.
func (app *App) handleInput() {
	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyB) {
		app.setCameraBottomView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.setCameraBackView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraLeftView()
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		app.setCameraRightView()
	}

	// Editing shortcuts are ignored while a face is dragged
	if !app.Edit.loop.Dragging() {
		if rl.IsKeyPressed(rl.KeyTab) {
			app.Edit.loop.SetMode(app.Edit.loop.Mode().Toggle())
			app.setMessage("Mode: " + app.Edit.loop.Mode().String())
		}
		if rl.IsKeyPressed(rl.KeyS) {
			app.saveBox()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			app.reloadBox()
		}
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.Interaction.showStartBox = !app.Interaction.showStartBox
	}
	if rl.IsKeyPressed(rl.KeyM) {
		app.Interaction.showDimensions = !app.Interaction.showDimensions
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.Interaction.showHelp = !app.Interaction.showHelp
	}

	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	// Shift + left drag or middle drag pans, unless a face drag is running
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.isPanning = shiftPressed
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Interaction.isPanning = false
		app.Interaction.isOrbiting = false
	}
	if (app.Interaction.isPanning && rl.IsMouseButtonDown(rl.MouseLeftButton)) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
	}

	// Right drag always orbits
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
			app.doOrbit(delta)
		}
	}

	// Zoom with mouse wheel
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel)
	}
}

// handleFreeDrag orbits the camera when the left button was pressed away
// from the box. It runs after the edit step so a press that started a face
// drag is not taken for an orbit.
func (app *App) handleFreeDrag() {
	if !rl.IsMouseButtonDown(rl.MouseLeftButton) || app.Interaction.isPanning || app.Edit.loop.Dragging() {
		return
	}
	app.Interaction.isOrbiting = true
	if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
		app.doOrbit(delta)
	}
}

// updateCursor shows a hand over a face and the move cursor while dragging
func (app *App) updateCursor(rec replay.Record) {
	cursor := int32(rl.MouseCursorDefault)
	switch {
	case rec.Result.Dragging:
		cursor = int32(rl.MouseCursorResizeAll)
	case rec.Hovering && rec.Face.Valid():
		cursor = int32(rl.MouseCursorPointingHand)
	}
	if cursor != app.UI.cursor {
		rl.SetMouseCursor(cursor)
		app.UI.cursor = cursor
	}
}
