// Package app is the interactive raylib box editor.
package app

import (
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/config"
	"github.com/philipparndt/boxedit/internal/replay"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/philipparndt/boxedit/pkg/scene"
	"github.com/pkg/errors"
)

type App struct {
	Camera      CameraState
	Edit        EditState
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState

	log        *slog.Logger
	gridSlices int32
}

// Run opens the editor window for the box stored at boxPath and blocks
// until the window is closed
func Run(cfg config.Config, boxPath string, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	box, err := scene.LoadBox(boxPath)
	if err != nil {
		return err
	}
	if geometry.IsNull(box) {
		return errors.Errorf("box in %s has no volume", boxPath)
	}
	mode, err := cfg.EditMode()
	if err != nil {
		return err
	}

	app := &App{
		Edit: EditState{
			loop:  replay.NewLoop(box, mode, log),
			saved: true,
		},
		Interaction: InteractionState{showHelp: true, showDimensions: true},
		FileWatch:   FileWatchState{sourceFile: boxPath},
		log:         log,
		gridSlices:  cfg.Editor.GridSlices,
	}

	// Set up file watching
	if err := app.setupFileWatcher(cfg.Editor.WatchDebounce); err != nil {
		log.Warn("auto-reload not available", "err", err)
	} else {
		defer app.FileWatch.fileWatcher.Close()
	}

	// Initialize window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)

	app.UI.font = rl.GetFontDefault()
	app.setupCamera(cfg.Camera, box)

	for !rl.WindowShouldClose() {
		// Check for Ctrl+C to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		app.applyPendingReload()

		// Update
		app.handleInput()
		app.updateCamera()
		rec := app.Edit.loop.Step(app.pointer())
		app.handleFreeDrag()
		app.updateCursor(rec)
		if rec.Result.FirstFrame {
			app.Edit.drags++
		}
		if rec.Result.Dragging && rec.Result.Transform != mgl64.Ident4() {
			app.Edit.saved = false
		}

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		app.drawGrid()
		app.drawStartBox()
		app.drawSnapPlane()
		drawOverlay(&rec.Queue, overlayOptions{Thickness: app.lineThickness()})
		rl.EndMode3D()

		app.drawDimensions(rec)
		app.drawUI(rec)

		rl.EndDrawing()
	}

	return nil
}

// setupCamera frames the box using the configured angles
func (app *App) setupCamera(cfg config.Camera, box mgl64.Mat4) {
	center := geometry.Center(box)
	size := geometry.Size(box)
	maxDim := math.Max(size[0], math.Max(size[1], size[2]))

	distance := float32(cfg.Distance)
	if distance == 0 {
		distance = float32(maxDim * 3.0)
	}

	c := &app.Camera
	c.home = toRaylib(center)
	c.target = c.home
	c.distance = distance
	c.angleX = float32(cfg.AngleX * math.Pi / 180)
	c.angleY = float32(cfg.AngleY * math.Pi / 180)

	// Save default camera settings for reset
	c.defaultDist = c.distance
	c.defaultAngleX = c.angleX
	c.defaultAngleY = c.angleY

	c.camera = rl.Camera3D{
		Target:     c.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       float32(cfg.Fovy),
		Projection: rl.CameraPerspective,
	}
	app.updateCamera()
}
