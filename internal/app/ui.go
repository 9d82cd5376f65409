package app

import (
	"fmt"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/internal/boxedit"
	"github.com/philipparndt/boxedit/internal/measurement"
	"github.com/philipparndt/boxedit/internal/replay"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/philipparndt/boxedit/version"
)

const messageDuration = 3 * time.Second

// drawDimensions labels the box edges with their lengths
func (app *App) drawDimensions(rec replay.Record) {
	if !app.Interaction.showDimensions {
		return
	}
	measurement.DrawBoxDimensions(measurement.RenderContext{
		Camera:     app.Camera.camera,
		Font:       app.UI.font,
		Box:        rec.Box,
		Face:       rec.Face,
		Dragging:   rec.Result.Dragging,
		AxisColors: axisColors,
	})
}

// drawUI draws the HUD for the frame described by rec
func (app *App) drawUI(rec replay.Record) {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	text := func(s string, size float32, col rl.Color) {
		rl.DrawTextEx(app.UI.font, s, rl.Vector2{X: 10, Y: y}, size, 1, col)
		y += lineHeight
	}

	box := rec.Box
	center := geometry.Center(box)
	size := geometry.Size(box)

	// === BOX ===
	title := "Box:"
	if !app.Edit.saved {
		title = "Box (modified):"
	}
	text(title, fontSize16, rl.Yellow)
	text(fmt.Sprintf("  File: %s", filepath.Base(app.FileWatch.sourceFile)), fontSize14, rl.White)
	text(fmt.Sprintf("  Center: %s", formatVec(center)), fontSize14, rl.White)
	text(fmt.Sprintf("  Size: %.2f × %.2f × %.2f", size[0], size[1], size[2]), fontSize14, rl.White)
	text(fmt.Sprintf("  Volume: %.2f", geometry.Volume(box)), fontSize14, rl.NewColor(100, 200, 255, 255))
	y += lineHeight

	// === EDIT ===
	text("Edit:", fontSize16, rl.Yellow)
	modeColor := rl.Green
	if rec.Result.Dragging {
		modeColor = rl.Orange
	}
	text(fmt.Sprintf("  Mode: %s (Tab)", app.Edit.loop.Mode()), fontSize14, modeColor)
	text(fmt.Sprintf("  Status: %s", rec.Status), fontSize14, rl.LightGray)
	if rec.Face.Valid() {
		text(fmt.Sprintf("  Face: %s", rec.Face), fontSize14, toColor(boxedit.FaceColor(rec.Face, 255)))
	}
	text(fmt.Sprintf("  Drags: %d", app.Edit.drags), fontSize14, rl.LightGray)
	y += lineHeight

	if app.Interaction.showHelp {
		// === VIEW ===
		text("View:", fontSize16, rl.Yellow)
		text("  Home: Reset | T: Top | B: Bottom", fontSize14, rl.LightGray)
		text("  1: Front | 2: Back | 3: Left | 4: Right", fontSize14, rl.LightGray)
		y += lineHeight

		// === NAVIGATE ===
		text("Navigate:", fontSize16, rl.Yellow)
		text("  Left Drag on face: Edit | elsewhere: Rotate", fontSize14, rl.LightGray)
		text("  Right Drag: Rotate | Shift+Drag, Middle: Pan", fontSize14, rl.LightGray)
		text("  Mouse Wheel: Zoom", fontSize14, rl.LightGray)
		y += lineHeight

		// === FILE ===
		text("File:", fontSize16, rl.Yellow)
		text("  S: Save | R: Reload | G: Drag guides", fontSize14, rl.LightGray)
		text("  M: Dimensions | H: Hide help", fontSize14, rl.LightGray)
	}

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	// Help text of the gizmo (bottom-center)
	if rec.Queue.HelpText != "" {
		textSize := rl.MeasureTextEx(app.UI.font, rec.Queue.HelpText, fontSize16, 1)
		x := (screenWidth - textSize.X) / 2
		rl.DrawRectangle(int32(x-10), int32(screenHeight-60), int32(textSize.X+20), int32(textSize.Y+10), rl.NewColor(0, 0, 0, 180))
		rl.DrawTextEx(app.UI.font, rec.Queue.HelpText, rl.Vector2{X: x, Y: screenHeight - 55}, fontSize16, 1, rl.White)
	}

	// Transient message (top-right)
	if app.UI.message != "" && time.Since(app.UI.messageTime) < messageDuration {
		textSize := rl.MeasureTextEx(app.UI.font, app.UI.message, fontSize16, 1)
		boxX := screenWidth - textSize.X - 40
		rl.DrawRectangle(int32(boxX), 20, int32(textSize.X+20), int32(textSize.Y+20), rl.NewColor(0, 0, 0, 180))
		rl.DrawRectangleLines(int32(boxX), 20, int32(textSize.X+20), int32(textSize.Y+20), rl.Yellow)
		rl.DrawTextEx(app.UI.font, app.UI.message, rl.Vector2{X: boxX + 10, Y: 30}, fontSize16, 1, rl.Yellow)
	}

	// Version and FPS in bottom-left corner
	bottomY := screenHeight - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
