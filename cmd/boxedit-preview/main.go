package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/boxedit/internal/replay"
	"github.com/philipparndt/boxedit/internal/render"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/philipparndt/boxedit/pkg/scene"
	"github.com/philipparndt/boxedit/pkg/viewer"
	"github.com/philipparndt/boxedit/pkg/watcher"
	"github.com/pkg/errors"
)

const reloadDebounce = 300 * time.Millisecond

type App struct {
	window    fyne.Window
	watcher   *watcher.FileWatcher
	path      string // script being shown, watched for changes
	replay    *replay.Replay
	view      *viewer.FrameView
	frame     int
	slider    *widget.Slider
	frameInfo *FrameInfo
}

type FrameInfo struct {
	frameLabel  *widget.Label
	statusLabel *widget.Label
	faceLabel   *widget.Label
	centerLabel *widget.Label
	sizeLabel   *widget.Label
	volumeLabel *widget.Label
	helpLabel   *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("BoxEdit - Replay Preview")

	appInstance := &App{
		window: w,
	}

	fw, err := watcher.NewFileWatcher(reloadDebounce, slog.Default())
	if err != nil {
		slog.Warn("auto-reload not available", "err", err)
	} else {
		fw.Start()
		defer fw.Close()
		appInstance.watcher = fw
	}

	// Check if file was provided as argument
	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to BoxEdit Preview")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open Script' to replay a pointer session")

	openButton := widget.NewButton("Open Script", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	script, err := scene.LoadScript(filename)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	r, err := replay.Run(script, nil)
	if err != nil {
		dialog.ShowError(errors.Wrap(err, "failed to replay script"), a.window)
		return
	}

	a.replay = r
	a.frame = 0
	a.setupMainUI()
	a.watch(filename)
}

// watch follows the shown script, dropping the previously shown one
func (a *App) watch(path string) {
	if a.watcher == nil || path == a.path {
		return
	}
	if a.path != "" {
		if err := a.watcher.Unwatch(a.path); err != nil {
			slog.Warn("failed to stop watching script", "file", a.path, "err", err)
		}
	}
	a.path = path
	err := a.watcher.Watch([]string{path}, func(string) {
		fyne.Do(a.reload)
	})
	if err != nil {
		slog.Warn("failed to watch script", "file", path, "err", err)
	}
}

// reload replays the shown script again after it changed on disk, keeping
// the current frame when it still exists
func (a *App) reload() {
	frame := a.frame
	a.loadFile(a.path)
	if a.slider != nil && len(a.replay.Records) > 0 {
		a.slider.SetValue(float64(min(frame, len(a.replay.Records)-1)))
	}
}

func (a *App) setupMainUI() {
	a.frameInfo = &FrameInfo{
		frameLabel:  widget.NewLabel(""),
		statusLabel: widget.NewLabel(""),
		faceLabel:   widget.NewLabel(""),
		centerLabel: widget.NewLabel(""),
		sizeLabel:   widget.NewLabel(""),
		volumeLabel: widget.NewLabel(""),
		helpLabel:   widget.NewLabel(""),
	}
	a.frameInfo.frameLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.view = viewer.NewFrameView(a.replay.Camera(), a.drawFrame)

	a.slider = widget.NewSlider(0, float64(max(len(a.replay.Records)-1, 0)))
	a.slider.Step = 1
	a.slider.OnChanged = func(v float64) {
		a.showFrame(int(v))
	}

	prevButton := widget.NewButton("◀", func() {
		a.slider.SetValue(float64(max(a.frame-1, 0)))
	})
	nextButton := widget.NewButton("▶", func() {
		a.slider.SetValue(float64(min(a.frame+1, len(a.replay.Records)-1)))
	})
	openButton := widget.NewButton("Open Script", func() {
		a.showFileDialog()
	})

	start := a.replay.Start
	startInfo := widget.NewLabel(fmt.Sprintf(
		"Mode: %s\nFrames: %d\nDrags: %d\n\nStart box:\n  Center: %s\n  Size: %s",
		a.replay.Mode,
		len(a.replay.Records),
		a.replay.Drags(),
		formatVec(geometry.Center(start)),
		formatVec(geometry.Size(start)),
	))

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Move the slider to step through frames\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Replay:"),
		widget.NewSeparator(),
		startInfo,
		widget.NewSeparator(),
		a.frameInfo.frameLabel,
		a.frameInfo.statusLabel,
		a.frameInfo.faceLabel,
		a.frameInfo.centerLabel,
		a.frameInfo.sizeLabel,
		a.frameInfo.volumeLabel,
		a.frameInfo.helpLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	controls := container.NewBorder(nil, nil, prevButton, nextButton, a.slider)

	content := container.NewBorder(
		nil,        // top
		controls,   // bottom
		nil,        // left
		infoScroll, // right
		a.view,     // center
	)

	a.window.SetContent(content)
	a.showFrame(0)
}

func (a *App) drawFrame(cam *viewer.Camera, width, height int) image.Image {
	if len(a.replay.Records) == 0 {
		return render.Snapshot(&render.Queue{}, cam, width, height, render.SnapshotOptions{Grid: true})
	}
	img, err := a.replay.Snapshot(a.frame, cam, width, height, true)
	if err != nil {
		return render.Snapshot(&render.Queue{}, cam, width, height, render.SnapshotOptions{Grid: true})
	}
	return img
}

func (a *App) showFrame(i int) {
	if i < 0 || i >= len(a.replay.Records) {
		return
	}
	a.frame = i
	rec := a.replay.Records[i]
	size := geometry.Size(rec.Box)

	a.frameInfo.frameLabel.SetText(fmt.Sprintf("Frame %d / %d", i, len(a.replay.Records)-1))
	a.frameInfo.statusLabel.SetText(fmt.Sprintf("Status: %s (dragging: %v, first: %v)", rec.Status, rec.Result.Dragging, rec.Result.FirstFrame))
	a.frameInfo.faceLabel.SetText(fmt.Sprintf("Face: %s", rec.Face))
	a.frameInfo.centerLabel.SetText(fmt.Sprintf("Center: %s", formatVec(geometry.Center(rec.Box))))
	a.frameInfo.sizeLabel.SetText(fmt.Sprintf("Size: %.2f × %.2f × %.2f", size[0], size[1], size[2]))
	a.frameInfo.volumeLabel.SetText(fmt.Sprintf("Volume: %.2f", geometry.Volume(rec.Box)))
	if rec.Queue.HelpText != "" {
		a.frameInfo.helpLabel.SetText("Hint: " + rec.Queue.HelpText)
	} else {
		a.frameInfo.helpLabel.SetText("")
	}
	a.view.Refresh()
}

func formatVec(v [3]float64) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
