package app

import (
	"path/filepath"
	"time"

	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/philipparndt/boxedit/pkg/scene"
	"github.com/philipparndt/boxedit/pkg/watcher"
	"github.com/pkg/errors"
)

// setupFileWatcher watches the box file so edits from other tools show up
func (app *App) setupFileWatcher(debounce time.Duration) error {
	fw, err := watcher.NewFileWatcher(debounce, app.log)
	if err != nil {
		return err
	}

	callback := func(changedFile string) {
		app.log.Info("box file changed", "path", changedFile)
		app.FileWatch.requestReload()
	}

	if err := fw.Watch([]string{app.FileWatch.sourceFile}, callback); err != nil {
		fw.Close()
		return errors.Wrap(err, "failed to watch box file")
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	app.log.Info("watching box file", "path", app.FileWatch.sourceFile)
	return nil
}

// applyPendingReload reloads the box if the watcher saw a change. A drag in
// progress wins; the reload waits until the button is released.
func (app *App) applyPendingReload() {
	if app.Edit.loop.Dragging() {
		return
	}
	if app.FileWatch.takeReload() {
		app.reloadBox()
	}
}

// reloadBox replaces the edited box with the one on disk
func (app *App) reloadBox() {
	box, err := scene.LoadBox(app.FileWatch.sourceFile)
	if err != nil {
		app.log.Warn("reload failed", "err", err)
		app.setMessage("Reload failed: " + errors.Cause(err).Error())
		return
	}
	if geometry.IsNull(box) {
		app.log.Warn("ignoring box without volume", "path", app.FileWatch.sourceFile)
		app.setMessage("Ignored box without volume")
		return
	}
	if box == app.Edit.loop.Box() {
		// Our own save, or nothing changed
		app.Edit.saved = true
		return
	}

	app.Edit.loop.SetBox(box)
	app.Edit.saved = true
	app.setMessage("Reloaded " + filepath.Base(app.FileWatch.sourceFile))
}

// saveBox writes the edited box back to its file
func (app *App) saveBox() {
	if err := scene.SaveBox(app.FileWatch.sourceFile, app.Edit.loop.Box()); err != nil {
		app.log.Error("save failed", "err", err)
		app.setMessage("Save failed")
		return
	}
	app.Edit.saved = true
	app.log.Info("box saved", "path", app.FileWatch.sourceFile)
	app.setMessage("Saved " + filepath.Base(app.FileWatch.sourceFile))
}

func (app *App) setMessage(msg string) {
	app.UI.message = msg
	app.UI.messageTime = time.Now()
}
