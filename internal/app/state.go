package app

import (
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/boxedit/internal/replay"
	"github.com/philipparndt/boxedit/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
	home          rl.Vector3 // Box center when the camera was framed
}

// EditState holds the box being edited
type EditState struct {
	loop  *replay.Loop
	saved bool // box on disk matches the edited box
	drags int  // number of drag gestures since start
}

// InteractionState holds mouse state
type InteractionState struct {
	isPanning      bool
	isOrbiting     bool
	showHelp       bool
	showStartBox   bool // draw the start box and snap plane while dragging
	showDimensions bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	sourceFile  string               // Box file path
	fileWatcher *watcher.FileWatcher // File watcher for auto-reload
	mu          sync.Mutex           // guards needsReload, set from the watcher goroutine
	needsReload bool
}

// UIState holds UI-related state
type UIState struct {
	font        rl.Font
	message     string    // transient status line
	messageTime time.Time // when message was set
	cursor      int32
}

func (w *FileWatchState) requestReload() {
	w.mu.Lock()
	w.needsReload = true
	w.mu.Unlock()
}

// takeReload returns and clears the reload flag
func (w *FileWatchState) takeReload() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	r := w.needsReload
	w.needsReload = false
	return r
}
