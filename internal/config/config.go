// Package config holds the editor settings, loaded from an optional YAML
// file layered over defaults.
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/philipparndt/boxedit/internal/boxedit"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

type Camera struct {
	Distance float64 `yaml:"distance"` // 0 frames the box
	AngleX   float64 `yaml:"angle_x"`  // degrees
	AngleY   float64 `yaml:"angle_y"`  // degrees
	Fovy     float64 `yaml:"fovy"`     // degrees
}

type Editor struct {
	Mode          string        `yaml:"mode"`
	GridSlices    int32         `yaml:"grid_slices"`
	WatchDebounce time.Duration `yaml:"watch_debounce"`
	Snapshot      Snapshot      `yaml:"snapshot"`
}

// Snapshot configures headless PNG output
type Snapshot struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Grid   bool `yaml:"grid"`
}

type Config struct {
	Window   Window `yaml:"window"`
	Camera   Camera `yaml:"camera"`
	Editor   Editor `yaml:"editor"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Window: Window{
			Width:  1400,
			Height: 900,
			FPS:    60,
			Title:  "BoxEdit",
		},
		Camera: Camera{
			AngleX: 25,
			AngleY: 35,
			Fovy:   45,
		},
		Editor: Editor{
			Mode:          "resize",
			GridSlices:    20,
			WatchDebounce: 500 * time.Millisecond,
			Snapshot: Snapshot{
				Width:  800,
				Height: 600,
				Grid:   true,
			},
		},
		LogLevel: "info",
	}
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config file at path. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks sizes, the editor mode and the log level
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return errors.Errorf("fps must be positive, got %d", c.Window.FPS)
	}
	if c.Camera.Distance < 0 {
		return errors.Errorf("camera distance must not be negative, got %v", c.Camera.Distance)
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		return errors.Errorf("fovy must be between 0 and 180 degrees, got %v", c.Camera.Fovy)
	}
	if _, err := c.EditMode(); err != nil {
		return err
	}
	if c.Editor.GridSlices < 0 {
		return errors.Errorf("grid slices must not be negative, got %d", c.Editor.GridSlices)
	}
	if c.Editor.WatchDebounce < 0 {
		return errors.Errorf("watch debounce must not be negative, got %v", c.Editor.WatchDebounce)
	}
	if c.Editor.Snapshot.Width <= 0 || c.Editor.Snapshot.Height <= 0 {
		return errors.Errorf("snapshot size must be positive, got %dx%d", c.Editor.Snapshot.Width, c.Editor.Snapshot.Height)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// EditMode returns the initial editor mode
func (c Config) EditMode() (boxedit.Mode, error) {
	m, err := boxedit.ParseMode(c.Editor.Mode)
	if err != nil {
		return boxedit.Move, errors.Wrap(err, "editor.mode")
	}
	return m, nil
}

// ParseLevel converts debug, info, warn or error to a slog level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return slog.LevelInfo, errors.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// NewLogger builds the text logger on stderr used by the commands
func NewLogger(level string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}
