package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/teapot"
	"github.com/gogpu/teapot/backend"
)

// Config is the command configuration. A YAML file given with -config is
// applied over the defaults, then every flag set on the command line.
type Config struct {
	Backend    string    `yaml:"backend"`
	Preset     string    `yaml:"preset"`
	Title      string    `yaml:"title"`
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Frames     int       `yaml:"frames"`
	VSync      bool      `yaml:"vsync"`
	Cube       []string  `yaml:"cube"`
	FaceSize   int       `yaml:"face_size"`
	Spin       float32   `yaml:"spin"`
	Paused     bool      `yaml:"paused"`
	ClearColor []float64 `yaml:"clear_color"`
	LogLevel   string    `yaml:"log_level"`
}

func defaultConfig() Config {
	bc := backend.DefaultConfig()
	return Config{
		Preset:   teapot.PresetReflection.String(),
		Title:    bc.Title,
		Width:    bc.Width,
		Height:   bc.Height,
		VSync:    bc.VSync,
		FaceSize: 256,
		Spin:     teapot.DefaultSpinRate,
		LogLevel: "info",
	}
}

// loadConfigFile decodes the YAML file at path over base. Unknown keys are
// an error.
func loadConfigFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	cfg := base
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseArgs builds the configuration from command line arguments.
func parseArgs(args []string) (Config, error) {
	def := defaultConfig()
	fs := flag.NewFlagSet("teapot", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "YAML configuration file")
		name       = fs.String("backend", def.Backend, "host backend: "+strings.Join(backend.Available(), ", ")+" (empty selects the best available)")
		preset     = fs.String("preset", def.Preset, "scene preset: reflection or single")
		width      = fs.Int("width", def.Width, "window width")
		height     = fs.Int("height", def.Height, "window height")
		frames     = fs.Int("frames", def.Frames, "frames to render, 0 runs until the window closes")
		cube       = fs.String("cube", "", "cube map images: six comma-separated paths (+X,+Y,+Z,-X,-Y,-Z) or one shared path")
		paused     = fs.Bool("paused", def.Paused, "start with the teapot paused, Space resumes it")
		logLevel   = fs.String("log-level", def.LogLevel, "log level: debug, info, warn or error")
	)
	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = loadConfigFile(*configPath, def); err != nil {
			return def, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *name
		case "preset":
			cfg.Preset = *preset
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "frames":
			cfg.Frames = *frames
		case "cube":
			cfg.Cube = splitPaths(*cube)
		case "paused":
			cfg.Paused = *paused
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	return cfg, nil
}

func splitPaths(s string) []string {
	var paths []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// level parses the log level name.
func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// hostConfig returns the window and frame loop settings.
func (c Config) hostConfig() backend.Config {
	return backend.Config{
		Title:  c.Title,
		Width:  c.Width,
		Height: c.Height,
		Frames: c.Frames,
		VSync:  c.VSync,
	}
}

// sceneOptions converts the configuration to scene options, reading the
// cube map images.
func (c Config) sceneOptions() ([]teapot.SceneOption, error) {
	p, err := teapot.ParsePreset(c.Preset)
	if err != nil {
		return nil, err
	}
	opts := []teapot.SceneOption{
		teapot.WithPreset(p),
		teapot.WithSpin(c.Spin),
		teapot.WithFaceSize(c.FaceSize),
	}
	if c.Paused {
		opts = append(opts, teapot.WithPaused())
	}

	switch len(c.ClearColor) {
	case 0:
	case 3, 4:
		col := gputypes.Color{R: c.ClearColor[0], G: c.ClearColor[1], B: c.ClearColor[2], A: 1}
		if len(c.ClearColor) == 4 {
			col.A = c.ClearColor[3]
		}
		opts = append(opts, teapot.WithClearColor(col))
	default:
		return nil, fmt.Errorf("clear_color: want 3 or 4 components, got %d", len(c.ClearColor))
	}

	if len(c.Cube) > 0 {
		faces, err := readFaces(c.Cube)
		if err != nil {
			return nil, err
		}
		opts = append(opts, teapot.WithCubeMap(faces))
	}
	return opts, nil
}

// readFaces reads one shared image or six face images.
func readFaces(paths []string) ([][]byte, error) {
	if len(paths) != 1 && len(paths) != 6 {
		return nil, fmt.Errorf("cube: want 1 or 6 images, got %d", len(paths))
	}
	faces := make([][]byte, len(paths))
	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("cube: %w", err)
		}
		faces[i] = data
	}
	return faces, nil
}
