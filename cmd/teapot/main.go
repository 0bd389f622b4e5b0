// Command teapot renders a teapot reflecting a cube-mapped environment.
//
// Usage:
//
//	teapot [-backend glfw|headless] [-preset reflection|single] [-frames N]
//	       [-cube px.png,py.png,pz.png,nx.png,ny.png,nz.png] [-config teapot.yaml]
//
// The desktop window needs a build with -tags glfw; otherwise the headless
// host renders into memory and logs frame statistics.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/teapot"
	"github.com/gogpu/teapot/backend"
	_ "github.com/gogpu/teapot/backend/glfw"
	_ "github.com/gogpu/teapot/backend/headless"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "teapot:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}
	level, err := cfg.level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	teapot.SetLogger(logger)

	opts, err := cfg.sceneOptions()
	if err != nil {
		return err
	}

	h, err := backend.Open(cfg.Backend, cfg.hostConfig())
	if err != nil {
		return err
	}
	defer h.Close()

	w, ht := h.Window().Size()
	opts = append(opts, teapot.WithShaderVersion(h.ShaderVersion()))
	s, err := teapot.NewScene(h.Context(), w, ht, opts...)
	if err != nil {
		return err
	}
	defer s.Destroy()
	s.Subscribe(h.Events())

	logger.Info("running", "backend", h.Name(), "preset", cfg.Preset, "width", w, "height", ht)
	if err := h.Run(s.Render); err != nil {
		return err
	}

	st := s.Stats()
	logger.Info("done",
		"frames", st.Frames,
		"draws", st.Draws,
		"degraded_binds", st.DegradedBinds,
		"gl_errors", st.GLErrors,
		"events", st.Events)
	return nil
}
