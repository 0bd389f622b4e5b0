// Package backend provides pluggable hosts that own a graphics context and
// drive the frame loop.
//
// # Host Registration
//
// Hosts are registered via init() functions and selected at runtime.
// Import the host packages you want available:
//
//	import (
//		_ "github.com/gogpu/teapot/backend/glfw"
//		_ "github.com/gogpu/teapot/backend/headless"
//	)
//
// # Host Selection
//
// Use Default() to get the best available host, or Get() to request one
// by name. Open does either and opens the result:
//
//	h, err := backend.Open("", backend.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer h.Close()
//
// # Driving a Scene
//
//	w, ht := h.Window().Size()
//	s, err := teapot.NewScene(h.Context(), w, ht,
//		teapot.WithShaderVersion(h.ShaderVersion()))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Destroy()
//	s.Subscribe(h.Events())
//	err = h.Run(s.Render)
//
// The glfw host needs cgo. Without it the name stays registered but Get
// returns nil, so Default falls back to headless.
package backend
