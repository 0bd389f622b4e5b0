//go:build !glfw

package glfw

import "github.com/gogpu/teapot/backend"

// init registers a nil-returning factory when the glfw tag is not set.
// This allows code to compile without the desktop host while still
// allowing backend.Get(backend.BackendGLFW) to return nil gracefully.
func init() {
	backend.Register(backend.BackendGLFW, func() backend.Host {
		return nil
	})
}
