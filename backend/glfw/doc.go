// Package glfw provides a desktop host: a GLFW window with an OpenGL 4.1
// core context and a glctx.Context implemented over go-gl.
//
// The host needs cgo and the system OpenGL and windowing headers, so it is
// compiled only with the "glfw" build tag:
//
//	// Build with: go build -tags glfw
//	import _ "github.com/gogpu/teapot/backend/glfw"
//
// Without the tag the package still registers its name, but the factory
// returns nil and backend.Default falls back to the next host.
//
// # Threading
//
// GLFW and the GL context must be used from the main thread. The package
// locks the main goroutine to its OS thread during init; call Open, Run
// and Close from main.
//
// # Input
//
// Key presses and repeats of the arrow keys, R, Space and A are forwarded
// to the registered OnKeyPress callback. Escape closes the window.
// Framebuffer size changes are forwarded to OnResize.
package glfw
