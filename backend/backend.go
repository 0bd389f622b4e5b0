package backend

import (
	"errors"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/teapot/glctx"
)

// Backend name constants.
const (
	// BackendGLFW is the name of the desktop OpenGL 4.1 core backend.
	BackendGLFW = "glfw"
	// BackendHeadless is the name of the in-memory recording backend.
	BackendHeadless = "headless"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotOpen is returned when operations are called before Open.
	ErrNotOpen = errors.New("backend: not open")

	// ErrAlreadyOpen is returned by a second Open.
	ErrAlreadyOpen = errors.New("backend: already open")

	// ErrInvalidConfig is returned by Open for a non-positive window size
	// or a negative frame count.
	ErrInvalidConfig = errors.New("backend: invalid config")
)

// Config describes the window and frame loop a Host opens.
type Config struct {
	// Title is the window title. Hosts without a window ignore it.
	Title string

	// Width and Height are the initial framebuffer size in pixels.
	Width  int
	Height int

	// Frames stops Run after that many frames. Zero runs until the window
	// is closed; hosts without a window then run a single frame.
	Frames int

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool
}

// DefaultConfig returns an 800×600 window titled "teapot" with vsync.
func DefaultConfig() Config {
	return Config{
		Title:  "teapot",
		Width:  800,
		Height: 600,
		VSync:  true,
	}
}

// Validate reports whether c can be opened.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Frames < 0 {
		return ErrInvalidConfig
	}
	return nil
}

// Host owns a graphics context and the loop that drives frames on it.
//
// Hosts must be registered via Register() and are selected via Get() or
// Default(). All methods except Name must be called from the goroutine
// that called Open; GL contexts are bound to a single thread.
type Host interface {
	// Name returns the backend identifier (e.g., "glfw", "headless").
	Name() string

	// Open creates the window and context.
	Open(cfg Config) error

	// Context returns the graphics context, or nil before Open.
	Context() glctx.Context

	// Events returns the source of key presses and resizes.
	Events() gpucontext.EventSource

	// Window reports the framebuffer size.
	Window() gpucontext.WindowProvider

	// ShaderVersion returns the GLSL version directive the context accepts.
	ShaderVersion() string

	// Run calls frame once per frame until the configured frame count is
	// reached, the window is closed, or frame returns an error.
	Run(frame func() error) error

	// Close releases the window and context. It is idempotent.
	Close()
}
