//go:build glfw

package glfw

import (
	"errors"
	"fmt"
	"runtime"

	gogl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/teapot/backend"
	"github.com/gogpu/teapot/glctx"
)

// ShaderVersion is the GLSL version of an OpenGL 4.1 core context.
const ShaderVersion = "410 core"

// ErrInit is wrapped when GLFW or the GL loader fails to initialize.
var ErrInit = errors.New("glfw: init failed")

// init registers the desktop host and pins main to its OS thread, as GLFW
// requires.
func init() {
	runtime.LockOSThread()
	backend.Register(backend.BackendGLFW, func() backend.Host {
		return &Host{}
	})
}

// Host is a GLFW window with a current OpenGL 4.1 core context.
type Host struct {
	cfg    backend.Config
	window *glfw.Window
	ctx    Context
	events events
	frames int
}

var _ backend.Host = (*Host)(nil)

// Name returns the backend identifier.
func (h *Host) Name() string { return backend.BackendGLFW }

// Open creates the window, makes its context current and loads GL.
func (h *Host) Open(cfg backend.Config) error {
	if h.window != nil {
		return backend.ErrAlreadyOpen
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %dx%d, %d frames", err, cfg.Width, cfg.Height, cfg.Frames)
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrInit, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("glfw: create window: %w", err)
	}
	win.MakeContextCurrent()
	if err := gogl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return fmt.Errorf("%w: %w", ErrInit, err)
	}
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	win.SetKeyCallback(h.onKey)
	win.SetFramebufferSizeCallback(h.onFramebufferSize)

	h.cfg = cfg
	h.window = win
	return nil
}

func (h *Host) onKey(w *glfw.Window, k glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	if k == glfw.KeyEscape {
		w.SetShouldClose(true)
		return
	}
	key, ok := keyCode(k)
	if ok && h.events.onKey != nil {
		h.events.onKey(key, modifiers(mods))
	}
}

func (h *Host) onFramebufferSize(_ *glfw.Window, width, height int) {
	if h.events.onResize != nil {
		h.events.onResize(width, height)
	}
}

// Context returns the graphics context, or nil before Open.
func (h *Host) Context() glctx.Context {
	if h.window == nil {
		return nil
	}
	return h.ctx
}

// Events returns the window's key and resize events.
func (h *Host) Events() gpucontext.EventSource { return &h.events }

// Window reports the framebuffer size.
func (h *Host) Window() gpucontext.WindowProvider { return windowProvider{h} }

// ShaderVersion returns "410 core".
func (h *Host) ShaderVersion() string { return ShaderVersion }

// Run renders, swaps and polls until the window is closed or the
// configured frame count is reached.
func (h *Host) Run(frame func() error) error {
	if h.window == nil {
		return backend.ErrNotOpen
	}
	for !h.window.ShouldClose() {
		if h.cfg.Frames > 0 && h.frames >= h.cfg.Frames {
			return nil
		}
		if err := frame(); err != nil {
			return fmt.Errorf("glfw: frame %d: %w", h.frames, err)
		}
		h.frames++
		h.window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// Close destroys the window and terminates GLFW. It is idempotent.
func (h *Host) Close() {
	if h.window == nil {
		return
	}
	h.window.Destroy()
	h.window = nil
	glfw.Terminate()
}

// events forwards key presses and framebuffer resizes. Other
// registrations are ignored.
type events struct {
	gpucontext.NullEventSource

	onKey    func(gpucontext.Key, gpucontext.Modifiers)
	onResize func(int, int)
}

func (e *events) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers)) { e.onKey = fn }
func (e *events) OnResize(fn func(int, int))                               { e.onResize = fn }

// windowProvider reports the framebuffer size in pixels.
type windowProvider struct{ h *Host }

func (w windowProvider) Size() (int, int) {
	if w.h.window == nil {
		return w.h.cfg.Width, w.h.cfg.Height
	}
	return w.h.window.GetFramebufferSize()
}

func (w windowProvider) ScaleFactor() float64 {
	if w.h.window == nil {
		return 1
	}
	x, _ := w.h.window.GetContentScale()
	return float64(x)
}

func (w windowProvider) RequestRedraw() { glfw.PostEmptyEvent() }
