// Package headless provides a host that renders into the in-memory
// recording context. It needs no display and is the fallback when no
// desktop host is available.
//
// Import it to register the host:
//
//	import _ "github.com/gogpu/teapot/backend/headless"
package headless

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/teapot/backend"
	"github.com/gogpu/teapot/glctx"
	"github.com/gogpu/teapot/recording"
)

// ShaderVersion is the GLSL version the recording context validates.
const ShaderVersion = "300 es"

// init registers the headless host on package import.
func init() {
	backend.Register(backend.BackendHeadless, func() backend.Host {
		return New()
	})
}

// Host runs frames against a recording.Context.
//
// Each frame starts with an empty command log, so after Run the log holds
// the commands of the last frame only.
type Host struct {
	cfg    backend.Config
	ctx    *recording.Context
	events *Events
	window gpucontext.NullWindowProvider
	frames int
}

// New returns an unopened headless host.
func New() *Host {
	return &Host{events: &Events{}}
}

// Name returns the backend identifier.
func (h *Host) Name() string { return backend.BackendHeadless }

// Open creates the recording context.
func (h *Host) Open(cfg backend.Config) error {
	if h.ctx != nil {
		return backend.ErrAlreadyOpen
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %dx%d, %d frames", err, cfg.Width, cfg.Height, cfg.Frames)
	}
	h.cfg = cfg
	h.ctx = recording.NewContext()
	h.window = gpucontext.NullWindowProvider{W: cfg.Width, H: cfg.Height}
	return nil
}

// Context returns the graphics context, or nil before Open.
func (h *Host) Context() glctx.Context {
	if h.ctx == nil {
		return nil
	}
	return h.ctx
}

// Recording returns the recording context for inspection.
func (h *Host) Recording() *recording.Context { return h.ctx }

// Events returns the injectable event source.
func (h *Host) Events() gpucontext.EventSource { return h.events }

// Window reports the configured size, updated by Resize.
func (h *Host) Window() gpucontext.WindowProvider { return h.window }

// ShaderVersion returns the GLSL version the recording context accepts.
func (h *Host) ShaderVersion() string { return ShaderVersion }

// Frames returns the number of frames run so far.
func (h *Host) Frames() int { return h.frames }

// Run calls frame Config.Frames times, or once when Frames is zero.
func (h *Host) Run(frame func() error) error {
	if h.ctx == nil {
		return backend.ErrNotOpen
	}
	n := h.cfg.Frames
	if n == 0 {
		n = 1
	}
	for range n {
		h.ctx.ResetCommands()
		if err := frame(); err != nil {
			return fmt.Errorf("headless: frame %d: %w", h.frames, err)
		}
		h.frames++
	}
	return nil
}

// PressKey delivers a key press to the registered callback.
func (h *Host) PressKey(key gpucontext.Key) {
	h.events.press(key, 0)
}

// Resize changes the reported window size and delivers a resize event.
func (h *Host) Resize(width, height int) {
	h.window.W, h.window.H = width, height
	h.events.resize(width, height)
}

// Close drops the recording context. It is idempotent.
func (h *Host) Close() {
	h.ctx = nil
}

// Events is an EventSource whose key press and resize events are driven
// by the Host. Other registrations are ignored.
type Events struct {
	gpucontext.NullEventSource

	onKey    func(gpucontext.Key, gpucontext.Modifiers)
	onResize func(int, int)
}

// OnKeyPress registers the key press callback.
func (e *Events) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers)) { e.onKey = fn }

// OnResize registers the resize callback.
func (e *Events) OnResize(fn func(int, int)) { e.onResize = fn }

func (e *Events) press(key gpucontext.Key, mods gpucontext.Modifiers) {
	if e.onKey != nil {
		e.onKey(key, mods)
	}
}

func (e *Events) resize(width, height int) {
	if e.onResize != nil {
		e.onResize(width, height)
	}
}

var (
	_ backend.Host           = (*Host)(nil)
	_ gpucontext.EventSource = (*Events)(nil)
)
