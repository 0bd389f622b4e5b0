package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/teapot/glctx"
)

// fakeHost is a minimal Host for registry tests.
type fakeHost struct {
	name    string
	openErr error
	opened  Config
}

func (h *fakeHost) Name() string                      { return h.name }
func (h *fakeHost) Open(cfg Config) error             { h.opened = cfg; return h.openErr }
func (h *fakeHost) Context() glctx.Context            { return nil }
func (h *fakeHost) Events() gpucontext.EventSource    { return gpucontext.NullEventSource{} }
func (h *fakeHost) Window() gpucontext.WindowProvider { return gpucontext.NullWindowProvider{} }
func (h *fakeHost) ShaderVersion() string             { return "300 es" }
func (h *fakeHost) Run(func() error) error            { return nil }
func (h *fakeHost) Close()                            {}

// withRegistry swaps in an empty registry for the duration of a test.
func withRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	saved := hosts
	hosts = make(map[string]HostFactory)
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		hosts = saved
		registryMu.Unlock()
	})
}

func register(name string) {
	Register(name, func() Host { return &fakeHost{name: name} })
}

func TestRegisterAndGet(t *testing.T) {
	withRegistry(t)
	register("b")
	register("a")

	if !IsRegistered("a") {
		t.Error("IsRegistered(a) = false")
	}
	got := Available()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Available() = %v, want [a b]", got)
	}
	if h := Get("a"); h == nil || h.Name() != "a" {
		t.Errorf("Get(a) = %v", h)
	}
	if h := Get("missing"); h != nil {
		t.Errorf("Get(missing) = %v, want nil", h)
	}

	Unregister("a")
	if IsRegistered("a") {
		t.Error("a still registered after Unregister")
	}
}

func TestDefaultPriority(t *testing.T) {
	withRegistry(t)
	if h := Default(); h != nil {
		t.Fatalf("Default() on empty registry = %v, want nil", h)
	}

	register("zzz")
	if h := Default(); h == nil || h.Name() != "zzz" {
		t.Fatalf("Default() = %v, want fallback zzz", h)
	}

	register(BackendHeadless)
	if h := Default(); h.Name() != BackendHeadless {
		t.Errorf("Default() = %s, want %s", h.Name(), BackendHeadless)
	}

	register(BackendGLFW)
	if h := Default(); h.Name() != BackendGLFW {
		t.Errorf("Default() = %s, want %s", h.Name(), BackendGLFW)
	}

	// A nil factory means the host is compiled out.
	Register(BackendGLFW, func() Host { return nil })
	if h := Default(); h.Name() != BackendHeadless {
		t.Errorf("Default() = %s, want %s after glfw stub", h.Name(), BackendHeadless)
	}
	if h := Get(BackendGLFW); h != nil {
		t.Errorf("Get(glfw) = %v, want nil", h)
	}
}

func TestOpen(t *testing.T) {
	withRegistry(t)

	if _, err := Open("", DefaultConfig()); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Open on empty registry error = %v, want ErrBackendNotAvailable", err)
	}

	register(BackendHeadless)
	h, err := Open("", DefaultConfig())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got := h.(*fakeHost).opened; got != DefaultConfig() {
		t.Errorf("opened with %+v, want %+v", got, DefaultConfig())
	}

	if _, err := Open("vulkan", DefaultConfig()); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Open(vulkan) error = %v, want ErrBackendNotAvailable", err)
	}

	boom := errors.New("no display")
	Register("broken", func() Host { return &fakeHost{name: "broken", openErr: boom} })
	if _, err := Open("broken", DefaultConfig()); !errors.Is(err, boom) {
		t.Errorf("Open(broken) error = %v, want wrapped %v", err, boom)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", DefaultConfig(), true},
		{"zero width", Config{Height: 1}, false},
		{"zero height", Config{Width: 1}, false},
		{"negative frames", Config{Width: 1, Height: 1, Frames: -1}, false},
		{"fixed frames", Config{Width: 1, Height: 1, Frames: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
