package backend

import (
	"fmt"
	"slices"
	"sync"
)

// HostFactory creates a new host instance. A factory may return nil when
// the host cannot work in this build.
type HostFactory func() Host

// registry holds registered hosts.
var (
	registryMu sync.RWMutex
	hosts      = make(map[string]HostFactory)
	// Priority order for host selection (first available wins).
	// A desktop window is preferred; headless is the fallback.
	hostPriority = []string{BackendGLFW, BackendHeadless}
)

// Register registers a host factory with the given name.
// This is typically called from init() functions in backend packages.
// If a host with the same name is already registered, it will be replaced.
func Register(name string, factory HostFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	hosts[name] = factory
}

// Unregister removes a host from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(hosts, name)
}

// Available returns the sorted names of registered hosts.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(hosts))
	for name := range hosts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a host with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := hosts[name]
	return ok
}

// Get returns a host instance by name.
// Returns nil if the host is not registered or not usable in this build.
func Get(name string) Host {
	registryMu.RLock()
	factory, ok := hosts[name]
	registryMu.RUnlock()

	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available host based on priority.
// Priority order: glfw > headless.
// Returns nil if no hosts are registered.
func Default() Host {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range hostPriority {
		if factory, ok := hosts[name]; ok {
			if h := factory(); h != nil {
				return h
			}
		}
	}

	// Fallback: first available in name order.
	names := make([]string, 0, len(hosts))
	for name := range hosts {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if h := hosts[name](); h != nil {
			return h
		}
	}
	return nil
}

// Open returns the named host opened with cfg. An empty name selects
// Default().
func Open(name string, cfg Config) (Host, error) {
	var h Host
	if name == "" {
		h = Default()
	} else {
		h = Get(name)
	}
	if h == nil {
		if name == "" {
			return nil, ErrBackendNotAvailable
		}
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	if err := h.Open(cfg); err != nil {
		return nil, fmt.Errorf("backend: open %s: %w", h.Name(), err)
	}
	return h, nil
}
