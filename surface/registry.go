// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// HostFactory constructs a host instance. Factories may be called more
// than once; hosts that are expensive to build should memoize internally.
type HostFactory func() (Host, error)

// RegistryEntry represents a registered surface host.
type RegistryEntry struct {
	// Name is the unique identifier for this host.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: direct GPU hosts (wgpu)
	//   - 90: injected-device hosts (gogpu provider)
	//   - 10: software or test hosts
	Priority int

	// Factory creates host instances.
	Factory HostFactory

	// Available reports if the host is usable on this system.
	// Must be cheap; it is consulted on every availability query.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered surface hosts.
//
// The registry lets backend packages make themselves discoverable
// without the capability core importing them. Backends register from
// init and users opt in by blank import:
//
//	import _ "github.com/gogpu/glcaps/backend/wgpu"
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Create.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a host to the global registry.
//
// If available is nil, the host is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory HostFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a host from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered host names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available hosts sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific host.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// Register adds a host to this registry.
func (r *Registry) Register(name string, priority int, factory HostFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a host from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered host names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available hosts sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific host.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// CreateSurface constructs a surface via the best available host,
// trying hosts in priority order until one succeeds.
func (r *Registry) CreateSurface(width, height int) (*Surface, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoHostAvailable
	}

	var lastErr error
	for _, name := range available {
		s, err := r.CreateSurfaceByName(name, width, height)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

// CreateSurfaceByName constructs a surface via a specific named host.
func (r *Registry) CreateSurfaceByName(name string, width, height int) (*Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &HostNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &HostUnavailableError{Name: name}
	}

	h, err := entry.Factory()
	if err != nil {
		return nil, err
	}

	native, err := h.CreateSurface(width, height)
	if err != nil {
		return nil, err
	}

	return New(h, native), nil
}

// sortedNames returns host names sorted by priority (highest first).
// If onlyAvailable is true, filters to available hosts only.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoHostAvailable is returned when no surface hosts are registered
	// or available on the current system.
	ErrNoHostAvailable = errors.New("surface: no host available")
)

// HostNotFoundError indicates a named host is not registered.
type HostNotFoundError struct {
	Name string
}

func (e *HostNotFoundError) Error() string {
	return "surface: host not found: " + e.Name
}

// HostUnavailableError indicates a host exists but is not available.
type HostUnavailableError struct {
	Name string
}

func (e *HostUnavailableError) Error() string {
	return "surface: host unavailable: " + e.Name
}
