// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"sort"
	"sync"

	"github.com/gogpu/gg"
)

// Factory creates the drawing context for a pixmap. It is called for the
// base target and for every layer, so it must be cheap.
type Factory func(pm *gg.Pixmap) *gg.Context

// RegistryEntry represents a registered backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// The built-in software backend uses 10.
	Priority int

	Factory Factory

	// Available reports if the backend can be used on this system.
	Available func() bool
}

// Registry manages registered backends.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*RegistryEntry)}
}

var globalRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by New.
func DefaultRegistry() *Registry { return globalRegistry }

// Register adds a backend to the default registry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// New creates a surface using the best available backend of the default
// registry.
func New(width, height int) (*Surface, error) {
	return globalRegistry.NewSurface(width, height)
}

// Register adds a backend. If available is nil the backend is always
// available. Registering an existing name replaces it.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

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

// Unregister removes a backend.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// List returns all backend names sorted by priority, highest first.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames(false)
}

// Available returns available backend names sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames(true)
}

// NewSurface creates a surface with the highest-priority available backend.
func (r *Registry) NewSurface(width, height int) (*Surface, error) {
	r.mu.RLock()
	names := r.sortedNames(true)
	r.mu.RUnlock()

	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}
	return r.NewSurfaceByName(names[0], width, height)
}

// NewSurfaceByName creates a surface with a specific backend.
func (r *Registry) NewSurfaceByName(name string, width, height int) (*Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return newSurface(name, entry.Factory, width, height)
}

// sortedNames must be called with the lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// SoftwareFactory draws with gg's CPU rasterizer.
func SoftwareFactory(pm *gg.Pixmap) *gg.Context {
	return gg.NewContext(pm.Width(), pm.Height(), gg.WithPixmap(pm))
}

func init() {
	Register("software", 10, SoftwareFactory, nil)
}
