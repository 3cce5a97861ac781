package calendar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrNotFound is returned when no adapter is registered under a name.
	ErrNotFound = errors.New("calendar: adapter not found")
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("calendar: adapter already registered")
	// ErrInvalidName is returned for empty or nil registrations.
	ErrInvalidName = errors.New("calendar: adapter name is required")
)

// Registry stores calendar adapters by name.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]Adapter),
	}
}

// Register adds an adapter under name. Duplicate names return an error.
func (r *Registry) Register(name string, adapter Adapter) error {
	if adapter == nil {
		return fmt.Errorf("calendar: adapter is required")
	}
	key := normalizeAdapterName(name)
	if key == "" {
		return ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, key)
	}

	r.adapters[key] = adapter
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(name string, adapter Adapter) {
	if err := r.Register(name, adapter); err != nil {
		panic(err)
	}
}

// Get retrieves an adapter by name.
func (r *Registry) Get(name string) (Adapter, error) {
	key := normalizeAdapterName(name)
	if key == "" {
		return nil, ErrInvalidName
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return adapter, nil
}

// Has reports whether an adapter is registered under name.
func (r *Registry) Has(name string) bool {
	key := normalizeAdapterName(name)
	if key == "" {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.adapters[key]
	return ok
}

// List returns the sorted registered names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeAdapterName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry shared by the package
// level functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds an adapter to the default registry.
func Register(name string, adapter Adapter) error {
	return defaultRegistry.Register(name, adapter)
}

// MustRegister panics when registration in the default registry fails.
func MustRegister(name string, adapter Adapter) {
	defaultRegistry.MustRegister(name, adapter)
}

// Get retrieves an adapter from the default registry.
func Get(name string) (Adapter, error) {
	return defaultRegistry.Get(name)
}

// Has reports whether the default registry holds name.
func Has(name string) bool {
	return defaultRegistry.Has(name)
}

// List returns the sorted names held by the default registry.
func List() []string {
	return defaultRegistry.List()
}
