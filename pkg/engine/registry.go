package engine

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages available mixing engines
type Registry struct {
	mu      sync.RWMutex
	engines map[string]func() Engine
}

// NewRegistry creates a new engine registry
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]func() Engine),
	}
}

// Register adds an engine to the registry
func (r *Registry) Register(name string, factory func() Engine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[name]; exists {
		return fmt.Errorf("engine %s already registered", name)
	}

	r.engines[name] = factory
	return nil
}

// Get returns a new instance of the requested engine
func (r *Registry) Get(name string) (Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.engines[name]
	if !exists {
		return nil, fmt.Errorf("engine %s not found", name)
	}

	return factory(), nil
}

// List returns all registered engine names, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global engine registry
var DefaultRegistry = NewRegistry()
