package schema

import (
	"fmt"
	"sync"
)

// Registry manages all registered collection models. It is safe for
// concurrent use, though extraction itself is single-threaded.
type Registry struct {
	models map[string]*Model
	order  []string
	mu     sync.RWMutex
}

// NewRegistry creates an empty model registry.
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[string]*Model),
	}
}

// Register adds a named model. Registering a duplicate name is an error.
func (r *Registry) Register(name string, s *Schema) (*Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.models[name]; exists {
		return nil, fmt.Errorf("model %s is already registered", name)
	}

	m := &Model{Name: name, Schema: s}
	r.models[name] = m
	r.order = append(r.order, name)
	return m, nil
}

// Get retrieves a model by name.
func (r *Registry) Get(name string) (*Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.models[name]
	return m, exists
}

// All returns a copy of the model map to prevent external mutation of the
// registry itself (models are shared pointers; extraction never mutates them).
func (r *Registry) All() map[string]*Model {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*Model, len(r.models))
	for k, v := range r.models {
		result[k] = v
	}
	return result
}

// Names returns registered model names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Count returns the number of registered models.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.models)
}

// Exists checks whether a model name is registered.
func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.models[name]
	return exists
}

// Clear removes all registered models (useful for testing).
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.models = make(map[string]*Model)
	r.order = nil
}
