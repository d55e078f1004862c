package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Gobd/apischema"
)

var (
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("registry: schema already registered")
	// ErrNotFound is returned by MustGet's panic when a name is unknown.
	ErrNotFound = errors.New("registry: schema not found")
)

// Registry maps schema names to compiled schemas. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*apischema.Schema
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{schemas: make(map[string]*apischema.Schema)}
}

// Register adds s under name.
func (r *Registry) Register(name string, s *apischema.Schema) error {
	if name == "" {
		return errors.New("registry: schema name cannot be empty")
	}
	if s == nil {
		return fmt.Errorf("registry: schema %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.schemas[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	r.schemas[name] = s
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, s *apischema.Schema) {
	if err := r.Register(name, s); err != nil {
		panic(err)
	}
}

// Get returns the schema registered under name.
func (r *Registry) Get(name string) (*apischema.Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[name]
	return s, ok
}

// MustGet is like Get but panics when name is unknown.
func (r *Registry) MustGet(name string) *apischema.Schema {
	s, ok := r.Get(name)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrNotFound, name))
	}
	return s
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
