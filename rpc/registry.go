package rpc

import (
	"context"
	"sort"
	"sync"

	"github.com/skillsenselab/rpckit/errors"
)

// Invoker is the type-erased view of an Endpoint: what a transport needs to
// mount it and what introspection needs to describe it.
type Invoker interface {
	Name() string
	Describe() Descriptor
	Invoke(ctx context.Context, req Request) ([]byte, error)
}

// Registry is a thread-safe registry of named endpoints. Transports mount
// from it and introspection lists it.
type Registry struct {
	mu        sync.RWMutex
	endpoints map[string]Invoker
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{endpoints: make(map[string]Invoker)}
}

// Register adds an endpoint to the registry. Registering a name twice is a
// wiring defect and fails.
func (r *Registry) Register(ep Invoker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.endpoints[ep.Name()]; exists {
		return errors.AlreadyExists("endpoint").WithDetail("name", ep.Name())
	}
	r.endpoints[ep.Name()] = ep
	return nil
}

// MustRegister adds an endpoint and panics on duplicate names. Use during
// service composition where a duplicate means a programming error.
func (r *Registry) MustRegister(ep Invoker) {
	if err := r.Register(ep); err != nil {
		panic(err)
	}
}

// Get retrieves an endpoint by name.
func (r *Registry) Get(name string) (Invoker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ep, ok := r.endpoints[name]
	return ep, ok
}

// Names returns sorted names of all registered endpoints.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.endpoints))
	for name := range r.endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptors returns the descriptors of all registered endpoints, sorted by
// name.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptors := make([]Descriptor, 0, len(r.endpoints))
	for _, ep := range r.endpoints {
		descriptors = append(descriptors, ep.Describe())
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Name < descriptors[j].Name
	})
	return descriptors
}
