package resource

import (
	"sort"
	"sync"

	"github.com/jmgilman/go/resource/errors"
)

// Constructor creates a resource for a fully qualified location. The loader
// is passed so the resource can take its collaborators from it.
// Constructors must not open the underlying stream.
type Constructor func(l *Loader, location string) (Resource, error)

// Registry maps protocols to constructors. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Constructor)}
}

// Register maps protocol to ctor, replacing any existing mapping.
//
// Returns CodeInvalidInput when protocol is empty or ctor is nil.
func (r *Registry) Register(protocol string, ctor Constructor) error {
	if protocol == "" {
		return errors.New(errors.CodeInvalidInput, "protocol cannot be empty")
	}
	if ctor == nil {
		return errors.NewWithContext(errors.CodeInvalidInput, "constructor cannot be nil", map[string]interface{}{
			"protocol": protocol,
		})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[protocol] = ctor
	return nil
}

// Lookup returns the constructor registered for protocol.
func (r *Registry) Lookup(protocol string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.handlers[protocol]
	return ctor, ok
}

// IsRegistered reports whether protocol has a constructor.
func (r *Registry) IsRegistered(protocol string) bool {
	_, ok := r.Lookup(protocol)
	return ok
}

// Protocols returns the registered protocols in sorted order.
func (r *Registry) Protocols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	protocols := make([]string, 0, len(r.handlers))
	for p := range r.handlers {
		protocols = append(protocols, p)
	}
	sort.Strings(protocols)
	return protocols
}
