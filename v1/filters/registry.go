package filters

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateFilter is returned when a name is registered twice.
	ErrDuplicateFilter = errors.New("duplicate filter name")

	// ErrRegistrySealed is returned when registering after Seal.
	ErrRegistrySealed = errors.New("filter registry is sealed")
)

// Registry is an ordered set of filter definitions keyed by name.
//
// Registration happens during startup from a single goroutine. After Seal the
// registry is read-only and safe for concurrent use without locking.
type Registry struct {
	defs   []Definition
	index  map[string]int
	sealed bool
}

// NewRegistry creates an unsealed registry holding defs in order.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(defs))}
	for _, d := range defs {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends a definition.
func (r *Registry) Register(def Definition) error {
	if r.sealed {
		return fmt.Errorf("%w: cannot register %q", ErrRegistrySealed, def.Name)
	}
	if err := def.Validate(); err != nil {
		return err
	}
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if _, ok := r.index[def.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateFilter, def.Name)
	}

	def.Path = append([]string(nil), def.Path...)
	r.index[def.Name] = len(r.defs)
	r.defs = append(r.defs, def)
	return nil
}

// Seal freezes the registry.
func (r *Registry) Seal() *Registry {
	r.sealed = true
	return r
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Get returns the definition registered under name.
func (r *Registry) Get(name string) (Definition, bool) {
	i, ok := r.index[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// All returns every definition in registration order.
func (r *Registry) All() []Definition {
	return append([]Definition(nil), r.defs...)
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.defs))
	for i, d := range r.defs {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}
