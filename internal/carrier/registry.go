package carrier

import (
	"fmt"
	"strings"
	"sync"
)

// Registry holds providers in registration order.
type Registry struct {
	mu        sync.RWMutex
	providers []Provider
}

// NewRegistry creates a registry with the given providers.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{}
	for _, p := range providers {
		_ = r.Register(p)
	}
	return r
}

// Register appends p. Names are unique, case-insensitively.
func (r *Registry) Register(p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.providers {
		if strings.EqualFold(existing.Name(), p.Name()) {
			return fmt.Errorf("carrier provider %q already registered", p.Name())
		}
	}
	r.providers = append(r.providers, p)
	return nil
}

// All returns every registered provider.
func (r *Registry) All() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Enabled returns the providers whose names appear in names, in registration order.
// An empty names list enables every provider.
func (r *Registry) Enabled(names []string) []Provider {
	if len(names) == 0 {
		return r.All()
	}
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Provider
	for _, p := range r.providers {
		if _, ok := wanted[strings.ToLower(p.Name())]; ok {
			out = append(out, p)
		}
	}
	return out
}
