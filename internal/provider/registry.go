package provider

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps provider names to constructed completers.
type Registry struct {
	mu    sync.RWMutex
	items map[string]Completer
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Completer)}
}

// Register adds or replaces the completer for name.
func (r *Registry) Register(name string, c Completer) {
	name = strings.ToLower(strings.TrimSpace(name))
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[name] = c
}

// Get returns the completer registered under name.
func (r *Registry) Get(name string) (Completer, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	r.mu.RLock()
	c, ok := r.items[key]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown completion provider %q (known: %s)", name, strings.Join(r.Names(), ", "))
	}
	return c, nil
}

// Names returns the registered provider names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for n := range r.items {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
