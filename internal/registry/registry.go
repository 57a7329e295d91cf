package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a concurrency-safe map from an opaque token to a registered
// value. One instance backs the theme registry, another the format registry.
// Registration happens during program init; lookups are read-mostly after.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

// New returns an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[string]T)}
}

// Register binds a value to a token. Registering the same token twice is an
// error; callers that need replacement must Reset first.
func (r *Registry[T]) Register(token string, v T) error {
	if token == "" {
		return fmt.Errorf("registry: empty token")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[token]; exists {
		return fmt.Errorf("registry: token %q already registered", token)
	}

	r.entries[token] = v
	return nil
}

// Lookup retrieves the value bound to token.
func (r *Registry[T]) Lookup(token string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[token]
	return v, ok
}

// Tokens returns all registered tokens in sorted order.
func (r *Registry[T]) Tokens() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tokens := make([]string, 0, len(r.entries))
	for token := range r.entries {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Reset clears all registrations (for tests).
func (r *Registry[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]T)
}
