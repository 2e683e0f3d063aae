// Package host mounts cards on a dashboard and drives their update cycle.
package host

import (
	"fmt"
	"slices"
	"sync"

	"github.com/belphemur/weekly-calendar-card/internal/card"
)

// Factory creates a new, unconfigured card
type Factory func() card.Card

// Registry maps card types to factories. It is built by the application at
// startup; nothing registers itself implicitly.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for cardType
func (r *Registry) Register(cardType string, factory Factory) error {
	if cardType == "" {
		return fmt.Errorf("card type must not be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory for card type %q must not be nil", cardType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[cardType]; exists {
		return fmt.Errorf("card type %q is already registered", cardType)
	}
	r.factories[cardType] = factory
	return nil
}

// New creates a card of cardType
func (r *Registry) New(cardType string) (card.Card, error) {
	r.mu.RLock()
	factory, ok := r.factories[cardType]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown card type %q", cardType)
	}
	return factory(), nil
}

// Types returns the registered card types, sorted
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}
