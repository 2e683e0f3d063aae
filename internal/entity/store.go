// Package entity holds the host's entity states that cards look up by id.
package entity

import (
	"context"
	"maps"
	"sync"

	"github.com/belphemur/weekly-calendar-card/internal/logging"
	"github.com/belphemur/weekly-calendar-card/internal/signals"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// State is the current state of one entity. A new Version is assigned on
// every Set, even when the state string is unchanged.
type State struct {
	EntityID   string
	State      string
	Attributes map[string]any
	Version    uint64
}

// Lookup returns the state of an entity, or false when it is unavailable
type Lookup interface {
	State(entityID string) (State, bool)
}

// Store is a concurrency-safe entity state table
type Store struct {
	mu      sync.RWMutex
	states  map[string]State
	version *atomic.Uint64
	logger  zerolog.Logger
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		states:  make(map[string]State),
		version: atomic.NewUint64(0),
		logger:  logging.GetLogger("entity-store"),
	}
}

// State implements Lookup
func (s *Store) State(entityID string) (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[entityID]
	return st, ok
}

// Set stores a new state for entityID and emits EntityStateChanged
func (s *Store) Set(ctx context.Context, entityID, state string, attributes map[string]any) State {
	st := State{
		EntityID:   entityID,
		State:      state,
		Attributes: maps.Clone(attributes),
		Version:    s.version.Inc(),
	}

	s.mu.Lock()
	s.states[entityID] = st
	s.mu.Unlock()

	s.logger.Debug().Str("entity_id", entityID).Str("state", state).Uint64("version", st.Version).Msg("Entity state set")
	signals.EmitEntityStateChanged(ctx, signals.EntityStateChangedData{
		EntityID:  entityID,
		Available: true,
		Version:   st.Version,
	})
	return st
}

// Remove makes entityID unavailable. It reports whether the entity existed.
func (s *Store) Remove(ctx context.Context, entityID string) bool {
	s.mu.Lock()
	_, ok := s.states[entityID]
	delete(s.states, entityID)
	s.mu.Unlock()

	if !ok {
		return false
	}

	s.logger.Debug().Str("entity_id", entityID).Msg("Entity removed")
	signals.EmitEntityStateChanged(ctx, signals.EntityStateChangedData{
		EntityID:  entityID,
		Available: false,
		Version:   s.version.Inc(),
	})
	return true
}

// Snapshot returns a copy of all states keyed by entity id
func (s *Store) Snapshot() map[string]State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.states)
}
