package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/abc-telecom/billing-portal/internal/core/ports"
)

// Manager hands out the Store for a given session ID, restoring the
// persisted token for IDs it has not seen since startup. The user profile
// is never restored; a fresh store always starts with an absent user and
// the hydrator derives one from the token.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store

	persister ports.TokenPersister
	hydrator  *Hydrator
	log       zerolog.Logger
}

func NewManager(persister ports.TokenPersister, hydrator *Hydrator, log zerolog.Logger) *Manager {
	return &Manager{
		stores:    make(map[string]*Store),
		persister: persister,
		hydrator:  hydrator,
		log:       log,
	}
}

// Session returns the store for the session ID, creating and restoring it
// on first sight. A store is only published once fully restored and
// hydrated: concurrent first requests for the same ID each build their own
// candidate and the loser of the publish race adopts the winner's store, so
// no caller ever observes a half-initialized session.
func (m *Manager) Session(ctx context.Context, id string) *Store {
	m.mu.Lock()
	if store, ok := m.stores[id]; ok {
		m.mu.Unlock()
		return store
	}
	m.mu.Unlock()

	store := NewStore(id, m.persister, m.log)

	if m.persister != nil {
		token, err := m.persister.Load(ctx, id)
		if err != nil {
			m.log.Warn().Err(err).Str("session_id", id).Msg("token restore failed")
		} else if token != "" {
			store.restore(token)
		}
	}

	if m.hydrator != nil {
		m.hydrator.Attach(store)
	}

	m.mu.Lock()
	if existing, ok := m.stores[id]; ok {
		m.mu.Unlock()
		return existing
	}
	m.stores[id] = store
	m.mu.Unlock()
	return store
}

// Drop forgets an in-memory store, e.g. after logout. The persisted token,
// if any, is the store's own responsibility to remove.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	delete(m.stores, id)
	m.mu.Unlock()
}
