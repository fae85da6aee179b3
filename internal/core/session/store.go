// Package session owns the mutable authentication state of the portal: the
// bearer token and the normalized user profile derived from it.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/ports"
)

// Snapshot is an immutable view of a session taken at a single point in
// time. Consumers always observe a consistent (token, user) pair.
type Snapshot struct {
	Token string
	User  *domain.User
}

// IsAuthenticated reports whether the session carries a token.
func (s Snapshot) IsAuthenticated() bool {
	return s.Token != ""
}

// Listener receives a snapshot after each session mutation.
type Listener func(Snapshot)

// Store holds the (token, user) pair for one session. The user profile is
// only ever derived from the token and never outlives it: clearing the
// token clears the user in the same mutation. The token alone is persisted
// through a TokenPersister; the user is always re-derived.
type Store struct {
	mu        sync.Mutex
	id        string
	token     string
	user      *domain.User
	listeners []Listener

	persister ports.TokenPersister
	log       zerolog.Logger
}

// NewStore creates an empty session store. persister may be nil for
// sessions that should not survive the process.
func NewStore(id string, persister ports.TokenPersister, log zerolog.Logger) *Store {
	return &Store{id: id, persister: persister, log: log}
}

// ID returns the session's identifier.
func (s *Store) ID() string { return s.id }

// Snapshot returns a consistent view of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Token: s.token, User: s.user}
}

// Token returns the current bearer token, or "" when absent.
func (s *Store) Token() string {
	return s.Snapshot().Token
}

// User returns the current normalized user, or nil when absent.
func (s *Store) User() *domain.User {
	return s.Snapshot().User
}

// SetToken stores a new bearer token and persists it. An empty token clears
// the session instead: the user is dropped in the same mutation and nothing
// falsy is ever written to the persister.
func (s *Store) SetToken(ctx context.Context, token string) {
	s.mu.Lock()
	s.token = token
	if token == "" {
		s.user = nil
	}
	snap := Snapshot{Token: s.token, User: s.user}
	s.mu.Unlock()

	if token != "" && s.persister != nil {
		if err := s.persister.Save(ctx, s.id, token); err != nil {
			s.log.Warn().Err(err).Str("session_id", s.id).Msg("token persistence failed")
		}
	}

	s.notify(snap)
}

// SetUser stores a normalized user profile. Ignored when no token is
// present: a user value must never exist without the token it was derived
// from.
func (s *Store) SetUser(user *domain.User) {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return
	}
	s.user = user
	snap := Snapshot{Token: s.token, User: s.user}
	s.mu.Unlock()

	s.notify(snap)
}

// Logout clears the token and the user atomically and removes the
// persisted token.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if s.persister != nil {
		if err := s.persister.Delete(ctx, s.id); err != nil {
			s.log.Warn().Err(err).Str("session_id", s.id).Msg("token removal failed")
		}
	}

	s.notify(Snapshot{})
}

// Subscribe registers a listener that is invoked synchronously after every
// mutation with the snapshot produced by that mutation.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// restore seeds the token from persisted storage without re-persisting or
// notifying; used only while a store is being constructed. A token already
// present wins: persisted state is never fresher than a live mutation.
func (s *Store) restore(token string) {
	s.mu.Lock()
	if s.token == "" {
		s.token = token
	}
	s.mu.Unlock()
}

func (s *Store) notify(snap Snapshot) {
	s.mu.Lock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}
