package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSessionTTL = 24 * time.Hour

// TokenStore persists session bearer tokens in Redis so they survive portal
// restarts. Key format: session:<session_id>:token. Only the token is ever
// stored; the user profile is re-derived from it on demand.
type TokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenStore creates a TokenStore wrapping the given Redis client. A
// non-positive ttl falls back to defaultSessionTTL.
func NewTokenStore(client *redis.Client, ttl time.Duration) *TokenStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &TokenStore{client: client, ttl: ttl}
}

// Save stores the token under the session ID, refreshing the TTL.
func (s *TokenStore) Save(ctx context.Context, sessionID, token string) error {
	if err := s.client.Set(ctx, s.key(sessionID), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Load returns the persisted token, or "" when none is stored.
func (s *TokenStore) Load(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session load: %w", err)
	}
	return token, nil
}

// Delete removes the persisted token for the session ID.
func (s *TokenStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *TokenStore) key(sessionID string) string {
	return fmt.Sprintf("session:%s:token", sessionID)
}
