package ports

import "context"

// TokenPersister persists the bearer token of a session so it survives a
// portal restart or a fresh page load carrying the same session cookie. The
// user profile is never persisted: it is always re-derived from the token.
type TokenPersister interface {
	// Save stores the token under the session ID.
	Save(ctx context.Context, sessionID, token string) error

	// Load returns the persisted token, or "" when none is stored.
	Load(ctx context.Context, sessionID string) (string, error)

	// Delete removes any persisted token for the session ID.
	Delete(ctx context.Context, sessionID string) error
}
