package session

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/abc-telecom/billing-portal/internal/core/claims"
	"github.com/abc-telecom/billing-portal/internal/core/domain"
)

// Field-name variants observed across token issuers, in extraction order.
// The first claim that yields a value wins.
var (
	userIDClaims    = []string{"sub", "user_id", "id"}
	usernameClaims  = []string{"username", "user_name", "name"}
	emailClaims     = []string{"email"}
	createdAtClaims = []string{"createdAt", "created_at"}
)

// Hydrator derives a user profile from the session token when none is
// present yet, e.g. after a restart restored only the persisted token.
type Hydrator struct {
	log zerolog.Logger
}

func NewHydrator(log zerolog.Logger) *Hydrator {
	return &Hydrator{log: log}
}

// Attach subscribes the hydrator to the store so every (token, user) change
// re-runs the check, then hydrates once for the current state.
func (h *Hydrator) Attach(store *Store) {
	store.Subscribe(func(Snapshot) {
		h.Hydrate(store)
	})
	h.Hydrate(store)
}

// Hydrate fills in the user profile from the token's claims. No-op when the
// token is absent (nothing to derive from) or the user is already present
// (a login response may have set a richer profile than the token carries;
// it must not be overwritten).
func (h *Hydrator) Hydrate(store *Store) {
	snap := store.Snapshot()
	if snap.Token == "" || snap.User != nil {
		return
	}

	decoded := claims.Decode(snap.Token)
	if decoded == nil {
		// Malformed token: treated as "no claims", never surfaced.
		h.log.Debug().Str("session_id", store.ID()).Msg("token carries no decodable claims")
		return
	}

	store.SetUser(UserFromClaims(decoded))
}

// UserFromClaims synthesizes a normalized user from decoded token claims,
// taking the first non-empty source for each field.
func UserFromClaims(c claims.Claims) *domain.User {
	return &domain.User{
		UserID:    firstInt(c, userIDClaims),
		Username:  firstString(c, usernameClaims),
		Email:     firstString(c, emailClaims),
		Role:      claims.Role(c),
		CreatedAt: firstTime(c, createdAtClaims),
	}
}

func firstString(c claims.Claims, names []string) string {
	for _, name := range names {
		if s, ok := c[name].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func firstInt(c claims.Claims, names []string) int64 {
	for _, name := range names {
		switch v := c[name].(type) {
		case float64:
			return int64(v)
		case string:
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				return n
			}
		}
	}
	return 0
}

func firstTime(c claims.Claims, names []string) *time.Time {
	for _, name := range names {
		switch v := c[name].(type) {
		case string:
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				return &t
			}
		case float64:
			t := time.Unix(int64(v), 0).UTC()
			return &t
		}
	}
	return nil
}
