// Package guard decides whether a session may enter a gated route. The
// decision is a pure function of the session snapshot; the guard never
// mutates session state. Because it may rely on unverified token claims, it
// is a UX convenience only — the billing API re-authorizes every operation.
package guard

import (
	"github.com/abc-telecom/billing-portal/internal/core/claims"
	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/session"
)

// Verdict is the outcome of a gate check.
type Verdict int

const (
	// Allow lets the request through.
	Allow Verdict = iota
	// RedirectLogin sends an unauthenticated caller to the login page.
	RedirectLogin
	// RedirectFallback sends an authenticated caller whose role does not
	// match to the default landing page. A role mismatch is a silent
	// downgrade, not an error.
	RedirectFallback
)

const (
	// LoginPath is where unauthenticated callers are sent.
	LoginPath = "/login"
	// FallbackPath is the default authenticated landing page.
	FallbackPath = "/dashboard"
)

// Decision pairs a verdict with the location a redirect should target.
type Decision struct {
	Verdict  Verdict
	Location string
}

// Check gates on authentication alone: any session without a token is sent
// to login.
func Check(snap session.Snapshot) Decision {
	if !snap.IsAuthenticated() {
		return Decision{Verdict: RedirectLogin, Location: LoginPath}
	}
	return Decision{Verdict: Allow}
}

// CheckRole gates on authentication and a required role. Role resolution
// prefers the session's normalized user; when that is absent it falls back
// to decoding the token and testing membership across all role claims.
func CheckRole(snap session.Snapshot, required domain.Role) Decision {
	if d := Check(snap); d.Verdict != Allow {
		return d
	}
	if required == "" {
		return Decision{Verdict: Allow}
	}

	if snap.User != nil && snap.User.Role != "" {
		if snap.User.Role == required {
			return Decision{Verdict: Allow}
		}
		return Decision{Verdict: RedirectFallback, Location: FallbackPath}
	}

	if claims.HasRole(claims.Decode(snap.Token), string(required)) {
		return Decision{Verdict: Allow}
	}
	return Decision{Verdict: RedirectFallback, Location: FallbackPath}
}
