package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abc-telecom/billing-portal/internal/api/metrics"
	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/guard"
	"github.com/abc-telecom/billing-portal/internal/core/session"
)

// Gate protects a route behind authentication: sessions without a token are
// redirected to the login page.
func Gate() echo.MiddlewareFunc {
	return gate(func(snap session.Snapshot) guard.Decision {
		return guard.Check(snap)
	})
}

// GateRole protects a route behind authentication and a required role. A
// role mismatch redirects to the default landing page, not an error page.
func GateRole(required domain.Role) echo.MiddlewareFunc {
	return gate(func(snap session.Snapshot) guard.Decision {
		return guard.CheckRole(snap, required)
	})
}

func gate(decide func(session.Snapshot) guard.Decision) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store := StoreFrom(c)
			if store == nil {
				// Session middleware did not run; treat as unauthenticated.
				metrics.GuardDecisionsTotal.WithLabelValues("redirect_login").Inc()
				return c.Redirect(http.StatusSeeOther, guard.LoginPath)
			}

			decision := decide(store.Snapshot())
			metrics.GuardDecisionsTotal.WithLabelValues(verdictLabel(decision.Verdict)).Inc()

			if decision.Verdict != guard.Allow {
				return c.Redirect(http.StatusSeeOther, decision.Location)
			}
			return next(c)
		}
	}
}

func verdictLabel(v guard.Verdict) string {
	switch v {
	case guard.RedirectLogin:
		return "redirect_login"
	case guard.RedirectFallback:
		return "redirect_fallback"
	default:
		return "allow"
	}
}
