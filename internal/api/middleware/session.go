package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/abc-telecom/billing-portal/internal/core/session"
)

// SessionKey is the echo context key under which the request's session
// store is stashed.
const SessionKey = "portal_session"

// Session resolves the session store for the request's cookie and injects
// it into the context. A request without a cookie gets a fresh session ID;
// a returning cookie gets its store back, with any persisted token already
// restored and hydrated.
func Session(manager *session.Manager, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
				id = cookie.Value
			} else {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     cookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			store := manager.Session(c.Request().Context(), id)
			c.Set(SessionKey, store)

			return next(c)
		}
	}
}

// StoreFrom extracts the session store injected by Session. Returns nil if
// the middleware did not run.
func StoreFrom(c echo.Context) *session.Store {
	store, _ := c.Get(SessionKey).(*session.Store)
	return store
}
