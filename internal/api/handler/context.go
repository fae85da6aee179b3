package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/abc-telecom/billing-portal/internal/api/middleware"
	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/session"
)

// sessionStore extracts the store injected by the session middleware.
// Handlers behind a gate can rely on it being present; a missing store
// means the route was wired without the middleware.
func sessionStore(c echo.Context) (*session.Store, error) {
	store := middleware.StoreFrom(c)
	if store == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session middleware not configured")
	}
	return store, nil
}

// bearerToken returns the session's token, failing with 401 when absent.
// Gated routes should never reach this error; ungated ones may.
func bearerToken(c echo.Context) (string, error) {
	store, err := sessionStore(c)
	if err != nil {
		return "", err
	}
	token := store.Token()
	if token == "" {
		return "", domain.ErrNotAuthenticated
	}
	return token, nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
