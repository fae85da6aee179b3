package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abc-telecom/billing-portal/internal/core/claims"
	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/ports"
	"github.com/abc-telecom/billing-portal/internal/core/service"
)

type AuthHandler struct {
	portal *service.PortalService
}

func NewAuthHandler(portal *service.PortalService) *AuthHandler {
	return &AuthHandler{portal: portal}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username    string `json:"username" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
	Role          string       `json:"role,omitempty"`
}

// Login authenticates against the billing API and establishes the portal
// session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store, err := sessionStore(c)
	if err != nil {
		return err
	}

	user, err := h.portal.Login(c.Request().Context(), store, req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionView(store.Token(), user))
}

// Register enrolls a new account with the billing API.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  map[string]int64
// @Failure      400   {object}  map[string]string
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := h.portal.Register(c.Request().Context(), ports.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]int64{"user_id": userID})
}

// Logout clears the session and its persisted token.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	h.portal.Logout(c.Request().Context(), store)
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current session state: token presence, normalized
// user, and primary role.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	snap := store.Snapshot()
	return c.JSON(http.StatusOK, sessionView(snap.Token, snap.User))
}

// sessionView renders the session for page consumers. The primary role
// falls back to the token's claims when the profile has none.
func sessionView(token string, user *domain.User) sessionResponse {
	resp := sessionResponse{
		Authenticated: token != "",
		User:          user,
	}
	if user != nil && user.Role != "" {
		resp.Role = string(user.Role)
	} else if token != "" {
		resp.Role = claims.PrimaryRole(claims.Decode(token))
	}
	return resp
}
