package upstream

import (
	"context"
	"errors"
	"net/http"

	"github.com/abc-telecom/billing-portal/internal/core/claims"
	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/ports"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse mirrors the billing API's auth payload. Only accessToken is
// guaranteed; the embedded user block is optional.
type loginResponse struct {
	AccessToken string `json:"accessToken"`
	User        *struct {
		UserID    int64  `json:"userId"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		CreatedAt string `json:"createdAt"`
	} `json:"user"`
}

// Login exchanges credentials for a bearer token. A 401/404 from the API
// surfaces as domain.ErrInvalidCredentials (the API does not distinguish an
// unknown user from a wrong password to this client).
func (c *Client) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	var resp loginResponse
	err := c.do(ctx, "login", http.MethodPost, "/api/login", "", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			return nil, domain.ErrInvalidCredentials
		case statusCode(err) == http.StatusUnauthorized, statusCode(err) == http.StatusForbidden:
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, domain.ErrInvalidCredentials
	}

	result := &ports.LoginResult{Token: resp.AccessToken}
	if resp.User != nil {
		// The API sometimes ships Spring-style authorities ("ROLE_CUSTOMER")
		// in the user block, so the value goes through the same
		// normalization as token claims.
		result.User = &domain.User{
			UserID:   resp.User.UserID,
			Username: resp.User.Username,
			Email:    resp.User.Email,
			Role:     claims.Role(claims.Claims{"role": resp.User.Role}),
		}
	}
	return result, nil
}

type registerRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type registerResponse struct {
	UserID int64 `json:"user_id"`
}

// Register enrolls a new account and returns the created user ID.
func (c *Client) Register(ctx context.Context, input ports.RegisterInput) (int64, error) {
	var resp registerResponse
	err := c.do(ctx, "register", http.MethodPost, "/api/register", "", registerRequest{
		Username:    input.Username,
		Email:       input.Email,
		Password:    input.Password,
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
	}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.UserID, nil
}
