package ports

import (
	"context"

	"github.com/abc-telecom/billing-portal/internal/core/domain"
)

// RegisterInput carries the fields the billing API accepts for enrollment.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
}

// LoginResult is what the billing API hands back on a successful login.
// User is optional: some deployments return only the token, in which case
// the session hydrator derives the profile from the token's claims.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthAPI is the credential boundary of the billing API.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, input RegisterInput) (int64, error)
}
