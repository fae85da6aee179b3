package ports

import (
	"context"

	"github.com/abc-telecom/billing-portal/internal/core/domain"
)

// AdminUserInput carries the fields for creating or updating an account
// through the back-office.
type AdminUserInput struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

// AdminCustomerInput creates or updates a customer record on behalf of a
// user.
type AdminCustomerInput struct {
	UserID      int64  `json:"user_id,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// AdminServiceInput provisions a service on a customer account.
type AdminServiceInput struct {
	ServiceType string `json:"serviceType"`
	StartDate   string `json:"startDate,omitempty"`
	Status      string `json:"status,omitempty"`
}

// AdminAPI covers the back-office operations of the billing API. All calls
// carry the administrator's bearer token.
type AdminAPI interface {
	ListUsers(ctx context.Context, token string) ([]domain.AccountUser, error)
	GetUser(ctx context.Context, token string, userID int64) (*domain.AccountUser, error)
	CreateUser(ctx context.Context, token string, input AdminUserInput) (*domain.AccountUser, error)
	UpdateUser(ctx context.Context, token string, userID int64, input AdminUserInput) (*domain.AccountUser, error)
	SetUserPassword(ctx context.Context, token string, userID int64, password string) error
	DeleteUser(ctx context.Context, token string, userID int64) error

	ListCustomers(ctx context.Context, token string) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, token string, input AdminCustomerInput) (*domain.Customer, error)
	UpdateAnyCustomer(ctx context.Context, token string, customerID int64, input AdminCustomerInput) (*domain.Customer, error)
	DeleteAnyCustomer(ctx context.Context, token string, customerID int64) error

	CreateService(ctx context.Context, token string, customerID int64, input AdminServiceInput) (*domain.Service, error)
	ListCustomerServices(ctx context.Context, token string, customerID int64) ([]domain.Service, error)
}
