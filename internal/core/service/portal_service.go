package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/abc-telecom/billing-portal/internal/api/metrics"
	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/ports"
	"github.com/abc-telecom/billing-portal/internal/core/session"
)

// PortalService orchestrates login, registration, and logout against the
// billing API and keeps the session store consistent with the outcome.
type PortalService struct {
	auth   ports.AuthAPI
	logger zerolog.Logger
}

func NewPortalService(auth ports.AuthAPI, logger zerolog.Logger) *PortalService {
	return &PortalService{auth: auth, logger: logger}
}

// Login authenticates against the billing API and populates the session:
// the token always, and the user profile when the login response carries
// one (richer than what the token claims would yield — hydration will not
// overwrite it).
func (s *PortalService) Login(ctx context.Context, store *session.Store, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.auth.Login(ctx, username, password)
	if err != nil {
		outcome := "error"
		if errors.Is(err, domain.ErrInvalidCredentials) {
			outcome = "rejected"
		}
		metrics.LoginsTotal.WithLabelValues(outcome).Inc()
		return nil, err
	}

	store.SetToken(ctx, result.Token)
	if result.User != nil {
		store.SetUser(result.User)
	}

	s.logger.Info().Str("username", username).Msg("login succeeded")
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return store.User(), nil
}

// Register enrolls a new account. Registration does not establish a
// session; the caller logs in afterwards.
func (s *PortalService) Register(ctx context.Context, input ports.RegisterInput) (int64, error) {
	userID, err := s.auth.Register(ctx, input)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Str("username", input.Username).Int64("user_id", userID).Msg("account registered")
	return userID, nil
}

// Logout clears the session and its persisted token.
func (s *PortalService) Logout(ctx context.Context, store *session.Store) {
	store.Logout(ctx)
}

// AdminService wraps the back-office operations, adding the portal's local
// checks before delegating upstream.
type AdminService struct {
	admin  ports.AdminAPI
	logger zerolog.Logger
}

func NewAdminService(admin ports.AdminAPI, logger zerolog.Logger) *AdminService {
	return &AdminService{admin: admin, logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context, token string) ([]domain.AccountUser, error) {
	return s.admin.ListUsers(ctx, token)
}

func (s *AdminService) GetUser(ctx context.Context, token string, userID int64) (*domain.AccountUser, error) {
	return s.admin.GetUser(ctx, token, userID)
}

func (s *AdminService) CreateUser(ctx context.Context, token string, input ports.AdminUserInput) (*domain.AccountUser, error) {
	return s.admin.CreateUser(ctx, token, input)
}

func (s *AdminService) UpdateUser(ctx context.Context, token string, userID int64, input ports.AdminUserInput) (*domain.AccountUser, error) {
	return s.admin.UpdateUser(ctx, token, userID, input)
}

func (s *AdminService) SetUserPassword(ctx context.Context, token string, userID int64, password string) error {
	return s.admin.SetUserPassword(ctx, token, userID, password)
}

// DeleteUser removes an account. An administrator deleting their own
// account is rejected here, before any upstream call is made.
func (s *AdminService) DeleteUser(ctx context.Context, token string, actorID, targetID int64) error {
	if actorID != 0 && actorID == targetID {
		return domain.ErrSelfDelete
	}
	if err := s.admin.DeleteUser(ctx, token, targetID); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", targetID).Int64("deleted_by", actorID).Msg("account deleted")
	return nil
}

func (s *AdminService) ListCustomers(ctx context.Context, token string) ([]domain.Customer, error) {
	return s.admin.ListCustomers(ctx, token)
}

func (s *AdminService) CreateCustomer(ctx context.Context, token string, input ports.AdminCustomerInput) (*domain.Customer, error) {
	return s.admin.CreateCustomer(ctx, token, input)
}

func (s *AdminService) UpdateCustomer(ctx context.Context, token string, customerID int64, input ports.AdminCustomerInput) (*domain.Customer, error) {
	return s.admin.UpdateAnyCustomer(ctx, token, customerID, input)
}

func (s *AdminService) DeleteCustomer(ctx context.Context, token string, customerID int64) error {
	return s.admin.DeleteAnyCustomer(ctx, token, customerID)
}

func (s *AdminService) CreateService(ctx context.Context, token string, customerID int64, input ports.AdminServiceInput) (*domain.Service, error) {
	return s.admin.CreateService(ctx, token, customerID, input)
}

func (s *AdminService) ListCustomerServices(ctx context.Context, token string, customerID int64) ([]domain.Service, error) {
	return s.admin.ListCustomerServices(ctx, token, customerID)
}
