package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/ports"
)

func (c *Client) ListUsers(ctx context.Context, token string) ([]domain.AccountUser, error) {
	var users []domain.AccountUser
	if err := c.do(ctx, "admin_list_users", http.MethodGet, "/api/admin/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, token string, userID int64) (*domain.AccountUser, error) {
	var user domain.AccountUser
	path := fmt.Sprintf("/api/admin/users/%d", userID)
	if err := c.do(ctx, "admin_get_user", http.MethodGet, path, token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, token string, input ports.AdminUserInput) (*domain.AccountUser, error) {
	var user domain.AccountUser
	if err := c.do(ctx, "admin_create_user", http.MethodPost, "/api/admin/users", token, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, userID int64, input ports.AdminUserInput) (*domain.AccountUser, error) {
	var user domain.AccountUser
	path := fmt.Sprintf("/api/admin/users/%d", userID)
	if err := c.do(ctx, "admin_update_user", http.MethodPut, path, token, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) SetUserPassword(ctx context.Context, token string, userID int64, password string) error {
	path := fmt.Sprintf("/api/admin/users/%d/password", userID)
	body := map[string]string{"password": password}
	return c.do(ctx, "admin_set_password", http.MethodPost, path, token, body, nil)
}

func (c *Client) DeleteUser(ctx context.Context, token string, userID int64) error {
	path := fmt.Sprintf("/api/admin/users/%d", userID)
	return c.do(ctx, "admin_delete_user", http.MethodDelete, path, token, nil, nil)
}

func (c *Client) ListCustomers(ctx context.Context, token string) ([]domain.Customer, error) {
	var customers []domain.Customer
	if err := c.do(ctx, "admin_list_customers", http.MethodGet, "/api/admin/customers", token, nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) CreateCustomer(ctx context.Context, token string, input ports.AdminCustomerInput) (*domain.Customer, error) {
	var customer domain.Customer
	if err := c.do(ctx, "admin_create_customer", http.MethodPost, "/api/admin/customers", token, input, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) UpdateAnyCustomer(ctx context.Context, token string, customerID int64, input ports.AdminCustomerInput) (*domain.Customer, error) {
	var customer domain.Customer
	path := fmt.Sprintf("/api/admin/customers/%d", customerID)
	if err := c.do(ctx, "admin_update_customer", http.MethodPut, path, token, input, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) DeleteAnyCustomer(ctx context.Context, token string, customerID int64) error {
	path := fmt.Sprintf("/api/admin/customers/%d", customerID)
	return c.do(ctx, "admin_delete_customer", http.MethodDelete, path, token, nil, nil)
}

func (c *Client) CreateService(ctx context.Context, token string, customerID int64, input ports.AdminServiceInput) (*domain.Service, error) {
	var service domain.Service
	path := fmt.Sprintf("/api/admin/customers/%d/services", customerID)
	if err := c.do(ctx, "admin_create_service", http.MethodPost, path, token, input, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) ListCustomerServices(ctx context.Context, token string, customerID int64) ([]domain.Service, error) {
	var services []domain.Service
	path := fmt.Sprintf("/api/admin/customers/%d/services", customerID)
	if err := c.do(ctx, "admin_list_services", http.MethodGet, path, token, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}
