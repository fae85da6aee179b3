package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/ports"
)

// CurrentCustomer resolves the customer record owned by the calling
// account. An absent record is domain.ErrCustomerNotFound, distinct from a
// transport failure.
func (c *Client) CurrentCustomer(ctx context.Context, token string) (*domain.Customer, error) {
	var customer domain.Customer
	err := c.do(ctx, "current_customer", http.MethodGet, "/api/customers/me", token, nil, &customer)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (c *Client) Customer(ctx context.Context, token string, customerID int64) (*domain.Customer, error) {
	var customer domain.Customer
	path := fmt.Sprintf("/api/customers/%d", customerID)
	if err := c.do(ctx, "get_customer", http.MethodGet, path, token, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, token string, customerID int64, update ports.CustomerUpdate) (*domain.Customer, error) {
	var customer domain.Customer
	path := fmt.Sprintf("/api/customers/%d", customerID)
	if err := c.do(ctx, "update_customer", http.MethodPut, path, token, update, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, token string, customerID int64) error {
	path := fmt.Sprintf("/api/customers/%d", customerID)
	return c.do(ctx, "delete_customer", http.MethodDelete, path, token, nil, nil)
}

func (c *Client) Services(ctx context.Context, token string, customerID int64) ([]domain.Service, error) {
	var services []domain.Service
	path := fmt.Sprintf("/api/customers/%d/services", customerID)
	if err := c.do(ctx, "list_services", http.MethodGet, path, token, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) Invoices(ctx context.Context, token string, customerID int64) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	path := fmt.Sprintf("/api/customers/%d/invoices", customerID)
	if err := c.do(ctx, "list_invoices", http.MethodGet, path, token, nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) Invoice(ctx context.Context, token string, customerID, invoiceID int64) (*domain.Invoice, error) {
	var invoice domain.Invoice
	path := fmt.Sprintf("/api/customers/%d/invoices/%d", customerID, invoiceID)
	if err := c.do(ctx, "get_invoice", http.MethodGet, path, token, nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (c *Client) Payments(ctx context.Context, token string, invoiceID int64) ([]domain.Payment, error) {
	var payments []domain.Payment
	path := fmt.Sprintf("/api/invoices/%d/payments", invoiceID)
	if err := c.do(ctx, "list_payments", http.MethodGet, path, token, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) CreatePayment(ctx context.Context, token string, invoiceID int64, input ports.PaymentInput) (*domain.Payment, error) {
	var payment domain.Payment
	path := fmt.Sprintf("/api/invoices/%d/payments", invoiceID)
	if err := c.do(ctx, "create_payment", http.MethodPost, path, token, input, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) Usage(ctx context.Context, token string, serviceID int64) ([]domain.UsageRecord, error) {
	var usage []domain.UsageRecord
	path := fmt.Sprintf("/api/services/%d/usage", serviceID)
	if err := c.do(ctx, "list_usage", http.MethodGet, path, token, nil, &usage); err != nil {
		return nil, err
	}
	return usage, nil
}

func (c *Client) RecordUsage(ctx context.Context, token string, serviceID int64, input ports.UsageInput) (*domain.UsageRecord, error) {
	var record domain.UsageRecord
	path := fmt.Sprintf("/api/services/%d/usage", serviceID)
	if err := c.do(ctx, "record_usage", http.MethodPost, path, token, input, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
