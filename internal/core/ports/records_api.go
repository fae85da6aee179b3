package ports

import (
	"context"

	"github.com/abc-telecom/billing-portal/internal/core/domain"
)

// CustomerUpdate carries the editable customer profile fields.
type CustomerUpdate struct {
	FullName    string `json:"fullName,omitempty"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// PaymentInput is a payment submission against an invoice.
type PaymentInput struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

// UsageInput is a metered usage entry submission.
type UsageInput struct {
	UsageDate   string  `json:"usage_date"`
	UsageAmount float64 `json:"usage_amount"`
	Unit        string  `json:"unit"`
}

// RecordsAPI covers the customer-facing record operations of the billing
// API. Every call attaches the caller's bearer token; the API re-authorizes
// each operation on its side.
type RecordsAPI interface {
	// CurrentCustomer resolves the customer record owned by the calling
	// account. Returns domain.ErrCustomerNotFound when the account has none.
	CurrentCustomer(ctx context.Context, token string) (*domain.Customer, error)

	Customer(ctx context.Context, token string, customerID int64) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, token string, customerID int64, update CustomerUpdate) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, token string, customerID int64) error

	Services(ctx context.Context, token string, customerID int64) ([]domain.Service, error)

	Invoices(ctx context.Context, token string, customerID int64) ([]domain.Invoice, error)
	Invoice(ctx context.Context, token string, customerID, invoiceID int64) (*domain.Invoice, error)

	Payments(ctx context.Context, token string, invoiceID int64) ([]domain.Payment, error)
	CreatePayment(ctx context.Context, token string, invoiceID int64, input PaymentInput) (*domain.Payment, error)

	Usage(ctx context.Context, token string, serviceID int64) ([]domain.UsageRecord, error)
	RecordUsage(ctx context.Context, token string, serviceID int64, input UsageInput) (*domain.UsageRecord, error)
}
