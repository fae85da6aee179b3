package domain

import "strings"

// The billing API owns these records; the portal only holds transient,
// non-authoritative copies for display and pass-through edits.

// Customer is the billing profile attached to a portal user.
type Customer struct {
	CustomerID  int64  `json:"customerId"`
	UserID      int64  `json:"userId"`
	FullName    string `json:"fullName"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

// Service is a subscribed line or product on a customer account.
type Service struct {
	ServiceID   int64  `json:"serviceId"`
	CustomerID  int64  `json:"customerId"`
	ServiceType string `json:"serviceType"`
	StartDate   string `json:"startDate,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Invoice is a billing period statement.
type Invoice struct {
	InvoiceID          int64   `json:"invoiceId"`
	CustomerID         int64   `json:"customerId"`
	BillingPeriodStart string  `json:"billingPeriodStart,omitempty"`
	BillingPeriodEnd   string  `json:"billingPeriodEnd,omitempty"`
	TotalAmount        float64 `json:"totalAmount"`
	Status             string  `json:"status"`
}

// invoiceStatusPaid is the settled-status token; the comparison is
// case-insensitive because the API has emitted both "Paid" and "paid".
const invoiceStatusPaid = "paid"

// Outstanding reports whether the invoice still needs payment.
func (i Invoice) Outstanding() bool {
	return !strings.EqualFold(i.Status, invoiceStatusPaid)
}

// FilterOutstanding returns the invoices that are not yet paid, preserving
// order. A nil slice in yields an empty slice out.
func FilterOutstanding(invoices []Invoice) []Invoice {
	out := make([]Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Outstanding() {
			out = append(out, inv)
		}
	}
	return out
}

// Payment records money applied to an invoice.
type Payment struct {
	PaymentID     int64   `json:"paymentId"`
	InvoiceID     int64   `json:"invoiceId"`
	PaymentDate   string  `json:"paymentDate,omitempty"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// UsageRecord is a metered usage entry on a service.
type UsageRecord struct {
	UsageID     int64   `json:"usageId"`
	ServiceID   int64   `json:"serviceId"`
	UsageDate   string  `json:"usageDate"`
	UsageAmount float64 `json:"usageAmount"`
	Unit        string  `json:"unit"`
}

// AccountUser is the full user record as the admin back-office sees it.
type AccountUser struct {
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}
