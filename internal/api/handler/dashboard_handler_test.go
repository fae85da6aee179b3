package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/ports"
	"github.com/abc-telecom/billing-portal/internal/core/service"
)

type stubRecordsAPI struct {
	ports.RecordsAPI

	customer    *domain.Customer
	customerErr error
	services    []domain.Service
	invoices    []domain.Invoice
	invoicesErr error
}

func (s *stubRecordsAPI) CurrentCustomer(_ context.Context, _ string) (*domain.Customer, error) {
	if s.customerErr != nil {
		return nil, s.customerErr
	}
	return s.customer, nil
}

func (s *stubRecordsAPI) Services(_ context.Context, _ string, _ int64) ([]domain.Service, error) {
	return s.services, nil
}

func (s *stubRecordsAPI) Invoices(_ context.Context, _ string, _ int64) ([]domain.Invoice, error) {
	if s.invoicesErr != nil {
		return nil, s.invoicesErr
	}
	return s.invoices, nil
}

func TestDashboardHandler_LoadingWithoutUser(t *testing.T) {
	h := NewDashboardHandler(service.NewDashboardService(&stubRecordsAPI{}, zerolog.Nop()))

	c, rec, store := newContext(t, http.MethodGet, "/api/dashboard", "")
	store.SetToken(context.Background(), "tok-1")

	if err := h.Load(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["loading"] != true {
		t.Fatalf("loading = %v, want true", resp["loading"])
	}
}

func TestDashboardHandler_FullView(t *testing.T) {
	records := &stubRecordsAPI{
		customer: &domain.Customer{CustomerID: 10, FullName: "Alice"},
		services: []domain.Service{{ServiceID: 1, CustomerID: 10}},
		invoices: []domain.Invoice{
			{InvoiceID: 1, Status: "Paid"},
			{InvoiceID: 2, Status: "pending"},
		},
	}
	h := NewDashboardHandler(service.NewDashboardService(records, zerolog.Nop()))

	c, rec, store := newContext(t, http.MethodGet, "/api/dashboard", "")
	store.SetToken(context.Background(), "tok-1")
	store.SetUser(&domain.User{UserID: 1, Username: "alice", Role: domain.RoleCustomer})

	if err := h.Load(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var view service.DashboardView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if view.Customer == nil || view.Customer.CustomerID != 10 {
		t.Fatalf("customer = %+v", view.Customer)
	}
	if len(view.Outstanding) != 1 || view.Outstanding[0].InvoiceID != 2 {
		t.Fatalf("outstanding = %+v, want only invoice 2", view.Outstanding)
	}
}
