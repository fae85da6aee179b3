package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/abc-telecom/billing-portal/internal/api/metrics"
	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/ports"
	"github.com/abc-telecom/billing-portal/internal/core/session"
)

// DashboardService assembles the landing view from the dependent fetch
// chain user → customer → (services, invoices).
type DashboardService struct {
	records ports.RecordsAPI
	logger  zerolog.Logger
}

func NewDashboardService(records ports.RecordsAPI, logger zerolog.Logger) *DashboardService {
	return &DashboardService{records: records, logger: logger}
}

// DashboardView is the terminal render state of the landing page. Each
// secondary section carries its own availability flag so one failed lookup
// never blanks the rest of the view.
type DashboardView struct {
	Loading bool `json:"loading,omitempty"`

	Profile   *domain.User `json:"profile,omitempty"`
	AdminView bool         `json:"admin_view,omitempty"`

	Customer        *domain.Customer `json:"customer,omitempty"`
	CustomerMissing bool             `json:"customer_missing,omitempty"`

	Services            []domain.Service `json:"services"`
	ServicesUnavailable bool             `json:"services_unavailable,omitempty"`

	Invoices            []domain.Invoice `json:"invoices"`
	InvoicesUnavailable bool             `json:"invoices_unavailable,omitempty"`

	// Outstanding is the not-yet-paid subset of Invoices.
	Outstanding []domain.Invoice `json:"outstanding"`
}

// Load runs the fetch chain for the session:
//
//  1. No user yet → loading view, nothing fetched.
//  2. ADMIN → admin view, no per-customer lookups at all.
//  3. Customer lookup; "no customer record" is an informational state that
//     ends the chain, not an error.
//  4. Services and invoices fetch concurrently and independently; whatever
//     subset succeeds is rendered.
//
// The customer lookup always completes before services/invoices are issued
// (they need its ID). A cancelled ctx discards the assembled result.
func (s *DashboardService) Load(ctx context.Context, snap session.Snapshot) (*DashboardView, error) {
	if snap.User == nil {
		return &DashboardView{Loading: true}, nil
	}

	view := &DashboardView{
		Profile:     snap.User,
		Services:    []domain.Service{},
		Invoices:    []domain.Invoice{},
		Outstanding: []domain.Invoice{},
	}

	if snap.User.IsAdmin() {
		view.AdminView = true
		metrics.DashboardLoadsTotal.WithLabelValues("admin").Inc()
		return view, nil
	}

	customer, err := s.records.CurrentCustomer(ctx, snap.Token)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			s.logger.Debug().Int64("user_id", snap.User.UserID).Msg("no customer record for account")
			view.CustomerMissing = true
			metrics.DashboardLoadsTotal.WithLabelValues("no_customer").Inc()
			return view, nil
		}
		metrics.DashboardLoadsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	view.Customer = customer

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		services, err := s.records.Services(ctx, snap.Token, customer.CustomerID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("customer_id", customer.CustomerID).Msg("services lookup failed")
			view.ServicesUnavailable = true
			return
		}
		view.Services = services
	}()

	go func() {
		defer wg.Done()
		invoices, err := s.records.Invoices(ctx, snap.Token, customer.CustomerID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("customer_id", customer.CustomerID).Msg("invoices lookup failed")
			view.InvoicesUnavailable = true
			return
		}
		view.Invoices = invoices
		view.Outstanding = domain.FilterOutstanding(invoices)
	}()

	wg.Wait()

	// The consumer may have navigated away while the fetches were in
	// flight; drop the result instead of handing it to a dead request.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := "complete"
	if view.ServicesUnavailable || view.InvoicesUnavailable {
		result = "partial"
	}
	metrics.DashboardLoadsTotal.WithLabelValues(result).Inc()

	return view, nil
}
