package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/ports"
)

// BillingHandler passes invoice, payment, and usage operations through to
// the billing API.
type BillingHandler struct {
	records ports.RecordsAPI
}

func NewBillingHandler(records ports.RecordsAPI) *BillingHandler {
	return &BillingHandler{records: records}
}

// Invoices lists a customer's invoices. With ?outstanding=true only the
// not-yet-paid subset is returned.
//
// @Summary      List invoices
// @Tags         billing
// @Produce      json
// @Param        id           path   int     true   "Customer ID"
// @Param        outstanding  query  bool    false  "Only unpaid invoices"
// @Success      200  {array}  domain.Invoice
// @Router       /api/customers/{id}/invoices [get]
func (h *BillingHandler) Invoices(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	customerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	invoices, err := h.records.Invoices(c.Request().Context(), token, customerID)
	if err != nil {
		return err
	}
	if c.QueryParam("outstanding") == "true" {
		invoices = domain.FilterOutstanding(invoices)
	}
	return c.JSON(http.StatusOK, invoices)
}

// Invoice fetches a single invoice.
func (h *BillingHandler) Invoice(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	customerID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	invoiceID, err := pathID(c, "invoiceId")
	if err != nil {
		return err
	}

	invoice, err := h.records.Invoice(c.Request().Context(), token, customerID, invoiceID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

// Payments lists the payments applied to an invoice.
func (h *BillingHandler) Payments(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	invoiceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	payments, err := h.records.Payments(c.Request().Context(), token, invoiceID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

type paymentRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=card bank_transfer cash"`
}

// CreatePayment submits a payment against an invoice.
//
// @Summary      Create payment
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "Invoice ID"
// @Param        body  body  paymentRequest  true  "Payment details"
// @Success      201  {object}  domain.Payment
// @Failure      400  {object}  map[string]string
// @Router       /api/invoices/{id}/payments [post]
func (h *BillingHandler) CreatePayment(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	invoiceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.records.CreatePayment(c.Request().Context(), token, invoiceID, ports.PaymentInput{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payment)
}

// Usage lists metered usage on a service.
func (h *BillingHandler) Usage(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	serviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	usage, err := h.records.Usage(c.Request().Context(), token, serviceID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usage)
}

type usageRequest struct {
	UsageDate   string  `json:"usage_date" validate:"required"`
	UsageAmount float64 `json:"usage_amount" validate:"required,gt=0"`
	Unit        string  `json:"unit" validate:"required"`
}

// RecordUsage appends a usage entry to a service.
func (h *BillingHandler) RecordUsage(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	serviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.records.RecordUsage(c.Request().Context(), token, serviceID, ports.UsageInput{
		UsageDate:   req.UsageDate,
		UsageAmount: req.UsageAmount,
		Unit:        req.Unit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}
