package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abc-telecom/billing-portal/internal/core/ports"
)

// CustomerHandler passes customer profile operations through to the billing
// API with the session's bearer token attached. Ownership checks happen
// upstream; the portal adds no business rules here.
type CustomerHandler struct {
	records ports.RecordsAPI
}

func NewCustomerHandler(records ports.RecordsAPI) *CustomerHandler {
	return &CustomerHandler{records: records}
}

// Me resolves the customer record owned by the current account. A missing
// record answers 404 with an informational message, not an error banner.
//
// @Summary      Own customer profile
// @Tags         customers
// @Produce      json
// @Success      200  {object}  domain.Customer
// @Failure      404  {object}  map[string]string
// @Router       /api/customers/me [get]
func (h *CustomerHandler) Me(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	customer, err := h.records.CurrentCustomer(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Get fetches a customer record by ID.
func (h *CustomerHandler) Get(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.records.Customer(c.Request().Context(), token, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Update edits the customer profile fields.
func (h *CustomerHandler) Update(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ports.CustomerUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	customer, err := h.records.UpdateCustomer(c.Request().Context(), token, id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete removes the customer profile. The page layer logs the user out
// afterwards; the session itself is untouched here.
func (h *CustomerHandler) Delete(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.records.DeleteCustomer(c.Request().Context(), token, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Services lists the services on a customer account.
func (h *CustomerHandler) Services(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	services, err := h.records.Services(c.Request().Context(), token, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}
