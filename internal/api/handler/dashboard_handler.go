package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abc-telecom/billing-portal/internal/core/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Load assembles the landing view for the current session.
//
// @Summary      Dashboard data
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  service.DashboardView
// @Failure      502  {object}  map[string]string
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Load(c echo.Context) error {
	store, err := sessionStore(c)
	if err != nil {
		return err
	}

	view, err := h.dashboard.Load(c.Request().Context(), store.Snapshot())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
