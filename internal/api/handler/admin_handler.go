package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abc-telecom/billing-portal/internal/core/ports"
	"github.com/abc-telecom/billing-portal/internal/core/service"
)

// AdminHandler exposes the back-office operations. Routes are wired behind
// the ADMIN role gate; the billing API re-checks the role on every call.
type AdminHandler struct {
	admin *service.AdminService
}

func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	users, err := h.admin.ListUsers(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) GetUser(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.admin.GetUser(c.Request().Context(), token, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

type adminUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
	Role     string `json:"role" validate:"omitempty,oneof=CUSTOMER SUPPORT ADMIN"`
}

func (h *AdminHandler) CreateUser(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	var req adminUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.admin.CreateUser(c.Request().Context(), token, ports.AdminUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *AdminHandler) UpdateUser(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req adminUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.admin.UpdateUser(c.Request().Context(), token, id, ports.AdminUserInput{
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

type passwordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AdminHandler) SetUserPassword(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req passwordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.admin.SetUserPassword(c.Request().Context(), token, id, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteUser removes an account. Deleting the administrator's own account
// is rejected before any upstream call.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var actorID int64
	if user := store.User(); user != nil {
		actorID = user.UserID
	}

	if err := h.admin.DeleteUser(c.Request().Context(), token, actorID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) ListCustomers(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	customers, err := h.admin.ListCustomers(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

type adminCustomerRequest struct {
	UserID      int64  `json:"user_id"`
	FullName    string `json:"fullName"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

func (h *AdminHandler) CreateCustomer(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	var req adminCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	customer, err := h.admin.CreateCustomer(c.Request().Context(), token, ports.AdminCustomerInput{
		UserID:      req.UserID,
		FullName:    req.FullName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customer)
}

func (h *AdminHandler) UpdateCustomer(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req adminCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	customer, err := h.admin.UpdateCustomer(c.Request().Context(), token, id, ports.AdminCustomerInput{
		FullName:    req.FullName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *AdminHandler) DeleteCustomer(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.admin.DeleteCustomer(c.Request().Context(), token, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type adminServiceRequest struct {
	ServiceType string `json:"serviceType" validate:"required"`
	StartDate   string `json:"startDate"`
	Status      string `json:"status"`
}

func (h *AdminHandler) CreateService(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return err
	}

	var req adminServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.admin.CreateService(c.Request().Context(), token, customerID, ports.AdminServiceInput{
		ServiceType: req.ServiceType,
		StartDate:   req.StartDate,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

func (h *AdminHandler) ListCustomerServices(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return err
	}
	services, err := h.admin.ListCustomerServices(c.Request().Context(), token, customerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}
