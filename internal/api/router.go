package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/abc-telecom/billing-portal/internal/api/handler"
	"github.com/abc-telecom/billing-portal/internal/api/middleware"
	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/service"
	"github.com/abc-telecom/billing-portal/internal/core/session"
	"github.com/abc-telecom/billing-portal/internal/infrastructure/upstream"
	"github.com/abc-telecom/billing-portal/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	cfg *config.Config,
	rdb *redis.Client,
	billing *upstream.Client,
	sessions *session.Manager,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))
	e.Use(middleware.Session(sessions, cfg.Session.CookieName))

	// --- Services ---
	portalService := service.NewPortalService(billing, log)
	adminService := service.NewAdminService(billing, log)
	dashboardService := service.NewDashboardService(billing, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(portalService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	customerHandler := handler.NewCustomerHandler(billing)
	billingHandler := handler.NewBillingHandler(billing)
	adminHandler := handler.NewAdminHandler(adminService)

	// --- Public routes ---
	loginLimit := middleware.LoginRateLimit(cfg.Login.RatePerSecond, cfg.Login.Burst)
	e.POST("/api/login", authHandler.Login, loginLimit)
	e.POST("/api/register", authHandler.Register, loginLimit)
	e.POST("/api/logout", authHandler.Logout)
	e.GET("/api/session", authHandler.Session)

	// --- Authenticated routes ---
	portal := e.Group("/api", middleware.Gate())
	portal.GET("/dashboard", dashboardHandler.Load)

	portal.GET("/customers/me", customerHandler.Me)
	portal.GET("/customers/:id", customerHandler.Get)
	portal.PUT("/customers/:id", customerHandler.Update)
	portal.DELETE("/customers/:id", customerHandler.Delete)
	portal.GET("/customers/:id/services", customerHandler.Services)

	portal.GET("/customers/:id/invoices", billingHandler.Invoices)
	portal.GET("/customers/:id/invoices/:invoiceId", billingHandler.Invoice)
	portal.GET("/invoices/:id/payments", billingHandler.Payments)
	portal.POST("/invoices/:id/payments", billingHandler.CreatePayment)
	portal.GET("/services/:id/usage", billingHandler.Usage)
	portal.POST("/services/:id/usage", billingHandler.RecordUsage)

	// --- Back-office routes (ADMIN only) ---
	admin := e.Group("/api/admin", middleware.GateRole(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.CreateUser)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.PUT("/users/:id/password", adminHandler.SetUserPassword)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/customers", adminHandler.ListCustomers)
	admin.POST("/customers", adminHandler.CreateCustomer)
	admin.PUT("/customers/:id", adminHandler.UpdateCustomer)
	admin.DELETE("/customers/:id", adminHandler.DeleteCustomer)
	admin.GET("/customers/:customerId/services", adminHandler.ListCustomerServices)
	admin.POST("/customers/:customerId/services", adminHandler.CreateService)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb, billing)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
