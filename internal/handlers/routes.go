package handlers

import (
	"net/http"

	"nxtrix/internal/middleware"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every handler the server mounts.
type Handlers struct {
	Health    *HealthHandlers
	Auth      *AuthHandlers
	Leads     *LeadHandlers
	Dashboard *DashboardHandlers
	Session   *SessionHandlers
	Export    *ExportHandlers
	Billing   *BillingHandlers
}

// RouteOptions carries the middleware that depends on configuration.
type RouteOptions struct {
	JWT               echo.MiddlewareFunc
	CORSAllowedOrigin string
	APIVersion        string
}

func preflight(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// RegisterRoutes mounts health, billing, docs and the versioned API on e.
func RegisterRoutes(e *echo.Echo, h *Handlers, opts RouteOptions) {
	e.GET("/health", h.Health.HealthCheck)
	e.GET("/health/ready", h.Health.ReadinessCheck)
	e.GET("/health/live", h.Health.LivenessCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", middleware.BillingCORS(opts.CORSAllowedOrigin))
	api.POST("/create-checkout-session", h.Billing.CreateCheckoutSession)
	api.OPTIONS("/create-checkout-session", preflight)
	api.POST("/founders-signup", h.Billing.FoundersSignup)
	api.OPTIONS("/founders-signup", preflight)
	e.POST("/api/webhooks/stripe", h.Billing.StripeWebhook)

	v1 := e.Group("/v1", middleware.APIVersionHeader(opts.APIVersion))
	v1.POST("/auth/login", h.Auth.Login)
	v1.POST("/auth/signup", h.Auth.Signup)
	v1.POST("/auth/refresh", h.Auth.Refresh)

	protected := v1.Group("", opts.JWT, middleware.RequireIdentity())
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.POST("/profile/onboarding", h.Auth.CompleteOnboarding)

	protected.GET("/dashboard", h.Dashboard.GetDashboard)
	protected.POST("/analyzer", h.Dashboard.Analyze)
	protected.POST("/analyzer/leads", h.Dashboard.SaveAnalysis)

	protected.GET("/session", h.Session.GetSession)
	protected.POST("/session/navigate", h.Session.Navigate)
	protected.PUT("/session/modals/:modal", h.Session.OpenModal)
	protected.DELETE("/session/modals/:modal", h.Session.CloseModal)

	sellers := protected.Group("/leads/sellers")
	sellers.GET("", h.Leads.ListSellerLeads)
	sellers.POST("", h.Leads.CreateSellerLead)
	sellers.GET("/:id", h.Leads.GetSellerLead)
	sellers.PUT("/:id", h.Leads.UpdateSellerLead)
	sellers.PATCH("/:id/status", h.Leads.UpdateSellerLeadStatus)
	sellers.DELETE("/:id", h.Leads.DeleteSellerLead)

	buyers := protected.Group("/leads/buyers")
	buyers.GET("", h.Leads.ListBuyerLeads)
	buyers.POST("", h.Leads.CreateBuyerLead)
	buyers.GET("/:id", h.Leads.GetBuyerLead)
	buyers.PUT("/:id", h.Leads.UpdateBuyerLead)
	buyers.PATCH("/:id/status", h.Leads.UpdateBuyerLeadStatus)
	buyers.DELETE("/:id", h.Leads.DeleteBuyerLead)

	protected.POST("/exports/leads", h.Export.ExportLeads)
}
