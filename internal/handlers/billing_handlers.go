package handlers

import (
	"io"
	"net/http"

	"nxtrix/internal/common"
	"nxtrix/internal/models"
	"nxtrix/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BillingHandlers serves the public marketing-site billing endpoints. Failures use the flat
// {"error": "..."} body the site expects.
type BillingHandlers struct {
	billingService services.BillingService
	stripeService  services.StripeService
	logger         *zap.Logger
}

func NewBillingHandlers(billingService services.BillingService, stripeService services.StripeService, logger *zap.Logger) *BillingHandlers {
	return &BillingHandlers{
		billingService: billingService,
		stripeService:  stripeService,
		logger:         logger,
	}
}

func billingError(c echo.Context, err error) error {
	return c.JSON(common.HTTPStatus(err), map[string]string{"error": err.Error()})
}

// CreateCheckoutSession handles POST /api/create-checkout-session
func (h *BillingHandlers) CreateCheckoutSession(c echo.Context) error {
	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	result, err := h.billingService.CreateSubscription(c.Request().Context(), req)
	if err != nil {
		h.logger.Warn("Checkout failed", zap.String("customer_id", req.CustomerID), zap.Error(err))
		return billingError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// FoundersSignup handles POST /api/founders-signup
func (h *BillingHandlers) FoundersSignup(c echo.Context) error {
	var req models.FounderSignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	result, err := h.billingService.RegisterFounder(c.Request().Context(), req)
	if err != nil {
		h.logger.Warn("Founder signup failed", zap.String("email", req.Email), zap.Error(err))
		return billingError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// StripeWebhook handles POST /api/webhooks/stripe
func (h *BillingHandlers) StripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to read request body"})
	}

	event, err := h.stripeService.ConstructEvent(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		h.logger.Warn("Rejected webhook", zap.Error(err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.billingService.HandleWebhookEvent(c.Request().Context(), event); err != nil {
		h.logger.Error("Webhook handling failed", zap.String("event_id", event.ID), zap.String("type", event.Type), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Webhook processing failed"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
