package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"nxtrix/internal/common"
	"nxtrix/internal/config"
	"nxtrix/internal/models"
	"nxtrix/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const founderSignupMessage = "Founders spot reserved successfully!"

type BillingService interface {
	CreateSubscription(ctx context.Context, req models.CheckoutRequest) (*models.SubscriptionResult, error)
	RegisterFounder(ctx context.Context, req models.FounderSignupRequest) (*models.FounderSignupResult, error)
	HandleWebhookEvent(ctx context.Context, event *StripeEvent) error
}

type billingService struct {
	stripe      StripeService
	founderRepo repositories.FounderCustomerRepository
	prices      config.PriceTable
	siteURL     string
	logger      *zap.Logger
}

func NewBillingService(stripe StripeService, founderRepo repositories.FounderCustomerRepository, prices config.PriceTable, siteURL string, logger *zap.Logger) BillingService {
	return &billingService{
		stripe:      stripe,
		founderRepo: founderRepo,
		prices:      prices,
		siteURL:     strings.TrimRight(siteURL, "/"),
		logger:      logger,
	}
}

// CreateSubscription attaches the card, makes it the default and starts a subscription that
// trials until launch day.
func (s *billingService) CreateSubscription(ctx context.Context, req models.CheckoutRequest) (*models.SubscriptionResult, error) {
	if err := common.ValidateRequiredString(req.PaymentMethodID, "payment_method_id"); err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(req.CustomerID, "customer_id"); err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(req.PriceID, "price_id"); err != nil {
		return nil, err
	}

	if err := s.stripe.AttachPaymentMethod(ctx, req.PaymentMethodID, req.CustomerID); err != nil {
		return nil, err
	}
	if err := s.stripe.SetDefaultPaymentMethod(ctx, req.CustomerID, req.PaymentMethodID); err != nil {
		return nil, err
	}
	sub, err := s.stripe.CreateSubscription(ctx, req.CustomerID, req.PriceID, models.LaunchTrialEnd)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Subscription created",
		zap.String("customer_id", req.CustomerID),
		zap.String("subscription_id", sub.ID),
		zap.String("status", sub.Status),
	)
	if !models.IsKnownSubscriptionStatus(sub.Status) {
		s.logger.Warn("Unrecognized subscription status", zap.String("status", sub.Status))
	}

	return &models.SubscriptionResult{
		Success:        true,
		SubscriptionID: sub.ID,
		Status:         sub.Status,
	}, nil
}

// RegisterFounder reserves a founder spot. Plan and email checks run before any processor call.
func (s *billingService) RegisterFounder(ctx context.Context, req models.FounderSignupRequest) (*models.FounderSignupResult, error) {
	if req.Plan == "" {
		req.Plan = models.PlanTeam
	}
	if req.Billing == "" {
		req.Billing = models.BillingMonthly
	}

	priceID := s.prices.Lookup(req.Plan, req.Billing)
	if priceID == "" {
		return nil, common.NewValidationError("", "Invalid plan or billing cycle")
	}
	if err := common.ValidateRequiredString(req.Email, "email"); err != nil {
		return nil, err
	}

	exists, err := s.founderRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, common.NewGatewayError(err)
	}
	if exists {
		return nil, common.NewConflictError("Email already registered")
	}

	customer, err := s.stripe.CreateCustomer(ctx, CustomerParams{
		Email: req.Email,
		Name:  req.Name,
		Metadata: map[string]string{
			"company":       req.Company,
			"investor_type": req.InvestorType,
			"experience":    req.Experience,
		},
	})
	if err != nil {
		return nil, err
	}

	intent, err := s.stripe.CreateSetupIntent(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	founder := &models.FounderCustomer{
		ID:               uuid.New(),
		Email:            req.Email,
		Name:             req.Name,
		Company:          req.Company,
		InvestorType:     req.InvestorType,
		Experience:       req.Experience,
		Plan:             req.Plan,
		BillingCycle:     req.Billing,
		StripeCustomerID: customer.ID,
		SetupIntentID:    intent.ID,
		Status:           models.FounderStatusPendingPayment,
		PriceID:          priceID,
	}
	if err := s.founderRepo.Create(ctx, founder); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			// Lost a race with a concurrent registration for the same email.
			s.logger.Warn("Founder email registered concurrently; processor customer is orphaned",
				zap.String("stripe_customer_id", customer.ID))
			return nil, common.NewConflictError("Email already registered")
		}
		return nil, common.NewGatewayError(err)
	}

	s.logger.Info("Founder spot reserved",
		zap.String("stripe_customer_id", customer.ID),
		zap.String("plan", req.Plan),
		zap.String("billing", req.Billing),
	)

	return &models.FounderSignupResult{
		Success:      true,
		Message:      founderSignupMessage,
		CustomerID:   customer.ID,
		ClientSecret: intent.ClientSecret,
		RedirectURL:  s.redirectURL(req.Plan, req.Billing),
	}, nil
}

func (s *billingService) redirectURL(plan, billing string) string {
	q := url.Values{}
	q.Set("type", "founders")
	q.Set("tier", plan)
	q.Set("billing", billing)
	return fmt.Sprintf("%s/success.html?%s", s.siteURL, encodeOrdered(q, "type", "tier", "billing"))
}

func encodeOrdered(q url.Values, keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(q.Get(k)))
	}
	return strings.Join(parts, "&")
}

// HandleWebhookEvent moves the founder record matching the event's customer to its new status.
// Events that do not map to a status are ignored.
func (s *billingService) HandleWebhookEvent(ctx context.Context, event *StripeEvent) error {
	obj, err := event.Object()
	if err != nil {
		return common.NewValidationError("data.object", "malformed event object")
	}

	status, ok := founderStatusForEvent(event.Type, obj.Status)
	if !ok || obj.Customer == "" {
		s.logger.Debug("Ignoring webhook event", zap.String("type", event.Type), zap.String("event_id", event.ID))
		return nil
	}

	err = s.founderRepo.UpdateStatusByStripeCustomerID(ctx, obj.Customer, status)
	if errors.Is(err, repositories.ErrNotFound) {
		// Subscriptions created outside the founder flow have no founder record.
		s.logger.Info("No founder record for customer", zap.String("stripe_customer_id", obj.Customer), zap.String("type", event.Type))
		return nil
	}
	if err != nil {
		return common.NewStoreError("update founder status", err)
	}

	s.logger.Info("Founder status updated",
		zap.String("stripe_customer_id", obj.Customer),
		zap.String("status", string(status)),
		zap.String("event_id", event.ID),
	)
	return nil
}

func founderStatusForEvent(eventType, objectStatus string) (models.FounderStatus, bool) {
	switch eventType {
	case "setup_intent.succeeded":
		return models.FounderStatusPaymentMethodSaved, true
	case "setup_intent.setup_failed":
		return models.FounderStatusPaymentFailed, true
	case "customer.subscription.created", "customer.subscription.updated":
		if objectStatus == models.SubscriptionStatusActive || objectStatus == models.SubscriptionStatusTrialing {
			return models.FounderStatusActive, true
		}
	case "customer.subscription.deleted":
		return models.FounderStatusCanceled, true
	}
	return "", false
}
