package models

import (
	"time"

	"github.com/google/uuid"
)

type FounderStatus string

const (
	FounderStatusPendingPayment     FounderStatus = "pending_payment"
	FounderStatusPaymentMethodSaved FounderStatus = "payment_method_saved"
	FounderStatusPaymentFailed      FounderStatus = "payment_failed"
	FounderStatusActive             FounderStatus = "active"
	FounderStatusCanceled           FounderStatus = "canceled"
)

const (
	PlanSolo     = "solo"
	PlanTeam     = "team"
	PlanBusiness = "business"

	BillingMonthly = "monthly"
	BillingAnnual  = "annual"
)

// FounderCustomer is a pre-launch billing registrant.
type FounderCustomer struct {
	ID               uuid.UUID     `json:"id" db:"id"`
	Email            string        `json:"email" db:"email"`
	Name             string        `json:"name" db:"name"`
	Company          string        `json:"company" db:"company"`
	InvestorType     string        `json:"investor_type" db:"investor_type"`
	Experience       string        `json:"experience" db:"experience"`
	Plan             string        `json:"plan" db:"plan"`
	BillingCycle     string        `json:"billing_cycle" db:"billing_cycle"`
	StripeCustomerID string        `json:"stripe_customer_id" db:"stripe_customer_id"`
	SetupIntentID    string        `json:"setup_intent_id" db:"setup_intent_id"`
	Status           FounderStatus `json:"status" db:"status"`
	PriceID          string        `json:"price_id" db:"price_id"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}

// FounderSignupRequest is the body of the founder pre-signup endpoint.
type FounderSignupRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Company      string `json:"company"`
	InvestorType string `json:"investor_type"`
	Experience   string `json:"experience"`
	Plan         string `json:"plan"`
	Billing      string `json:"billing"`
}

type FounderSignupResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	CustomerID   string `json:"customer_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURL  string `json:"redirect_url"`
}
