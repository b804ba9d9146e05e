package models

// LaunchTrialEnd is the fixed launch date (2025-01-01T00:00:00Z) every
// pre-launch subscription trials until.
const LaunchTrialEnd int64 = 1735689600

// Subscription statuses reported by the payment processor.
const (
	SubscriptionStatusIncomplete        = "incomplete"
	SubscriptionStatusIncompleteExpired = "incomplete_expired"
	SubscriptionStatusTrialing          = "trialing"
	SubscriptionStatusActive            = "active"
	SubscriptionStatusPastDue           = "past_due"
	SubscriptionStatusCanceled          = "canceled"
	SubscriptionStatusUnpaid            = "unpaid"
	SubscriptionStatusPaused            = "paused"
)

func IsKnownSubscriptionStatus(status string) bool {
	switch status {
	case SubscriptionStatusIncomplete, SubscriptionStatusIncompleteExpired, SubscriptionStatusTrialing,
		SubscriptionStatusActive, SubscriptionStatusPastDue, SubscriptionStatusCanceled,
		SubscriptionStatusUnpaid, SubscriptionStatusPaused:
		return true
	}
	return false
}

// CheckoutRequest is the body of the subscription activation endpoint.
type CheckoutRequest struct {
	PaymentMethodID string `json:"payment_method_id"`
	CustomerID      string `json:"customer_id"`
	PriceID         string `json:"price_id"`
}

type SubscriptionResult struct {
	Success        bool   `json:"success"`
	SubscriptionID string `json:"subscription_id"`
	Status         string `json:"status"`
}
