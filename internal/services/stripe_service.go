package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nxtrix/internal/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// StripeService wraps the payment processor REST API. No call is retried.
type StripeService interface {
	CreateCustomer(ctx context.Context, params CustomerParams) (*StripeCustomer, error)
	AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) error
	SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	CreateSubscription(ctx context.Context, customerID, priceID string, trialEnd int64) (*StripeSubscription, error)
	CreateSetupIntent(ctx context.Context, customerID string) (*StripeSetupIntent, error)
	ConstructEvent(payload []byte, signatureHeader string) (*StripeEvent, error)
}

type CustomerParams struct {
	Email    string
	Name     string
	Metadata map[string]string
}

type StripeCustomer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type StripeSubscription struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Customer string `json:"customer"`
}

type StripeSetupIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Customer     string `json:"customer"`
	Status       string `json:"status"`
}

// StripeEvent is a verified webhook event.
type StripeEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// EventObject holds the fields the webhook consumer reads from data.object.
type EventObject struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Status   string `json:"status"`
}

func (e *StripeEvent) Object() (*EventObject, error) {
	var obj EventObject
	if err := json.Unmarshal(e.Data.Object, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

type stripeErrorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// StripeAPIError carries the processor's message verbatim.
type StripeAPIError struct {
	StatusCode int
	Type       string
	Code       string
	Message    string
}

func (e *StripeAPIError) Error() string {
	return e.Message
}

var (
	ErrMissingSignature = errors.New("missing Stripe-Signature header")
	ErrInvalidSignature = errors.New("webhook signature verification failed")
	ErrSignatureExpired = errors.New("webhook timestamp outside tolerance")
	ErrNoWebhookSecret  = errors.New("webhook signing secret is not configured")
)

const signatureTolerance = 5 * time.Minute

type stripeService struct {
	http          *resty.Client
	webhookSecret string
	logger        *zap.Logger
	now           func() time.Time
}

func NewStripeService(baseURL, secretKey, webhookSecret string, logger *zap.Logger) StripeService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30*time.Second).
		SetAuthToken(secretKey).
		SetHeader("Accept", "application/json")

	return &stripeService{
		http:          client,
		webhookSecret: webhookSecret,
		logger:        logger,
		now:           time.Now,
	}
}

// post sends a form-encoded request and decodes the response into result.
func (s *stripeService) post(ctx context.Context, path string, form url.Values, result any) error {
	var apiErr stripeErrorEnvelope
	resp, err := s.http.R().
		SetContext(ctx).
		SetFormDataFromValues(form).
		SetResult(result).
		SetError(&apiErr).
		Post(path)
	if err != nil {
		s.logger.Error("Stripe API call failed", zap.String("path", path), zap.Error(err))
		return common.NewGatewayError(err)
	}
	if resp.IsError() {
		s.logger.Warn("Stripe API returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("type", apiErr.Error.Type),
			zap.String("code", apiErr.Error.Code),
		)
		message := apiErr.Error.Message
		if message == "" {
			message = fmt.Sprintf("payment processor returned status %d", resp.StatusCode())
		}
		return common.NewGatewayError(&StripeAPIError{
			StatusCode: resp.StatusCode(),
			Type:       apiErr.Error.Type,
			Code:       apiErr.Error.Code,
			Message:    message,
		})
	}
	return nil
}

func (s *stripeService) CreateCustomer(ctx context.Context, params CustomerParams) (*StripeCustomer, error) {
	form := url.Values{}
	form.Set("email", params.Email)
	form.Set("name", params.Name)
	for k, v := range params.Metadata {
		form.Set("metadata["+k+"]", v)
	}

	var customer StripeCustomer
	if err := s.post(ctx, "/customers", form, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *stripeService) AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) error {
	form := url.Values{}
	form.Set("customer", customerID)
	var out map[string]any
	return s.post(ctx, "/payment_methods/"+url.PathEscape(paymentMethodID)+"/attach", form, &out)
}

func (s *stripeService) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	form := url.Values{}
	form.Set("invoice_settings[default_payment_method]", paymentMethodID)
	var out map[string]any
	return s.post(ctx, "/customers/"+url.PathEscape(customerID), form, &out)
}

func (s *stripeService) CreateSubscription(ctx context.Context, customerID, priceID string, trialEnd int64) (*StripeSubscription, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("items[0][price]", priceID)
	form.Set("trial_end", strconv.FormatInt(trialEnd, 10))
	form.Add("expand[]", "latest_invoice.payment_intent")

	var sub StripeSubscription
	if err := s.post(ctx, "/subscriptions", form, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *stripeService) CreateSetupIntent(ctx context.Context, customerID string) (*StripeSetupIntent, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Add("payment_method_types[]", "card")
	form.Set("usage", "off_session")

	var intent StripeSetupIntent
	if err := s.post(ctx, "/setup_intents", form, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// ConstructEvent verifies the Stripe-Signature header and decodes the event.
func (s *stripeService) ConstructEvent(payload []byte, signatureHeader string) (*StripeEvent, error) {
	if err := VerifyStripeSignature(payload, signatureHeader, s.webhookSecret, s.now()); err != nil {
		return nil, err
	}
	var event StripeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}
	return &event, nil
}

// VerifyStripeSignature checks a "t=<unix>,v1=<hex>" header against HMAC-SHA256 of "<t>.<payload>".
// An empty secret rejects every event.
func VerifyStripeSignature(payload []byte, header, secret string, now time.Time) error {
	if secret == "" {
		return ErrNoWebhookSecret
	}
	if header == "" {
		return ErrMissingSignature
	}

	var timestamp string
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "t":
			timestamp = value
		case "v1":
			signatures = append(signatures, value)
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return ErrInvalidSignature
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrInvalidSignature
	}

	expected := SignStripePayload(payload, secret, ts)
	matched := false
	for _, sig := range signatures {
		if hmac.Equal([]byte(sig), []byte(expected)) {
			matched = true
			break
		}
	}
	if !matched {
		return ErrInvalidSignature
	}

	age := now.Sub(time.Unix(ts, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return ErrSignatureExpired
	}
	return nil
}

// SignStripePayload returns the hex v1 signature for payload at timestamp.
func SignStripePayload(payload []byte, secret string, timestamp int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
