package handlers

import (
	"context"
	"io"
	"time"

	"nxtrix/internal/analytics"
	"nxtrix/internal/models"
	"nxtrix/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) ListSellerLeads(ctx context.Context, userID uuid.UUID) ([]*models.SellerLead, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SellerLead), args.Error(1)
}

func (m *MockLeadService) GetSellerLead(ctx context.Context, userID, id uuid.UUID) (*models.SellerLead, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SellerLead), args.Error(1)
}

func (m *MockLeadService) CreateSellerLead(ctx context.Context, userID uuid.UUID, input models.SellerLeadInput) (*models.SellerLead, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SellerLead), args.Error(1)
}

func (m *MockLeadService) UpdateSellerLead(ctx context.Context, userID, id uuid.UUID, input models.SellerLeadInput) (*models.SellerLead, error) {
	args := m.Called(ctx, userID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SellerLead), args.Error(1)
}

func (m *MockLeadService) UpdateSellerLeadStatus(ctx context.Context, userID, id uuid.UUID, status string) error {
	return m.Called(ctx, userID, id, status).Error(0)
}

func (m *MockLeadService) DeleteSellerLead(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockLeadService) SaveAnalysisAsLead(ctx context.Context, userID uuid.UUID, propertyAddress string, analysis *analytics.DealAnalysis) (*models.SellerLead, error) {
	args := m.Called(ctx, userID, propertyAddress, analysis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SellerLead), args.Error(1)
}

func (m *MockLeadService) ListBuyerLeads(ctx context.Context, userID uuid.UUID) ([]*models.BuyerLead, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BuyerLead), args.Error(1)
}

func (m *MockLeadService) GetBuyerLead(ctx context.Context, userID, id uuid.UUID) (*models.BuyerLead, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BuyerLead), args.Error(1)
}

func (m *MockLeadService) CreateBuyerLead(ctx context.Context, userID uuid.UUID, input models.BuyerLeadInput) (*models.BuyerLead, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BuyerLead), args.Error(1)
}

func (m *MockLeadService) UpdateBuyerLead(ctx context.Context, userID, id uuid.UUID, input models.BuyerLeadInput) (*models.BuyerLead, error) {
	args := m.Called(ctx, userID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BuyerLead), args.Error(1)
}

func (m *MockLeadService) UpdateBuyerLeadStatus(ctx context.Context, userID, id uuid.UUID, status string) error {
	return m.Called(ctx, userID, id, status).Error(0)
}

func (m *MockLeadService) DeleteBuyerLead(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockLeadService) HasLeads(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) CreateSubscription(ctx context.Context, req models.CheckoutRequest) (*models.SubscriptionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionResult), args.Error(1)
}

func (m *MockBillingService) RegisterFounder(ctx context.Context, req models.FounderSignupRequest) (*models.FounderSignupResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FounderSignupResult), args.Error(1)
}

func (m *MockBillingService) HandleWebhookEvent(ctx context.Context, event *services.StripeEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (*services.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResult), args.Error(1)
}

func (m *MockAuthService) SignUp(ctx context.Context, email, password, fullName string) (*services.AuthResult, error) {
	args := m.Called(ctx, email, password, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResult), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*services.AuthResult, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResult), args.Error(1)
}

func (m *MockAuthService) CurrentIdentity(ctx context.Context, accessToken string) (*models.Identity, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Identity), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) ResolveProfile(ctx context.Context, identity models.Identity, fallbackFullName string) (*models.Profile, error) {
	args := m.Called(ctx, identity, fallbackFullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) NeedsOnboarding(profile *models.Profile, hasExistingLeads bool) bool {
	return m.Called(profile, hasExistingLeads).Bool(0)
}

func (m *MockProfileService) CompleteOnboarding(ctx context.Context, userID uuid.UUID, answers models.OnboardingAnswers) error {
	return m.Called(ctx, userID, answers).Error(0)
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakeMinio struct {
	pingErr error
}

func (f fakeMinio) UploadObject(context.Context, string, string, io.Reader, int64, string) error {
	return nil
}

func (f fakeMinio) GetPresignedURL(context.Context, string, string, time.Duration) (string, error) {
	return "", nil
}

func (f fakeMinio) EnsureBucketExists(context.Context, string) error { return nil }

func (f fakeMinio) Ping(context.Context, string) error { return f.pingErr }
