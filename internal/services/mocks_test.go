package services

import (
	"context"
	"io"
	"time"

	"nxtrix/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSellerLeadRepository struct {
	mock.Mock
}

func (m *MockSellerLeadRepository) Create(ctx context.Context, lead *models.SellerLead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockSellerLeadRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.SellerLead, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SellerLead), args.Error(1)
}

func (m *MockSellerLeadRepository) Update(ctx context.Context, lead *models.SellerLead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockSellerLeadRepository) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.SellerStatus) error {
	args := m.Called(ctx, userID, id, status)
	return args.Error(0)
}

func (m *MockSellerLeadRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockSellerLeadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SellerLead, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SellerLead), args.Error(1)
}

func (m *MockSellerLeadRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type MockBuyerLeadRepository struct {
	mock.Mock
}

func (m *MockBuyerLeadRepository) Create(ctx context.Context, lead *models.BuyerLead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockBuyerLeadRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.BuyerLead, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BuyerLead), args.Error(1)
}

func (m *MockBuyerLeadRepository) Update(ctx context.Context, lead *models.BuyerLead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockBuyerLeadRepository) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.BuyerStatus) error {
	args := m.Called(ctx, userID, id, status)
	return args.Error(0)
}

func (m *MockBuyerLeadRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockBuyerLeadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.BuyerLead, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BuyerLead), args.Error(1)
}

func (m *MockBuyerLeadRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateOnboarding(ctx context.Context, id uuid.UUID, answers models.OnboardingAnswers) error {
	args := m.Called(ctx, id, answers)
	return args.Error(0)
}

type MockFounderCustomerRepository struct {
	mock.Mock
}

func (m *MockFounderCustomerRepository) Create(ctx context.Context, founder *models.FounderCustomer) error {
	args := m.Called(ctx, founder)
	return args.Error(0)
}

func (m *MockFounderCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockFounderCustomerRepository) GetByStripeCustomerID(ctx context.Context, customerID string) (*models.FounderCustomer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FounderCustomer), args.Error(1)
}

func (m *MockFounderCustomerRepository) UpdateStatusByStripeCustomerID(ctx context.Context, customerID string, status models.FounderStatus) error {
	args := m.Called(ctx, customerID, status)
	return args.Error(0)
}

type MockStripeService struct {
	mock.Mock
}

func (m *MockStripeService) CreateCustomer(ctx context.Context, params CustomerParams) (*StripeCustomer, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StripeCustomer), args.Error(1)
}

func (m *MockStripeService) AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) error {
	args := m.Called(ctx, paymentMethodID, customerID)
	return args.Error(0)
}

func (m *MockStripeService) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	args := m.Called(ctx, customerID, paymentMethodID)
	return args.Error(0)
}

func (m *MockStripeService) CreateSubscription(ctx context.Context, customerID, priceID string, trialEnd int64) (*StripeSubscription, error) {
	args := m.Called(ctx, customerID, priceID, trialEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StripeSubscription), args.Error(1)
}

func (m *MockStripeService) CreateSetupIntent(ctx context.Context, customerID string) (*StripeSetupIntent, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StripeSetupIntent), args.Error(1)
}

func (m *MockStripeService) ConstructEvent(payload []byte, signatureHeader string) (*StripeEvent, error) {
	args := m.Called(payload, signatureHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StripeEvent), args.Error(1)
}

type MockMinioService struct {
	mock.Mock
}

func (m *MockMinioService) UploadObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, contentType string) error {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, contentType)
	return args.Error(0)
}

func (m *MockMinioService) GetPresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockMinioService) EnsureBucketExists(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}

func (m *MockMinioService) Ping(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}

func float64Ptr(f float64) *float64 { return &f }
