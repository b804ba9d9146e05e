package services

import (
	"context"
	"errors"
	"strings"

	"nxtrix/internal/analytics"
	"nxtrix/internal/common"
	"nxtrix/internal/models"
	"nxtrix/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LeadService is the single place seller and buyer leads are validated and defaulted.
// Every operation is scoped to the calling user.
type LeadService interface {
	ListSellerLeads(ctx context.Context, userID uuid.UUID) ([]*models.SellerLead, error)
	GetSellerLead(ctx context.Context, userID, id uuid.UUID) (*models.SellerLead, error)
	CreateSellerLead(ctx context.Context, userID uuid.UUID, input models.SellerLeadInput) (*models.SellerLead, error)
	UpdateSellerLead(ctx context.Context, userID, id uuid.UUID, input models.SellerLeadInput) (*models.SellerLead, error)
	UpdateSellerLeadStatus(ctx context.Context, userID, id uuid.UUID, status string) error
	DeleteSellerLead(ctx context.Context, userID, id uuid.UUID) error
	SaveAnalysisAsLead(ctx context.Context, userID uuid.UUID, propertyAddress string, analysis *analytics.DealAnalysis) (*models.SellerLead, error)

	ListBuyerLeads(ctx context.Context, userID uuid.UUID) ([]*models.BuyerLead, error)
	GetBuyerLead(ctx context.Context, userID, id uuid.UUID) (*models.BuyerLead, error)
	CreateBuyerLead(ctx context.Context, userID uuid.UUID, input models.BuyerLeadInput) (*models.BuyerLead, error)
	UpdateBuyerLead(ctx context.Context, userID, id uuid.UUID, input models.BuyerLeadInput) (*models.BuyerLead, error)
	UpdateBuyerLeadStatus(ctx context.Context, userID, id uuid.UUID, status string) error
	DeleteBuyerLead(ctx context.Context, userID, id uuid.UUID) error

	HasLeads(ctx context.Context, userID uuid.UUID) (bool, error)
}

type leadService struct {
	sellerRepo repositories.SellerLeadRepository
	buyerRepo  repositories.BuyerLeadRepository
	logger     *zap.Logger
}

func NewLeadService(sellerRepo repositories.SellerLeadRepository, buyerRepo repositories.BuyerLeadRepository, logger *zap.Logger) LeadService {
	return &leadService{
		sellerRepo: sellerRepo,
		buyerRepo:  buyerRepo,
		logger:     logger,
	}
}

func storeError(operation string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return common.NewNotFoundError("lead")
	}
	return common.NewStoreError(operation, err)
}

// buildSellerLead validates input and applies the seller defaults.
func buildSellerLead(input models.SellerLeadInput) (*models.SellerLead, error) {
	if err := common.ValidateRequiredString(input.PropertyAddress, "property_address"); err != nil {
		return nil, err
	}
	if input.ARV == nil || *input.ARV <= 0 {
		return nil, common.NewValidationError("arv", "arv must be greater than zero")
	}
	for field, v := range map[string]*float64{
		"asking_price": input.AskingPrice,
		"repair_costs": input.RepairCosts,
	} {
		if err := common.ValidateNonNegative(v, field); err != nil {
			return nil, err
		}
	}

	status := models.SellerStatusNew
	if input.Status != "" {
		status = models.SellerStatus(input.Status)
		if !status.Valid() {
			return nil, common.NewValidationError("status", "unknown seller status: "+input.Status)
		}
	}

	source := strings.TrimSpace(input.Source)
	if source == "" {
		source = models.SourceManual
	}

	buyerROI := input.BuyerROI
	if buyerROI == nil {
		cost := common.SafeFloat64(input.AskingPrice) + common.SafeFloat64(input.RepairCosts)
		if cost > 0 {
			buyerROI = common.Float64Ptr((*input.ARV - cost) / cost * 100)
		}
	}

	return &models.SellerLead{
		PropertyAddress: strings.TrimSpace(input.PropertyAddress),
		SellerName:      strings.TrimSpace(input.SellerName),
		SellerPhone:     strings.TrimSpace(input.SellerPhone),
		SellerEmail:     strings.TrimSpace(input.SellerEmail),
		AskingPrice:     input.AskingPrice,
		ARV:             input.ARV,
		RepairCosts:     input.RepairCosts,
		BuyerROI:        buyerROI,
		Status:          status,
		Notes:           input.Notes,
		Source:          source,
	}, nil
}

func (s *leadService) ListSellerLeads(ctx context.Context, userID uuid.UUID) ([]*models.SellerLead, error) {
	leads, err := s.sellerRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.NewStoreError("list seller leads", err)
	}
	return leads, nil
}

func (s *leadService) GetSellerLead(ctx context.Context, userID, id uuid.UUID) (*models.SellerLead, error) {
	lead, err := s.sellerRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, storeError("load seller lead", err)
	}
	return lead, nil
}

func (s *leadService) CreateSellerLead(ctx context.Context, userID uuid.UUID, input models.SellerLeadInput) (*models.SellerLead, error) {
	lead, err := buildSellerLead(input)
	if err != nil {
		return nil, err
	}
	lead.ID = uuid.New()
	lead.UserID = userID

	if err := s.sellerRepo.Create(ctx, lead); err != nil {
		s.logger.Error("Failed to create seller lead", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, common.NewStoreError("create seller lead", err)
	}
	return lead, nil
}

func (s *leadService) UpdateSellerLead(ctx context.Context, userID, id uuid.UUID, input models.SellerLeadInput) (*models.SellerLead, error) {
	existing, err := s.sellerRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, storeError("load seller lead", err)
	}

	lead, err := buildSellerLead(input)
	if err != nil {
		return nil, err
	}
	lead.ID = existing.ID
	lead.UserID = existing.UserID
	lead.CreatedAt = existing.CreatedAt

	if err := s.sellerRepo.Update(ctx, lead); err != nil {
		return nil, storeError("update seller lead", err)
	}
	return lead, nil
}

func (s *leadService) UpdateSellerLeadStatus(ctx context.Context, userID, id uuid.UUID, status string) error {
	st := models.SellerStatus(status)
	if !st.Valid() {
		return common.NewValidationError("status", "unknown seller status: "+status)
	}
	if err := s.sellerRepo.UpdateStatus(ctx, userID, id, st); err != nil {
		return storeError("update seller lead status", err)
	}
	return nil
}

func (s *leadService) DeleteSellerLead(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.sellerRepo.Delete(ctx, userID, id); err != nil {
		return storeError("delete seller lead", err)
	}
	return nil
}

// SaveAnalysisAsLead stores a Deal Analyzer result as a new seller lead.
func (s *leadService) SaveAnalysisAsLead(ctx context.Context, userID uuid.UUID, propertyAddress string, analysis *analytics.DealAnalysis) (*models.SellerLead, error) {
	if analysis == nil {
		return nil, common.NewValidationError("analysis", "analysis is required")
	}
	return s.CreateSellerLead(ctx, userID, models.SellerLeadInput{
		PropertyAddress: propertyAddress,
		AskingPrice:     common.Float64Ptr(analysis.EstimatedValue),
		ARV:             common.Float64Ptr(analysis.ARV),
		RepairCosts:     common.Float64Ptr(analysis.RepairCosts),
		BuyerROI:        common.Float64Ptr(analysis.PotentialROI),
		Status:          string(models.SellerStatusNew),
		Source:          models.SourceDealAnalyzer,
	})
}

// buildBuyerLead validates input and applies the buyer defaults.
func buildBuyerLead(input models.BuyerLeadInput) (*models.BuyerLead, error) {
	if err := common.ValidateRequiredString(input.InvestorName, "investor_name"); err != nil {
		return nil, err
	}
	if input.MaxBudget <= 0 {
		return nil, common.NewValidationError("max_budget", "max_budget must be greater than zero")
	}
	if input.MinROI < 0 {
		return nil, common.NewValidationError("min_roi", "min_roi cannot be negative")
	}

	propertyType := models.PropertyTypeAny
	if input.PropertyType != "" {
		propertyType = models.PropertyType(input.PropertyType)
		if !propertyType.Valid() {
			return nil, common.NewValidationError("property_type", "unknown property type: "+input.PropertyType)
		}
	}

	status := models.BuyerStatusActive
	if input.Status != "" {
		status = models.BuyerStatus(input.Status)
		if !status.Valid() {
			return nil, common.NewValidationError("status", "unknown buyer status: "+input.Status)
		}
	}

	location := strings.TrimSpace(input.PreferredLocation)
	if location == "" {
		location = models.DefaultPreferredLocation
	}

	return &models.BuyerLead{
		InvestorName:      strings.TrimSpace(input.InvestorName),
		Email:             strings.TrimSpace(input.Email),
		Phone:             strings.TrimSpace(input.Phone),
		MaxBudget:         input.MaxBudget,
		MinROI:            input.MinROI,
		PreferredLocation: location,
		PropertyType:      propertyType,
		Status:            status,
		Notes:             input.Notes,
	}, nil
}

func (s *leadService) ListBuyerLeads(ctx context.Context, userID uuid.UUID) ([]*models.BuyerLead, error) {
	leads, err := s.buyerRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.NewStoreError("list buyer leads", err)
	}
	return leads, nil
}

func (s *leadService) GetBuyerLead(ctx context.Context, userID, id uuid.UUID) (*models.BuyerLead, error) {
	lead, err := s.buyerRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, storeError("load buyer lead", err)
	}
	return lead, nil
}

func (s *leadService) CreateBuyerLead(ctx context.Context, userID uuid.UUID, input models.BuyerLeadInput) (*models.BuyerLead, error) {
	lead, err := buildBuyerLead(input)
	if err != nil {
		return nil, err
	}
	lead.ID = uuid.New()
	lead.UserID = userID

	if err := s.buyerRepo.Create(ctx, lead); err != nil {
		s.logger.Error("Failed to create buyer lead", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, common.NewStoreError("create buyer lead", err)
	}
	return lead, nil
}

func (s *leadService) UpdateBuyerLead(ctx context.Context, userID, id uuid.UUID, input models.BuyerLeadInput) (*models.BuyerLead, error) {
	existing, err := s.buyerRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, storeError("load buyer lead", err)
	}

	lead, err := buildBuyerLead(input)
	if err != nil {
		return nil, err
	}
	lead.ID = existing.ID
	lead.UserID = existing.UserID
	lead.CreatedAt = existing.CreatedAt

	if err := s.buyerRepo.Update(ctx, lead); err != nil {
		return nil, storeError("update buyer lead", err)
	}
	return lead, nil
}

func (s *leadService) UpdateBuyerLeadStatus(ctx context.Context, userID, id uuid.UUID, status string) error {
	st := models.BuyerStatus(status)
	if !st.Valid() {
		return common.NewValidationError("status", "unknown buyer status: "+status)
	}
	if err := s.buyerRepo.UpdateStatus(ctx, userID, id, st); err != nil {
		return storeError("update buyer lead status", err)
	}
	return nil
}

func (s *leadService) DeleteBuyerLead(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.buyerRepo.Delete(ctx, userID, id); err != nil {
		return storeError("delete buyer lead", err)
	}
	return nil
}

// HasLeads reports whether the user owns any seller or buyer lead.
func (s *leadService) HasLeads(ctx context.Context, userID uuid.UUID) (bool, error) {
	sellers, err := s.sellerRepo.CountByUser(ctx, userID)
	if err != nil {
		return false, common.NewStoreError("count seller leads", err)
	}
	if sellers > 0 {
		return true, nil
	}
	buyers, err := s.buyerRepo.CountByUser(ctx, userID)
	if err != nil {
		return false, common.NewStoreError("count buyer leads", err)
	}
	return buyers > 0, nil
}
