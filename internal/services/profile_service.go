package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"nxtrix/internal/common"
	"nxtrix/internal/models"
	"nxtrix/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService interface {
	ResolveProfile(ctx context.Context, identity models.Identity, fallbackFullName string) (*models.Profile, error)
	NeedsOnboarding(profile *models.Profile, hasExistingLeads bool) bool
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, answers models.OnboardingAnswers) error
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	logger      *zap.Logger
}

func NewProfileService(profileRepo repositories.ProfileRepository, logger *zap.Logger) ProfileService {
	return &profileService{profileRepo: profileRepo, logger: logger}
}

// ResolveProfile loads the caller's profile, creating it on first sight. When the store fails it
// still returns a transient profile built from identity, alongside a recoverable StoreError.
func (s *profileService) ResolveProfile(ctx context.Context, identity models.Identity, fallbackFullName string) (*models.Profile, error) {
	existing, err := s.profileRepo.GetByID(ctx, identity.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return transientProfile(identity, fallbackFullName), common.NewStoreError("load profile", err)
	}

	profile := transientProfile(identity, fallbackFullName)
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			// Another session created it first.
			if again, getErr := s.profileRepo.GetByID(ctx, identity.ID); getErr == nil {
				return again, nil
			}
		}
		return transientProfile(identity, fallbackFullName), common.NewStoreError("create profile", err)
	}
	profile.Persisted = true

	s.logger.Info("Profile created", zap.String("user_id", identity.ID.String()))
	return profile, nil
}

func transientProfile(identity models.Identity, fallbackFullName string) *models.Profile {
	fullName := strings.TrimSpace(fallbackFullName)
	if fullName == "" {
		fullName = identity.Metadata["full_name"]
	}
	if fullName == "" {
		fullName = models.EmailLocalPart(identity.Email)
	}
	return &models.Profile{
		ID:                  identity.ID,
		Email:               identity.Email,
		FullName:            fullName,
		OnboardingCompleted: false,
		CreatedAt:           time.Now(),
	}
}

// NeedsOnboarding is true only for a user who has neither finished onboarding nor added leads.
func (s *profileService) NeedsOnboarding(profile *models.Profile, hasExistingLeads bool) bool {
	return !profile.OnboardingCompleted && !hasExistingLeads
}

func (s *profileService) CompleteOnboarding(ctx context.Context, userID uuid.UUID, answers models.OnboardingAnswers) error {
	if err := s.profileRepo.UpdateOnboarding(ctx, userID, answers); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return common.NewNotFoundError("profile")
		}
		return common.NewStoreError("update onboarding", err)
	}
	return nil
}
