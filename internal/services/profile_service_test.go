package services

import (
	"context"
	"errors"
	"testing"

	"nxtrix/internal/common"
	"nxtrix/internal/models"
	"nxtrix/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newIdentity() models.Identity {
	return models.Identity{ID: uuid.New(), Email: "jane.doe@example.com"}
}

func TestResolveProfile_Existing(t *testing.T) {
	repo := &MockProfileRepository{}
	svc := NewProfileService(repo, zap.NewNop())
	identity := newIdentity()
	existing := &models.Profile{ID: identity.ID, Email: identity.Email, FullName: "Jane", OnboardingCompleted: true, Persisted: true}

	repo.On("GetByID", mock.Anything, identity.ID).Return(existing, nil).Once()

	profile, err := svc.ResolveProfile(context.Background(), identity, "")
	require.NoError(t, err)
	assert.Same(t, existing, profile)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResolveProfile_CreatesWithEmailLocalPart(t *testing.T) {
	repo := &MockProfileRepository{}
	svc := NewProfileService(repo, zap.NewNop())
	identity := newIdentity()

	repo.On("GetByID", mock.Anything, identity.ID).Return(nil, repositories.ErrNotFound).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Profile) bool {
		return p.ID == identity.ID && p.FullName == "jane.doe" && !p.OnboardingCompleted
	})).Return(nil).Once()

	profile, err := svc.ResolveProfile(context.Background(), identity, "")
	require.NoError(t, err)
	assert.True(t, profile.Persisted)
	repo.AssertExpectations(t)
}

func TestResolveProfile_UsesFallbackName(t *testing.T) {
	repo := &MockProfileRepository{}
	svc := NewProfileService(repo, zap.NewNop())
	identity := newIdentity()

	repo.On("GetByID", mock.Anything, identity.ID).Return(nil, repositories.ErrNotFound).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Profile) bool {
		return p.FullName == "Jane Doe"
	})).Return(nil).Once()

	profile, err := svc.ResolveProfile(context.Background(), identity, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.FullName)
}

func TestResolveProfile_StoreFailureReturnsTransientProfile(t *testing.T) {
	repo := &MockProfileRepository{}
	svc := NewProfileService(repo, zap.NewNop())
	identity := newIdentity()

	repo.On("GetByID", mock.Anything, identity.ID).Return(nil, repositories.ErrNotFound).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

	profile, err := svc.ResolveProfile(context.Background(), identity, "")

	require.NotNil(t, profile)
	assert.False(t, profile.Persisted)
	assert.Equal(t, identity.ID, profile.ID)
	assert.Equal(t, "jane.doe", profile.FullName)
	assert.True(t, common.IsKind(err, common.KindStore))
	assert.True(t, common.IsRecoverable(err))
}

func TestNeedsOnboarding(t *testing.T) {
	svc := NewProfileService(&MockProfileRepository{}, zap.NewNop())

	assert.True(t, svc.NeedsOnboarding(&models.Profile{OnboardingCompleted: false}, false))
	assert.False(t, svc.NeedsOnboarding(&models.Profile{OnboardingCompleted: false}, true))
	assert.False(t, svc.NeedsOnboarding(&models.Profile{OnboardingCompleted: true}, false))
}

func TestCompleteOnboarding_StoreFailure(t *testing.T) {
	repo := &MockProfileRepository{}
	svc := NewProfileService(repo, zap.NewNop())
	userID := uuid.New()
	answers := models.OnboardingAnswers{BusinessType: "Wholesaler", ExperienceLevel: "Beginner", PrimaryGoal: "Find deals"}

	repo.On("UpdateOnboarding", mock.Anything, userID, answers).Return(errors.New("timeout")).Once()

	err := svc.CompleteOnboarding(context.Background(), userID, answers)
	assert.True(t, common.IsKind(err, common.KindStore))
}
