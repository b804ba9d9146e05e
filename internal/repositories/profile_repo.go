package repositories

import (
	"context"

	"nxtrix/internal/models"
	"nxtrix/pkg/database"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	UpdateOnboarding(ctx context.Context, id uuid.UUID, answers models.OnboardingAnswers) error
}

type profileRepo struct {
	db database.DBTX
}

func NewProfileRepo(db database.DBTX) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (id, email, full_name, onboarding_completed, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, profile.ID, profile.Email, profile.FullName, profile.OnboardingCompleted).Scan(&profile.CreatedAt)
	return translateError(err)
}

func (r *profileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT id, email, full_name, business_type, experience_level, primary_goal, onboarding_completed, created_at
		FROM profiles
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&profile.ID, &profile.Email, &profile.FullName, &profile.BusinessType, &profile.ExperienceLevel, &profile.PrimaryGoal, &profile.OnboardingCompleted, &profile.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	profile.Persisted = true
	return profile, nil
}

func (r *profileRepo) UpdateOnboarding(ctx context.Context, id uuid.UUID, answers models.OnboardingAnswers) error {
	query := `
		UPDATE profiles
		SET business_type = $1, experience_level = $2, primary_goal = $3, onboarding_completed = TRUE
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, answers.BusinessType, answers.ExperienceLevel, answers.PrimaryGoal, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
