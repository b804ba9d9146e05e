package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the per-user CRM profile. ID equals the auth identity id.
type Profile struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	Email               string    `json:"email" db:"email"`
	FullName            string    `json:"full_name" db:"full_name"`
	BusinessType        *string   `json:"business_type" db:"business_type"`
	ExperienceLevel     *string   `json:"experience_level" db:"experience_level"`
	PrimaryGoal         *string   `json:"primary_goal" db:"primary_goal"`
	OnboardingCompleted bool      `json:"onboarding_completed" db:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`

	// Persisted is false for a profile synthesized in memory after a store failure.
	Persisted bool `json:"persisted" db:"-"`
}

// Identity is what the auth provider knows about the caller.
type Identity struct {
	ID       uuid.UUID         `json:"id"`
	Email    string            `json:"email"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// EmailLocalPart returns the part of the email before '@'.
func EmailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// OnboardingAnswers are collected by the onboarding flow.
type OnboardingAnswers struct {
	BusinessType    string `json:"business_type"`
	ExperienceLevel string `json:"experience_level"`
	PrimaryGoal     string `json:"primary_goal"`
}
