package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"nxtrix/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFounder() *models.FounderCustomer {
	return &models.FounderCustomer{
		ID:               uuid.New(),
		Email:            "a@x.com",
		Name:             "Ann",
		Plan:             models.PlanTeam,
		BillingCycle:     models.BillingMonthly,
		StripeCustomerID: "cus_123",
		SetupIntentID:    "seti_123",
		Status:           models.FounderStatusPendingPayment,
		PriceID:          "price_team_monthly",
	}
}

func TestFounderCustomerRepo_CreateDuplicateEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFounderCustomerRepo(mock)
	founder := newFounder()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO founder_customers")).
		WithArgs(founder.ID, founder.Email, founder.Name, founder.Company, founder.InvestorType, founder.Experience, founder.Plan, founder.BillingCycle, founder.StripeCustomerID, founder.SetupIntentID, founder.Status, founder.PriceID).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err = repo.Create(context.Background(), founder)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFounderCustomerRepo_ExistsByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFounderCustomerRepo(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM founder_customers WHERE email = $1)")).
		WithArgs("a@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "a@x.com")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestFounderCustomerRepo_UpdateStatusUnknownCustomer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFounderCustomerRepo(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE founder_customers SET status = $1")).
		WithArgs(models.FounderStatusActive, "cus_missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateStatusByStripeCustomerID(context.Background(), "cus_missing", models.FounderStatusActive)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_GetByIDMarksPersisted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepo(mock)
	id := uuid.New()
	var empty *string

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles")).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "full_name", "business_type", "experience_level", "primary_goal", "onboarding_completed", "created_at"}).
			AddRow(id, "a@x.com", "a", empty, empty, empty, false, time.Now()))

	profile, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, profile.Persisted)
	assert.False(t, profile.OnboardingCompleted)
	assert.Nil(t, profile.BusinessType)
}
