package testhelpers

import (
	"context"
	"os"
	"testing"
	"time"

	"nxtrix/internal/models"
	"nxtrix/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func()
}

// SetupTestDB connects to TEST_DATABASE_URL and applies the schema. The test is skipped
// when the variable is unset.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := database.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("Failed to apply schema: %v", err)
	}

	db := &TestDB{Pool: pool, Cleanup: pool.Close}
	t.Cleanup(db.Cleanup)
	return db
}

// SetupTestProfile inserts a profile and removes it, with its leads, when the test ends.
func SetupTestProfile(t *testing.T, db *TestDB) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	query := `
		INSERT INTO profiles (id, email, full_name, onboarding_completed, created_at)
		VALUES ($1, $2, $3, false, $4)
	`
	_, err := db.Pool.Exec(context.Background(), query, userID, userID.String()+"@example.com", "Test Investor", time.Now())
	if err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	t.Cleanup(func() {
		ctx := context.Background()
		_, _ = db.Pool.Exec(ctx, `DELETE FROM seller_leads WHERE user_id = $1`, userID)
		_, _ = db.Pool.Exec(ctx, `DELETE FROM buyer_leads WHERE user_id = $1`, userID)
		_, _ = db.Pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, userID)
	})
	return userID
}

// NewSellerLead returns an unsaved seller lead with required fields set.
func NewSellerLead(userID uuid.UUID, address string, arv float64) *models.SellerLead {
	return &models.SellerLead{
		ID:              uuid.New(),
		UserID:          userID,
		PropertyAddress: address,
		ARV:             &arv,
		Status:          models.SellerStatusNew,
		Source:          models.SourceManual,
	}
}

// NewBuyerLead returns an unsaved buyer lead with required fields set.
func NewBuyerLead(userID uuid.UUID, investor string, maxBudget float64) *models.BuyerLead {
	return &models.BuyerLead{
		ID:                uuid.New(),
		UserID:            userID,
		InvestorName:      investor,
		MaxBudget:         maxBudget,
		PreferredLocation: models.DefaultPreferredLocation,
		PropertyType:      models.PropertyTypeAny,
		Status:            models.BuyerStatusActive,
	}
}
