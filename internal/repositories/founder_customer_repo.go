package repositories

import (
	"context"

	"nxtrix/internal/models"
	"nxtrix/pkg/database"
)

type FounderCustomerRepository interface {
	Create(ctx context.Context, founder *models.FounderCustomer) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByStripeCustomerID(ctx context.Context, customerID string) (*models.FounderCustomer, error)
	UpdateStatusByStripeCustomerID(ctx context.Context, customerID string, status models.FounderStatus) error
}

type founderCustomerRepo struct {
	db database.DBTX
}

func NewFounderCustomerRepo(db database.DBTX) FounderCustomerRepository {
	return &founderCustomerRepo{db: db}
}

// Create returns ErrDuplicate when the email is already registered.
func (r *founderCustomerRepo) Create(ctx context.Context, founder *models.FounderCustomer) error {
	query := `
		INSERT INTO founder_customers (id, email, name, company, investor_type, experience, plan, billing_cycle, stripe_customer_id, setup_intent_id, status, price_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, founder.ID, founder.Email, founder.Name, founder.Company, founder.InvestorType, founder.Experience, founder.Plan, founder.BillingCycle, founder.StripeCustomerID, founder.SetupIntentID, founder.Status, founder.PriceID)
	return translateError(err)
}

func (r *founderCustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM founder_customers WHERE email = $1)`
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *founderCustomerRepo) GetByStripeCustomerID(ctx context.Context, customerID string) (*models.FounderCustomer, error) {
	f := &models.FounderCustomer{}
	query := `
		SELECT id, email, name, company, investor_type, experience, plan, billing_cycle, stripe_customer_id, setup_intent_id, status, price_id, created_at, updated_at
		FROM founder_customers
		WHERE stripe_customer_id = $1
	`
	err := r.db.QueryRow(ctx, query, customerID).Scan(&f.ID, &f.Email, &f.Name, &f.Company, &f.InvestorType, &f.Experience, &f.Plan, &f.BillingCycle, &f.StripeCustomerID, &f.SetupIntentID, &f.Status, &f.PriceID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return f, nil
}

func (r *founderCustomerRepo) UpdateStatusByStripeCustomerID(ctx context.Context, customerID string, status models.FounderStatus) error {
	query := `UPDATE founder_customers SET status = $1, updated_at = NOW() WHERE stripe_customer_id = $2`
	tag, err := r.db.Exec(ctx, query, status, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
