package repositories

import (
	"context"

	"nxtrix/internal/models"
	"nxtrix/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BuyerLeadRepository reads and writes buyer leads. Every method is scoped by the owning user.
type BuyerLeadRepository interface {
	Create(ctx context.Context, lead *models.BuyerLead) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.BuyerLead, error)
	Update(ctx context.Context, lead *models.BuyerLead) error
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.BuyerStatus) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.BuyerLead, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type buyerLeadRepo struct {
	db database.DBTX
}

func NewBuyerLeadRepo(db database.DBTX) BuyerLeadRepository {
	return &buyerLeadRepo{db: db}
}

const buyerLeadColumns = `id, user_id, investor_name, email, phone, max_budget, min_roi, preferred_location, property_type, status, notes, created_at`

func scanBuyerLead(row pgx.Row) (*models.BuyerLead, error) {
	lead := &models.BuyerLead{}
	err := row.Scan(&lead.ID, &lead.UserID, &lead.InvestorName, &lead.Email, &lead.Phone, &lead.MaxBudget, &lead.MinROI, &lead.PreferredLocation, &lead.PropertyType, &lead.Status, &lead.Notes, &lead.CreatedAt)
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *buyerLeadRepo) Create(ctx context.Context, lead *models.BuyerLead) error {
	query := `
		INSERT INTO buyer_leads (id, user_id, investor_name, email, phone, max_budget, min_roi, preferred_location, property_type, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, lead.ID, lead.UserID, lead.InvestorName, lead.Email, lead.Phone, lead.MaxBudget, lead.MinROI, lead.PreferredLocation, lead.PropertyType, lead.Status, lead.Notes).Scan(&lead.CreatedAt)
	return translateError(err)
}

func (r *buyerLeadRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.BuyerLead, error) {
	query := `SELECT ` + buyerLeadColumns + ` FROM buyer_leads WHERE user_id = $1 AND id = $2`
	lead, err := scanBuyerLead(r.db.QueryRow(ctx, query, userID, id))
	if err != nil {
		return nil, translateError(err)
	}
	return lead, nil
}

func (r *buyerLeadRepo) Update(ctx context.Context, lead *models.BuyerLead) error {
	query := `
		UPDATE buyer_leads
		SET investor_name = $1, email = $2, phone = $3, max_budget = $4, min_roi = $5, preferred_location = $6, property_type = $7, status = $8, notes = $9
		WHERE user_id = $10 AND id = $11
	`
	tag, err := r.db.Exec(ctx, query, lead.InvestorName, lead.Email, lead.Phone, lead.MaxBudget, lead.MinROI, lead.PreferredLocation, lead.PropertyType, lead.Status, lead.Notes, lead.UserID, lead.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *buyerLeadRepo) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.BuyerStatus) error {
	query := `UPDATE buyer_leads SET status = $1 WHERE user_id = $2 AND id = $3`
	tag, err := r.db.Exec(ctx, query, status, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *buyerLeadRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM buyer_leads WHERE user_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *buyerLeadRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.BuyerLead, error) {
	query := `SELECT ` + buyerLeadColumns + ` FROM buyer_leads WHERE user_id = $1`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*models.BuyerLead{}
	for rows.Next() {
		lead, err := scanBuyerLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *buyerLeadRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM buyer_leads WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
