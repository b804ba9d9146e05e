package repositories

import (
	"context"

	"nxtrix/internal/models"
	"nxtrix/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SellerLeadRepository reads and writes seller leads. Every method is scoped by the owning user.
type SellerLeadRepository interface {
	Create(ctx context.Context, lead *models.SellerLead) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.SellerLead, error)
	Update(ctx context.Context, lead *models.SellerLead) error
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.SellerStatus) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SellerLead, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type sellerLeadRepo struct {
	db database.DBTX
}

func NewSellerLeadRepo(db database.DBTX) SellerLeadRepository {
	return &sellerLeadRepo{db: db}
}

const sellerLeadColumns = `id, user_id, property_address, seller_name, seller_phone, seller_email, asking_price, arv, repair_costs, buyer_roi, status, notes, source, created_at`

func scanSellerLead(row pgx.Row) (*models.SellerLead, error) {
	lead := &models.SellerLead{}
	err := row.Scan(&lead.ID, &lead.UserID, &lead.PropertyAddress, &lead.SellerName, &lead.SellerPhone, &lead.SellerEmail, &lead.AskingPrice, &lead.ARV, &lead.RepairCosts, &lead.BuyerROI, &lead.Status, &lead.Notes, &lead.Source, &lead.CreatedAt)
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *sellerLeadRepo) Create(ctx context.Context, lead *models.SellerLead) error {
	query := `
		INSERT INTO seller_leads (id, user_id, property_address, seller_name, seller_phone, seller_email, asking_price, arv, repair_costs, buyer_roi, status, notes, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, lead.ID, lead.UserID, lead.PropertyAddress, lead.SellerName, lead.SellerPhone, lead.SellerEmail, lead.AskingPrice, lead.ARV, lead.RepairCosts, lead.BuyerROI, lead.Status, lead.Notes, lead.Source).Scan(&lead.CreatedAt)
	return translateError(err)
}

func (r *sellerLeadRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.SellerLead, error) {
	query := `SELECT ` + sellerLeadColumns + ` FROM seller_leads WHERE user_id = $1 AND id = $2`
	lead, err := scanSellerLead(r.db.QueryRow(ctx, query, userID, id))
	if err != nil {
		return nil, translateError(err)
	}
	return lead, nil
}

func (r *sellerLeadRepo) Update(ctx context.Context, lead *models.SellerLead) error {
	query := `
		UPDATE seller_leads
		SET property_address = $1, seller_name = $2, seller_phone = $3, seller_email = $4, asking_price = $5, arv = $6, repair_costs = $7, buyer_roi = $8, status = $9, notes = $10, source = $11
		WHERE user_id = $12 AND id = $13
	`
	tag, err := r.db.Exec(ctx, query, lead.PropertyAddress, lead.SellerName, lead.SellerPhone, lead.SellerEmail, lead.AskingPrice, lead.ARV, lead.RepairCosts, lead.BuyerROI, lead.Status, lead.Notes, lead.Source, lead.UserID, lead.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sellerLeadRepo) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.SellerStatus) error {
	query := `UPDATE seller_leads SET status = $1 WHERE user_id = $2 AND id = $3`
	tag, err := r.db.Exec(ctx, query, status, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sellerLeadRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM seller_leads WHERE user_id = $1 AND id = $2`
	tag, err := r.db.Exec(ctx, query, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sellerLeadRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SellerLead, error) {
	query := `SELECT ` + sellerLeadColumns + ` FROM seller_leads WHERE user_id = $1`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*models.SellerLead{}
	for rows.Next() {
		lead, err := scanSellerLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *sellerLeadRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM seller_leads WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
