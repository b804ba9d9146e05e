package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"nxtrix/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SellerLeadRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    SellerLeadRepository
	userID  uuid.UUID
	context context.Context
}

func (suite *SellerLeadRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewSellerLeadRepo(mock)
	suite.userID = uuid.New()
	suite.context = context.Background()
}

func (suite *SellerLeadRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestSellerLeadRepoTestSuite(t *testing.T) {
	suite.Run(t, new(SellerLeadRepoTestSuite))
}

func float64Ptr(f float64) *float64 { return &f }

func sellerLeadRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "property_address", "seller_name", "seller_phone", "seller_email", "asking_price", "arv", "repair_costs", "buyer_roi", "status", "notes", "source", "created_at"})
}

func (suite *SellerLeadRepoTestSuite) TestCreate_Success() {
	lead := &models.SellerLead{
		ID:              uuid.New(),
		UserID:          suite.userID,
		PropertyAddress: "123 Main St",
		ARV:             float64Ptr(150000),
		Status:          models.SellerStatusNew,
		Source:          models.SourceManual,
	}
	created := time.Now()

	suite.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO seller_leads")).
		WithArgs(lead.ID, lead.UserID, lead.PropertyAddress, lead.SellerName, lead.SellerPhone, lead.SellerEmail, lead.AskingPrice, lead.ARV, lead.RepairCosts, lead.BuyerROI, lead.Status, lead.Notes, lead.Source).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))

	err := suite.repo.Create(suite.context, lead)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), created, lead.CreatedAt)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *SellerLeadRepoTestSuite) TestGetByID_ScopedToUser() {
	leadID := uuid.New()

	suite.mock.ExpectQuery(regexp.QuoteMeta("FROM seller_leads WHERE user_id = $1 AND id = $2")).
		WithArgs(suite.userID, leadID).
		WillReturnError(pgx.ErrNoRows)

	lead, err := suite.repo.GetByID(suite.context, suite.userID, leadID)
	assert.Nil(suite.T(), lead)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *SellerLeadRepoTestSuite) TestListByUser_ReturnsOnlyRows() {
	now := time.Now()
	otherID := uuid.New()
	rows := sellerLeadRows().
		AddRow(uuid.New(), suite.userID, "123 Main St", "Ann", "", "", float64Ptr(100000), float64Ptr(150000), float64Ptr(20000), float64Ptr(25), models.SellerStatusNew, "", models.SourceManual, now).
		AddRow(otherID, suite.userID, "9 Elm St", "", "", "", (*float64)(nil), (*float64)(nil), (*float64)(nil), (*float64)(nil), models.SellerStatusClosed, "", models.SourceDealAnalyzer, now)

	suite.mock.ExpectQuery(regexp.QuoteMeta("FROM seller_leads WHERE user_id = $1")).
		WithArgs(suite.userID).
		WillReturnRows(rows)

	leads, err := suite.repo.ListByUser(suite.context, suite.userID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), leads, 2)
	assert.Equal(suite.T(), 150000.0, *leads[0].ARV)
	assert.Equal(suite.T(), otherID, leads[1].ID)
	assert.Nil(suite.T(), leads[1].AskingPrice)
}

func (suite *SellerLeadRepoTestSuite) TestListByUser_Empty() {
	suite.mock.ExpectQuery(regexp.QuoteMeta("FROM seller_leads WHERE user_id = $1")).
		WithArgs(suite.userID).
		WillReturnRows(sellerLeadRows())

	leads, err := suite.repo.ListByUser(suite.context, suite.userID)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), leads)
	assert.Empty(suite.T(), leads)
}

func (suite *SellerLeadRepoTestSuite) TestUpdateStatus_NotFound() {
	leadID := uuid.New()

	suite.mock.ExpectExec(regexp.QuoteMeta("UPDATE seller_leads SET status = $1 WHERE user_id = $2 AND id = $3")).
		WithArgs(models.SellerStatusInContract, suite.userID, leadID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.UpdateStatus(suite.context, suite.userID, leadID, models.SellerStatusInContract)
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *SellerLeadRepoTestSuite) TestDelete_Success() {
	leadID := uuid.New()

	suite.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM seller_leads WHERE user_id = $1 AND id = $2")).
		WithArgs(suite.userID, leadID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := suite.repo.Delete(suite.context, suite.userID, leadID)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *SellerLeadRepoTestSuite) TestCountByUser() {
	suite.mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM seller_leads")).
		WithArgs(suite.userID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := suite.repo.CountByUser(suite.context, suite.userID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, count)
}
