package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"nxtrix/internal/analytics"
	"nxtrix/internal/caching"
	"nxtrix/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mr         *miniredis.Miniredis
	sellerRepo *MockSellerLeadRepository
	buyerRepo  *MockBuyerLeadRepository
	service    DashboardService
	userID     uuid.UUID
	ctx        context.Context
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mr = miniredis.RunT(suite.T())
	client := redis.NewClient(&redis.Options{Addr: suite.mr.Addr()})
	suite.T().Cleanup(func() { client.Close() })

	suite.sellerRepo = &MockSellerLeadRepository{}
	suite.buyerRepo = &MockBuyerLeadRepository{}
	leads := NewLeadService(suite.sellerRepo, suite.buyerRepo, zap.NewNop())
	suite.service = NewDashboardService(leads, caching.NewCacheServiceFromClient(client), analytics.NewSimulatedFeed(), 5*time.Minute, zap.NewNop())
	suite.userID = uuid.New()
	suite.ctx = context.Background()
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (suite *DashboardServiceTestSuite) sellers() []*models.SellerLead {
	return []*models.SellerLead{
		{ID: uuid.New(), UserID: suite.userID, PropertyAddress: "1 A St", ARV: float64Ptr(100000), Status: models.SellerStatusInContract, CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: suite.userID, PropertyAddress: "2 B St", ARV: float64Ptr(80000), Status: models.SellerStatusNew, CreatedAt: time.Now()},
	}
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_ServedFromCacheWithinTTL() {
	suite.sellerRepo.On("ListByUser", suite.ctx, suite.userID).Return(suite.sellers(), nil).Once()
	suite.buyerRepo.On("ListByUser", suite.ctx, suite.userID).Return([]*models.BuyerLead{}, nil).Once()

	first, err := suite.service.GetDashboard(suite.ctx, suite.userID, false)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), first.FromCache)
	assert.Equal(suite.T(), 2, first.Metrics.TotalLeads)
	assert.Equal(suite.T(), 180000.0, first.Metrics.PipelineValue)
	assert.Equal(suite.T(), 50.0, first.Metrics.ConversionRate)

	second, err := suite.service.GetDashboard(suite.ctx, suite.userID, false)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), second.FromCache)
	assert.Equal(suite.T(), first.Metrics.TotalLeads, second.Metrics.TotalLeads)

	suite.sellerRepo.AssertNumberOfCalls(suite.T(), "ListByUser", 1)
	suite.buyerRepo.AssertNumberOfCalls(suite.T(), "ListByUser", 1)
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_RefreshBypassesCache() {
	suite.sellerRepo.On("ListByUser", suite.ctx, suite.userID).Return(suite.sellers(), nil).Twice()
	suite.buyerRepo.On("ListByUser", suite.ctx, suite.userID).Return([]*models.BuyerLead{}, nil).Twice()

	_, err := suite.service.GetDashboard(suite.ctx, suite.userID, false)
	require.NoError(suite.T(), err)
	refreshed, err := suite.service.GetDashboard(suite.ctx, suite.userID, true)
	require.NoError(suite.T(), err)

	assert.False(suite.T(), refreshed.FromCache)
	suite.sellerRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_ExpiredSnapshotReloads() {
	suite.sellerRepo.On("ListByUser", suite.ctx, suite.userID).Return(suite.sellers(), nil).Twice()
	suite.buyerRepo.On("ListByUser", suite.ctx, suite.userID).Return([]*models.BuyerLead{}, nil).Twice()

	_, err := suite.service.GetDashboard(suite.ctx, suite.userID, false)
	require.NoError(suite.T(), err)

	suite.mr.FastForward(5*time.Minute + time.Second)

	again, err := suite.service.GetDashboard(suite.ctx, suite.userID, false)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), again.FromCache)
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_StoreFailureDegradesToEmpty() {
	suite.sellerRepo.On("ListByUser", suite.ctx, suite.userID).Return(nil, errors.New("connection refused")).Once()
	suite.buyerRepo.On("ListByUser", suite.ctx, suite.userID).Return(nil, errors.New("connection refused")).Once()

	dashboard, err := suite.service.GetDashboard(suite.ctx, suite.userID, false)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, dashboard.Metrics.TotalLeads)
	assert.Equal(suite.T(), 0.0, dashboard.Metrics.AvgROI)
	assert.Empty(suite.T(), dashboard.RecentLeads)
	assert.NotEmpty(suite.T(), dashboard.HotDeals)
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_DegradedSnapshotNotCached() {
	suite.sellerRepo.On("ListByUser", suite.ctx, suite.userID).Return(nil, errors.New("connection refused")).Once()
	suite.buyerRepo.On("ListByUser", suite.ctx, suite.userID).Return([]*models.BuyerLead{}, nil).Once()

	outage, err := suite.service.GetDashboard(suite.ctx, suite.userID, false)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, outage.Metrics.TotalLeads)
	assert.False(suite.T(), suite.mr.Exists("nxtrix:leads:"+suite.userID.String()))

	suite.sellerRepo.On("ListByUser", suite.ctx, suite.userID).Return(suite.sellers(), nil).Once()
	suite.buyerRepo.On("ListByUser", suite.ctx, suite.userID).Return([]*models.BuyerLead{}, nil).Once()

	recovered, err := suite.service.GetDashboard(suite.ctx, suite.userID, false)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), recovered.FromCache)
	assert.Equal(suite.T(), 2, recovered.Metrics.TotalLeads)

	cached, err := suite.service.GetDashboard(suite.ctx, suite.userID, false)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), cached.FromCache)
	assert.Equal(suite.T(), 2, cached.Metrics.TotalLeads)
}

func (suite *DashboardServiceTestSuite) TestGetSnapshot_OtherUserNotShared() {
	otherID := uuid.New()
	suite.sellerRepo.On("ListByUser", suite.ctx, mock.Anything).Return([]*models.SellerLead{}, nil).Twice()
	suite.buyerRepo.On("ListByUser", suite.ctx, mock.Anything).Return([]*models.BuyerLead{}, nil).Twice()

	_, hit := suite.service.GetSnapshot(suite.ctx, suite.userID, false)
	assert.False(suite.T(), hit)
	_, hit = suite.service.GetSnapshot(suite.ctx, otherID, false)
	assert.False(suite.T(), hit)
}
