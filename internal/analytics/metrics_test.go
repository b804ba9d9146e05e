package analytics

import (
	"testing"
	"time"

	"nxtrix/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type MetricsTestSuite struct {
	suite.Suite
	sellers []*models.SellerLead
	buyers  []*models.BuyerLead
}

func ptr(f float64) *float64 { return &f }

func (suite *MetricsTestSuite) SetupTest() {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.sellers = []*models.SellerLead{
		{PropertyAddress: "1 A St", ARV: ptr(100000), BuyerROI: ptr(25), Status: models.SellerStatusNew, CreatedAt: base},
		{PropertyAddress: "2 B St", ARV: nil, BuyerROI: ptr(15), Status: models.SellerStatusInContract, CreatedAt: base.Add(time.Hour)},
		{PropertyAddress: "3 C St", ARV: ptr(50000), BuyerROI: nil, Status: models.SellerStatusClosed, CreatedAt: base.Add(2 * time.Hour)},
		{PropertyAddress: "4 D St", ARV: ptr(25000), BuyerROI: ptr(5), Status: "Negotiating", CreatedAt: base.Add(time.Hour)},
	}
	suite.buyers = []*models.BuyerLead{
		{InvestorName: "Ann", MaxBudget: 200000, Status: models.BuyerStatusActive},
	}
}

func TestMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}

func (suite *MetricsTestSuite) TestComputeMetrics() {
	m := ComputeMetrics(suite.sellers, suite.buyers)

	assert.Equal(suite.T(), 5, m.TotalLeads)
	assert.Equal(suite.T(), 1, m.DealsInContract)
	assert.Equal(suite.T(), 175000.0, m.PipelineValue)
	assert.Equal(suite.T(), 11.25, m.AvgROI)
	assert.Equal(suite.T(), 20.0, m.ConversionRate)
	assert.Equal(suite.T(), 50.0, m.PipelineProgression)
}

func (suite *MetricsTestSuite) TestEmptyInputHasNoDivisionFault() {
	m := ComputeMetrics(nil, nil)

	assert.Equal(suite.T(), 0, m.TotalLeads)
	assert.Equal(suite.T(), 0.0, m.PipelineValue)
	assert.Equal(suite.T(), 0.0, m.AvgROI)
	assert.Equal(suite.T(), 0.0, m.ConversionRate)
	assert.Equal(suite.T(), 0.0, m.PipelineProgression)
	assert.Empty(suite.T(), m.PipelineByStatus)
}

func (suite *MetricsTestSuite) TestPipelineByStatusPartitionsInput() {
	buckets := PipelineByStatus(suite.sellers)

	sum := 0
	for _, n := range buckets {
		sum += n
	}
	assert.Equal(suite.T(), len(suite.sellers), sum)
	assert.Equal(suite.T(), 1, buckets[models.StatusUnknown])
	assert.Equal(suite.T(), 1, buckets[string(models.SellerStatusNew)])
	assert.NotContains(suite.T(), buckets, "Negotiating")
}

func (suite *MetricsTestSuite) TestRecentSellerLeadsNewestFirstStable() {
	recent := RecentSellerLeads(suite.sellers, 3)

	assert.Len(suite.T(), recent, 3)
	assert.Equal(suite.T(), "3 C St", recent[0].PropertyAddress)
	assert.Equal(suite.T(), "2 B St", recent[1].PropertyAddress)
	assert.Equal(suite.T(), "4 D St", recent[2].PropertyAddress)
	assert.Equal(suite.T(), TierCaution, recent[0].Tier)
	assert.Equal(suite.T(), TierGood, recent[1].Tier)
}

func (suite *MetricsTestSuite) TestRecentSellerLeadsDoesNotReorderInput() {
	RecentSellerLeads(suite.sellers, 5)
	assert.Equal(suite.T(), "1 A St", suite.sellers[0].PropertyAddress)
}
