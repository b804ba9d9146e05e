package services

import (
	"context"
	"time"

	"nxtrix/internal/analytics"
	"nxtrix/internal/caching"
	"nxtrix/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recentLeadCount = 5

// Dashboard is everything the dashboard page renders.
type Dashboard struct {
	Metrics      analytics.DashboardMetrics `json:"metrics"`
	RecentLeads  []analytics.RecentLead     `json:"recent_leads"`
	HotDeals     []analytics.HotDeal        `json:"hot_deals"`
	Market       analytics.MarketInsight    `json:"market"`
	BuyerCount   int                        `json:"buyer_count"`
	FromCache    bool                       `json:"from_cache"`
	SnapshotTime time.Time                  `json:"snapshot_time"`
}

type DashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID, refresh bool) (*Dashboard, error)
	GetSnapshot(ctx context.Context, userID uuid.UUID, refresh bool) (*models.LeadSnapshot, bool)
}

type dashboardService struct {
	leadService  LeadService
	cacheService caching.CacheService
	feed         analytics.DealFeed
	ttl          time.Duration
	logger       *zap.Logger
}

func NewDashboardService(leadService LeadService, cacheService caching.CacheService, feed analytics.DealFeed, ttl time.Duration, logger *zap.Logger) DashboardService {
	return &dashboardService{
		leadService:  leadService,
		cacheService: cacheService,
		feed:         feed,
		ttl:          ttl,
		logger:       logger,
	}
}

// GetSnapshot returns the user's leads, from cache when a fresh snapshot exists. The cache is
// only ever invalidated by expiry; refresh skips the read. Store read failures degrade to
// empty lists and such a snapshot is not cached. The bool reports a cache hit.
func (s *dashboardService) GetSnapshot(ctx context.Context, userID uuid.UUID, refresh bool) (*models.LeadSnapshot, bool) {
	if !refresh {
		cached, err := s.cacheService.GetLeadSnapshot(ctx, userID)
		if err != nil {
			s.logger.Warn("Lead snapshot cache read failed", zap.String("user_id", userID.String()), zap.Error(err))
		} else if cached != nil {
			return cached, true
		}
	}

	degraded := false
	sellers, err := s.leadService.ListSellerLeads(ctx, userID)
	if err != nil {
		degraded = true
		s.logger.Error("Falling back to empty seller leads", zap.String("user_id", userID.String()), zap.Error(err))
		sellers = []*models.SellerLead{}
	}
	buyers, err := s.leadService.ListBuyerLeads(ctx, userID)
	if err != nil {
		degraded = true
		s.logger.Error("Falling back to empty buyer leads", zap.String("user_id", userID.String()), zap.Error(err))
		buyers = []*models.BuyerLead{}
	}

	snapshot := &models.LeadSnapshot{
		SellerLeads: sellers,
		BuyerLeads:  buyers,
		TotalLeads:  analytics.TotalLeads(sellers, buyers),
		CachedAt:    time.Now(),
	}
	if degraded {
		return snapshot, false
	}
	if err := s.cacheService.SetLeadSnapshot(ctx, userID, snapshot, s.ttl); err != nil {
		s.logger.Warn("Lead snapshot cache write failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
	return snapshot, false
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID uuid.UUID, refresh bool) (*Dashboard, error) {
	snapshot, hit := s.GetSnapshot(ctx, userID, refresh)

	deals, err := s.feed.HotDeals(ctx)
	if err != nil {
		s.logger.Warn("Deal feed unavailable", zap.Error(err))
		deals = []analytics.HotDeal{}
	}
	market, err := s.feed.Insight(ctx)
	if err != nil {
		s.logger.Warn("Market insight unavailable", zap.Error(err))
	}

	return &Dashboard{
		Metrics:      analytics.ComputeMetrics(snapshot.SellerLeads, snapshot.BuyerLeads),
		RecentLeads:  analytics.RecentSellerLeads(snapshot.SellerLeads, recentLeadCount),
		HotDeals:     deals,
		Market:       market,
		BuyerCount:   len(snapshot.BuyerLeads),
		FromCache:    hit,
		SnapshotTime: snapshot.CachedAt,
	}, nil
}
