package analytics

import (
	"context"
	"sync/atomic"
)

// HotDeal is a market opportunity surfaced on the dashboard.
type HotDeal struct {
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	EstimatedARV float64 `json:"estimated_arv"`
	ROI          float64 `json:"roi"`
	Confidence   int     `json:"confidence"`
	Tier         Tier    `json:"tier"`
}

// MarketInsight summarizes simulated market conditions.
type MarketInsight struct {
	Confidence  int    `json:"confidence"`
	Trend       string `json:"trend"`
	ActiveDeals int    `json:"active_deals"`
}

// DealFeed supplies market recommendations. A real recommendation service can replace
// SimulatedFeed without changes to callers.
type DealFeed interface {
	HotDeals(ctx context.Context) ([]HotDeal, error)
	Insight(ctx context.Context) (MarketInsight, error)
}

var sampleDeals = []HotDeal{
	{Address: "1842 Oak Ridge Dr", Price: 185000, EstimatedARV: 265000},
	{Address: "77 Harbor View Ln", Price: 240000, EstimatedARV: 310000},
	{Address: "509 Maple Ave", Price: 132000, EstimatedARV: 176000},
	{Address: "12 Sunset Blvd", Price: 298000, EstimatedARV: 355000},
}

var trends = []string{"rising", "steady", "cooling"}

// SimulatedFeed serves fixed sample data that shifts with each request.
type SimulatedFeed struct {
	requests atomic.Uint64
}

func NewSimulatedFeed() *SimulatedFeed {
	return &SimulatedFeed{}
}

func (f *SimulatedFeed) HotDeals(ctx context.Context) ([]HotDeal, error) {
	n := f.requests.Add(1)

	deals := make([]HotDeal, 0, len(sampleDeals))
	for i, d := range sampleDeals {
		deal := d
		deal.Confidence = 80 + int((n+uint64(i))%15)
		deal.ROI = (deal.EstimatedARV - deal.Price) / deal.Price * 100
		deal.Tier = TierForROI(deal.ROI)
		deals = append(deals, deal)
	}
	return deals, nil
}

func (f *SimulatedFeed) Insight(ctx context.Context) (MarketInsight, error) {
	n := f.requests.Add(1)
	return MarketInsight{
		Confidence:  85 + int(n%10),
		Trend:       trends[n%uint64(len(trends))],
		ActiveDeals: 20 + int(n%7),
	}, nil
}
