package analytics

import (
	"sort"

	"nxtrix/internal/common"
	"nxtrix/internal/models"
)

// DashboardMetrics are the headline figures shown on the dashboard.
type DashboardMetrics struct {
	TotalLeads          int            `json:"total_leads"`
	DealsInContract     int            `json:"deals_in_contract"`
	PipelineValue       float64        `json:"pipeline_value"`
	AvgROI              float64        `json:"avg_roi"`
	ConversionRate      float64        `json:"conversion_rate"`
	PipelineByStatus    map[string]int `json:"pipeline_by_status"`
	PipelineProgression float64        `json:"pipeline_progression"`
}

// RecentLead is a seller lead annotated with its ROI tier.
type RecentLead struct {
	*models.SellerLead
	Tier Tier `json:"tier"`
}

func TotalLeads(sellers []*models.SellerLead, buyers []*models.BuyerLead) int {
	return len(sellers) + len(buyers)
}

func DealsInContract(sellers []*models.SellerLead) int {
	return countStatus(sellers, models.SellerStatusInContract)
}

// PipelineValue sums ARV over sellers; a null ARV counts as 0.
func PipelineValue(sellers []*models.SellerLead) float64 {
	var total float64
	for _, lead := range sellers {
		total += common.SafeFloat64(lead.ARV)
	}
	return total
}

// AvgROI is the mean buyer ROI over sellers, or 0 when there are none.
func AvgROI(sellers []*models.SellerLead) float64 {
	if len(sellers) == 0 {
		return 0
	}
	var total float64
	for _, lead := range sellers {
		total += common.SafeFloat64(lead.BuyerROI)
	}
	return total / float64(len(sellers))
}

// ConversionRate is deals in contract over all leads as a percentage, 0 when there are no leads.
func ConversionRate(dealsInContract, totalLeads int) float64 {
	if totalLeads == 0 {
		return 0
	}
	return float64(dealsInContract) / float64(totalLeads) * 100
}

// PipelineByStatus counts sellers per status. Unrecognized statuses land in "Unknown".
func PipelineByStatus(sellers []*models.SellerLead) map[string]int {
	buckets := make(map[string]int)
	for _, lead := range sellers {
		buckets[lead.Status.DisplayStatus()]++
	}
	return buckets
}

// PipelineProgression is the share of sellers in contract or closed.
func PipelineProgression(sellers []*models.SellerLead) float64 {
	advanced := countStatus(sellers, models.SellerStatusInContract) + countStatus(sellers, models.SellerStatusClosed)
	return float64(advanced) / float64(max(1, len(sellers))) * 100
}

func ComputeMetrics(sellers []*models.SellerLead, buyers []*models.BuyerLead) DashboardMetrics {
	total := TotalLeads(sellers, buyers)
	inContract := DealsInContract(sellers)
	return DashboardMetrics{
		TotalLeads:          total,
		DealsInContract:     inContract,
		PipelineValue:       PipelineValue(sellers),
		AvgROI:              AvgROI(sellers),
		ConversionRate:      ConversionRate(inContract, total),
		PipelineByStatus:    PipelineByStatus(sellers),
		PipelineProgression: PipelineProgression(sellers),
	}
}

// RecentSellerLeads returns up to n sellers, newest first. Ties keep input order.
func RecentSellerLeads(sellers []*models.SellerLead, n int) []RecentLead {
	sorted := make([]*models.SellerLead, len(sellers))
	copy(sorted, sellers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}

	recent := make([]RecentLead, 0, len(sorted))
	for _, lead := range sorted {
		recent = append(recent, RecentLead{SellerLead: lead, Tier: TierForROI(common.SafeFloat64(lead.BuyerROI))})
	}
	return recent
}

func countStatus(sellers []*models.SellerLead, status models.SellerStatus) int {
	count := 0
	for _, lead := range sellers {
		if lead.Status == status {
			count++
		}
	}
	return count
}
