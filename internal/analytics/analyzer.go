package analytics

import "errors"

// ARVUplift is the fixed after-repair value multiplier applied to the estimated value.
const ARVUplift = 1.2

const (
	excellentROI = 20.0
	goodROI      = 15.0
)

var ErrZeroInvestment = errors.New("total investment must be greater than zero")

// Tier is the display grade of an ROI figure.
type Tier string

const (
	TierExcellent Tier = "Excellent/Hot"
	TierGood      Tier = "Good"
	TierCaution   Tier = "Caution"
)

// TierForROI grades roi for display. Both the analyzer and the recent lead list use it.
func TierForROI(roi float64) Tier {
	switch {
	case roi >= excellentROI:
		return TierExcellent
	case roi >= goodROI:
		return TierGood
	default:
		return TierCaution
	}
}

// DealAnalysis is the result of a quick flip estimate.
type DealAnalysis struct {
	EstimatedValue  float64 `json:"estimated_value"`
	RepairCosts     float64 `json:"repair_costs"`
	ARV             float64 `json:"arv"`
	TotalInvestment float64 `json:"total_investment"`
	PotentialROI    float64 `json:"potential_roi"`
	Tier            Tier    `json:"tier"`
}

// Analyze estimates ARV and ROI for a property bought at estimatedValue.
func Analyze(estimatedValue, repairCosts float64) (*DealAnalysis, error) {
	arv := estimatedValue * ARVUplift
	totalInvestment := estimatedValue + repairCosts
	if totalInvestment == 0 {
		return nil, ErrZeroInvestment
	}
	roi := (arv - totalInvestment) / totalInvestment * 100
	return &DealAnalysis{
		EstimatedValue:  estimatedValue,
		RepairCosts:     repairCosts,
		ARV:             arv,
		TotalInvestment: totalInvestment,
		PotentialROI:    roi,
		Tier:            TierForROI(roi),
	}, nil
}
