package models

import (
	"time"

	"github.com/google/uuid"
)

type SellerStatus string

const (
	SellerStatusNew        SellerStatus = "New"
	SellerStatusContacted  SellerStatus = "Contacted"
	SellerStatusFollowUp   SellerStatus = "Follow-Up"
	SellerStatusInContract SellerStatus = "In Contract"
	SellerStatusClosed     SellerStatus = "Closed"
	SellerStatusDead       SellerStatus = "Dead"

	// StatusUnknown is the display bucket for values outside the enum.
	StatusUnknown = "Unknown"
)

// SellerStatuses lists the pipeline stages in display order.
var SellerStatuses = []SellerStatus{
	SellerStatusNew,
	SellerStatusContacted,
	SellerStatusFollowUp,
	SellerStatusInContract,
	SellerStatusClosed,
	SellerStatusDead,
}

func (s SellerStatus) Valid() bool {
	for _, known := range SellerStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// DisplayStatus returns the status, or "Unknown" when it is not a known stage.
func (s SellerStatus) DisplayStatus() string {
	if s.Valid() {
		return string(s)
	}
	return StatusUnknown
}

const (
	SourceManual       = "Manual"
	SourceDealAnalyzer = "AI Deal Finder"
)

type SellerLead struct {
	ID              uuid.UUID    `json:"id" db:"id"`
	UserID          uuid.UUID    `json:"user_id" db:"user_id"`
	PropertyAddress string       `json:"property_address" db:"property_address"`
	SellerName      string       `json:"seller_name" db:"seller_name"`
	SellerPhone     string       `json:"seller_phone" db:"seller_phone"`
	SellerEmail     string       `json:"seller_email" db:"seller_email"`
	AskingPrice     *float64     `json:"asking_price" db:"asking_price"`
	ARV             *float64     `json:"arv" db:"arv"`
	RepairCosts     *float64     `json:"repair_costs" db:"repair_costs"`
	BuyerROI        *float64     `json:"buyer_roi" db:"buyer_roi"`
	Status          SellerStatus `json:"status" db:"status"`
	Notes           string       `json:"notes" db:"notes"`
	Source          string       `json:"source" db:"source"`
	CreatedAt       time.Time    `json:"created_at" db:"created_at"`
}

// SellerLeadInput carries the writable seller lead fields.
type SellerLeadInput struct {
	PropertyAddress string   `json:"property_address"`
	SellerName      string   `json:"seller_name"`
	SellerPhone     string   `json:"seller_phone"`
	SellerEmail     string   `json:"seller_email"`
	AskingPrice     *float64 `json:"asking_price"`
	ARV             *float64 `json:"arv"`
	RepairCosts     *float64 `json:"repair_costs"`
	BuyerROI        *float64 `json:"buyer_roi"`
	Status          string   `json:"status"`
	Notes           string   `json:"notes"`
	Source          string   `json:"source"`
}
