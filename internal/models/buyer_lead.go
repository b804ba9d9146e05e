package models

import (
	"time"

	"github.com/google/uuid"
)

type BuyerStatus string

const (
	BuyerStatusActive   BuyerStatus = "Active"
	BuyerStatusInactive BuyerStatus = "Inactive"
	BuyerStatusClosed   BuyerStatus = "Closed"
)

func (s BuyerStatus) Valid() bool {
	switch s {
	case BuyerStatusActive, BuyerStatusInactive, BuyerStatusClosed:
		return true
	}
	return false
}

type PropertyType string

const (
	PropertyTypeSingleFamily PropertyType = "Single Family"
	PropertyTypeMultiFamily  PropertyType = "Multi-Family"
	PropertyTypeCommercial   PropertyType = "Commercial"
	PropertyTypeAny          PropertyType = "Any"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyTypeSingleFamily, PropertyTypeMultiFamily, PropertyTypeCommercial, PropertyTypeAny:
		return true
	}
	return false
}

const DefaultPreferredLocation = "Any"

type BuyerLead struct {
	ID                uuid.UUID    `json:"id" db:"id"`
	UserID            uuid.UUID    `json:"user_id" db:"user_id"`
	InvestorName      string       `json:"investor_name" db:"investor_name"`
	Email             string       `json:"email" db:"email"`
	Phone             string       `json:"phone" db:"phone"`
	MaxBudget         float64      `json:"max_budget" db:"max_budget"`
	MinROI            float64      `json:"min_roi" db:"min_roi"`
	PreferredLocation string       `json:"preferred_location" db:"preferred_location"`
	PropertyType      PropertyType `json:"property_type" db:"property_type"`
	Status            BuyerStatus  `json:"status" db:"status"`
	Notes             string       `json:"notes" db:"notes"`
	CreatedAt         time.Time    `json:"created_at" db:"created_at"`
}

// BuyerLeadInput carries the writable buyer lead fields.
type BuyerLeadInput struct {
	InvestorName      string  `json:"investor_name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	MaxBudget         float64 `json:"max_budget"`
	MinROI            float64 `json:"min_roi"`
	PreferredLocation string  `json:"preferred_location"`
	PropertyType      string  `json:"property_type"`
	Status            string  `json:"status"`
	Notes             string  `json:"notes"`
}
