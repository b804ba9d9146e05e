package models

import (
	"time"

	"github.com/google/uuid"
)

type Page string

const (
	PageDashboard    Page = "dashboard"
	PageSellerLeads  Page = "seller_leads"
	PageBuyerLeads   Page = "buyer_leads"
	PageDealAnalyzer Page = "deal_analyzer"
	PagePipeline     Page = "pipeline"
	PageAnalytics    Page = "analytics"
	PageOnboarding   Page = "onboarding"
	PageBilling      Page = "billing"
)

type Modal string

const (
	ModalAddSellerLead Modal = "add_seller_lead"
	ModalAddBuyerLead  Modal = "add_buyer_lead"
	ModalDealAnalyzer  Modal = "deal_analyzer"
	ModalUpgrade       Modal = "upgrade"
)

// SessionContext is the serializable page and modal state of one dashboard session.
type SessionContext struct {
	UserID             uuid.UUID      `json:"user_id"`
	CurrentPage        Page           `json:"current_page"`
	OpenModals         map[Modal]bool `json:"open_modals"`
	OnboardingRequired bool           `json:"onboarding_required"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// LeadSnapshot is the per-user dashboard cache value.
type LeadSnapshot struct {
	SellerLeads []*SellerLead `json:"seller_leads"`
	BuyerLeads  []*BuyerLead  `json:"buyer_leads"`
	TotalLeads  int           `json:"total_leads"`
	CachedAt    time.Time     `json:"cached_at"`
}
