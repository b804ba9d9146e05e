// Package session holds the dashboard page and modal state transitions.
// Every transition returns a new SessionContext and leaves its input unchanged.
package session

import (
	"time"

	"nxtrix/internal/common"
	"nxtrix/internal/models"

	"github.com/google/uuid"
)

var knownPages = map[models.Page]bool{
	models.PageDashboard:    true,
	models.PageSellerLeads:  true,
	models.PageBuyerLeads:   true,
	models.PageDealAnalyzer: true,
	models.PagePipeline:     true,
	models.PageAnalytics:    true,
	models.PageOnboarding:   true,
	models.PageBilling:      true,
}

var knownModals = map[models.Modal]bool{
	models.ModalAddSellerLead: true,
	models.ModalAddBuyerLead:  true,
	models.ModalDealAnalyzer:  true,
	models.ModalUpgrade:       true,
}

var now = time.Now

// New starts a session on the onboarding page when onboarding is required, else on the dashboard.
func New(userID uuid.UUID, onboardingRequired bool) models.SessionContext {
	page := models.PageDashboard
	if onboardingRequired {
		page = models.PageOnboarding
	}
	return models.SessionContext{
		UserID:             userID,
		CurrentPage:        page,
		OpenModals:         map[models.Modal]bool{},
		OnboardingRequired: onboardingRequired,
		UpdatedAt:          now(),
	}
}

func clone(sc models.SessionContext) models.SessionContext {
	modals := make(map[models.Modal]bool, len(sc.OpenModals))
	for m, open := range sc.OpenModals {
		if open {
			modals[m] = true
		}
	}
	sc.OpenModals = modals
	sc.UpdatedAt = now()
	return sc
}

// Navigate moves to page and closes all modals.
func Navigate(sc models.SessionContext, page models.Page) (models.SessionContext, error) {
	if !knownPages[page] {
		return sc, common.NewValidationError("page", "unknown page: "+string(page))
	}
	next := clone(sc)
	next.CurrentPage = page
	next.OpenModals = map[models.Modal]bool{}
	return next, nil
}

func OpenModal(sc models.SessionContext, modal models.Modal) (models.SessionContext, error) {
	if !knownModals[modal] {
		return sc, common.NewValidationError("modal", "unknown modal: "+string(modal))
	}
	next := clone(sc)
	next.OpenModals[modal] = true
	return next, nil
}

func CloseModal(sc models.SessionContext, modal models.Modal) (models.SessionContext, error) {
	if !knownModals[modal] {
		return sc, common.NewValidationError("modal", "unknown modal: "+string(modal))
	}
	next := clone(sc)
	delete(next.OpenModals, modal)
	return next, nil
}

// CompleteOnboarding clears the onboarding flag and lands on the dashboard.
func CompleteOnboarding(sc models.SessionContext) models.SessionContext {
	next := clone(sc)
	next.OnboardingRequired = false
	next.CurrentPage = models.PageDashboard
	return next
}
