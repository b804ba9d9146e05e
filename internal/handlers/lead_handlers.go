package handlers

import (
	"net/http"

	"nxtrix/internal/common"
	"nxtrix/internal/models"
	"nxtrix/internal/services"

	"github.com/labstack/echo/v4"
)

// LeadHandlers serves seller and buyer lead CRUD for the calling user.
type LeadHandlers struct {
	leadService services.LeadService
}

func NewLeadHandlers(leadService services.LeadService) *LeadHandlers {
	return &LeadHandlers{leadService: leadService}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListSellerLeads handles GET /v1/leads/sellers
func (h *LeadHandlers) ListSellerLeads(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	leads, err := h.leadService.ListSellerLeads(c.Request().Context(), userID)
	if err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"leads": leads, "count": len(leads)})
}

// CreateSellerLead handles POST /v1/leads/sellers
func (h *LeadHandlers) CreateSellerLead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	var input models.SellerLeadInput
	if err := c.Bind(&input); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	lead, err := h.leadService.CreateSellerLead(c.Request().Context(), userID, input)
	if err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusCreated, lead)
}

// GetSellerLead handles GET /v1/leads/sellers/:id
func (h *LeadHandlers) GetSellerLead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return common.SendAppError(c, err)
	}
	lead, err := h.leadService.GetSellerLead(c.Request().Context(), userID, id)
	if err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// UpdateSellerLead handles PUT /v1/leads/sellers/:id
func (h *LeadHandlers) UpdateSellerLead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return common.SendAppError(c, err)
	}
	var input models.SellerLeadInput
	if err := c.Bind(&input); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	lead, err := h.leadService.UpdateSellerLead(c.Request().Context(), userID, id, input)
	if err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// UpdateSellerLeadStatus handles PATCH /v1/leads/sellers/:id/status
func (h *LeadHandlers) UpdateSellerLeadStatus(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return common.SendAppError(c, err)
	}
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := h.leadService.UpdateSellerLeadStatus(c.Request().Context(), userID, id, req.Status); err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"id": id, "status": req.Status})
}

// DeleteSellerLead handles DELETE /v1/leads/sellers/:id
func (h *LeadHandlers) DeleteSellerLead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return common.SendAppError(c, err)
	}
	if err := h.leadService.DeleteSellerLead(c.Request().Context(), userID, id); err != nil {
		return common.SendAppError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListBuyerLeads handles GET /v1/leads/buyers
func (h *LeadHandlers) ListBuyerLeads(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	leads, err := h.leadService.ListBuyerLeads(c.Request().Context(), userID)
	if err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"leads": leads, "count": len(leads)})
}

// CreateBuyerLead handles POST /v1/leads/buyers
func (h *LeadHandlers) CreateBuyerLead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	var input models.BuyerLeadInput
	if err := c.Bind(&input); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	lead, err := h.leadService.CreateBuyerLead(c.Request().Context(), userID, input)
	if err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusCreated, lead)
}

// GetBuyerLead handles GET /v1/leads/buyers/:id
func (h *LeadHandlers) GetBuyerLead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return common.SendAppError(c, err)
	}
	lead, err := h.leadService.GetBuyerLead(c.Request().Context(), userID, id)
	if err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// UpdateBuyerLead handles PUT /v1/leads/buyers/:id
func (h *LeadHandlers) UpdateBuyerLead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return common.SendAppError(c, err)
	}
	var input models.BuyerLeadInput
	if err := c.Bind(&input); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	lead, err := h.leadService.UpdateBuyerLead(c.Request().Context(), userID, id, input)
	if err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// UpdateBuyerLeadStatus handles PATCH /v1/leads/buyers/:id/status
func (h *LeadHandlers) UpdateBuyerLeadStatus(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return common.SendAppError(c, err)
	}
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := h.leadService.UpdateBuyerLeadStatus(c.Request().Context(), userID, id, req.Status); err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"id": id, "status": req.Status})
}

// DeleteBuyerLead handles DELETE /v1/leads/buyers/:id
func (h *LeadHandlers) DeleteBuyerLead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return common.SendAppError(c, err)
	}
	if err := h.leadService.DeleteBuyerLead(c.Request().Context(), userID, id); err != nil {
		return common.SendAppError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
