package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"nxtrix/internal/analytics"
	"nxtrix/internal/common"
	"nxtrix/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandlers serves the dashboard view and the deal analyzer.
type DashboardHandlers struct {
	dashboardService services.DashboardService
	leadService      services.LeadService
}

func NewDashboardHandlers(dashboardService services.DashboardService, leadService services.LeadService) *DashboardHandlers {
	return &DashboardHandlers{dashboardService: dashboardService, leadService: leadService}
}

// GetDashboard handles GET /v1/dashboard. refresh=true bypasses the lead snapshot cache.
func (h *DashboardHandlers) GetDashboard(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	refresh, _ := strconv.ParseBool(c.QueryParam("refresh"))

	dashboard, err := h.dashboardService.GetDashboard(c.Request().Context(), userID, refresh)
	if err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, dashboard)
}

type AnalyzeRequest struct {
	PropertyAddress string  `json:"property_address"`
	EstimatedValue  float64 `json:"estimated_value"`
	RepairCosts     float64 `json:"repair_costs"`
}

func (r AnalyzeRequest) analyze() (*analytics.DealAnalysis, error) {
	if r.EstimatedValue < 0 {
		return nil, common.NewValidationError("estimated_value", "estimated_value cannot be negative")
	}
	if r.RepairCosts < 0 {
		return nil, common.NewValidationError("repair_costs", "repair_costs cannot be negative")
	}
	analysis, err := analytics.Analyze(r.EstimatedValue, r.RepairCosts)
	if errors.Is(err, analytics.ErrZeroInvestment) {
		return nil, common.NewValidationError("estimated_value", err.Error())
	}
	return analysis, err
}

// Analyze handles POST /v1/analyzer
func (h *DashboardHandlers) Analyze(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	analysis, err := req.analyze()
	if err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, analysis)
}

// SaveAnalysis handles POST /v1/analyzer/leads
func (h *DashboardHandlers) SaveAnalysis(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if strings.TrimSpace(req.PropertyAddress) == "" {
		return common.SendValidationError(c, "property_address", "property_address is required")
	}
	analysis, err := req.analyze()
	if err != nil {
		return common.SendAppError(c, err)
	}

	lead, err := h.leadService.SaveAnalysisAsLead(c.Request().Context(), userID, req.PropertyAddress, analysis)
	if err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"lead": lead, "analysis": analysis})
}
