package handlers

import (
	"net/http"

	"nxtrix/internal/common"
	"nxtrix/internal/services"

	"github.com/labstack/echo/v4"
)

type ExportHandlers struct {
	exportService services.ExportService
}

func NewExportHandlers(exportService services.ExportService) *ExportHandlers {
	return &ExportHandlers{exportService: exportService}
}

// ExportLeads handles POST /v1/exports/leads
func (h *ExportHandlers) ExportLeads(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	result, err := h.exportService.ExportLeads(c.Request().Context(), userID)
	if err != nil {
		return common.SendAppError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}
