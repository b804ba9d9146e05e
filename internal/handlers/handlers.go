package handlers

import (
	"errors"
	"net/http"

	"nxtrix/internal/common"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// currentUserID returns the caller set by the identity middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	return common.GetUserIDFromContext(c.Request().Context())
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return common.ValidateUUID(c.Param(name), name)
}

// HTTPErrorHandler renders every error that escapes a handler in the standard envelope.
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message := http.StatusText(httpErr.Code)
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
			if writeErr := c.JSON(httpErr.Code, common.CreateErrorResponse("HTTP_ERROR", message, nil)); writeErr != nil {
				logger.Error("Failed to write error response", zap.Error(writeErr))
			}
			return
		}

		if common.HTTPStatus(err) == http.StatusInternalServerError {
			logger.Error("Unhandled error",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		if writeErr := common.SendAppError(c, err); writeErr != nil {
			logger.Error("Failed to write error response", zap.Error(writeErr))
		}
	}
}
