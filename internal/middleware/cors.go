package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BillingCORS fixes CORS headers to a single allowed origin and answers preflight
// requests with 200 and an empty body before any handler runs.
func BillingCORS(allowedOrigin string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, allowedOrigin)
			h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")
			h.Set(echo.HeaderAccessControlAllowMethods, "POST, OPTIONS")
			h.Set(echo.HeaderAccessControlAllowCredentials, "true")

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}
