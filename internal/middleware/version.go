package middleware

import (
	"github.com/labstack/echo/v4"
)

const DefaultAPIVersion = "v1"

// APIVersionHeader stamps the served API version on every response of the group.
func APIVersionHeader(version string) echo.MiddlewareFunc {
	if version == "" {
		version = DefaultAPIVersion
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("X-API-Version", version)
			return next(c)
		}
	}
}
