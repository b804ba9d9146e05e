package middleware

import (
	"net/http"
	"time"

	"nxtrix/internal/common"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const tokenContextKey = "user"

// SupabaseClaims are the access token claims issued by the auth provider.
type SupabaseClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthConfig selects how access tokens are verified. JWKSURL wins when both are set.
type AuthConfig struct {
	JWTSecret string
	JWKSURL   string
}

// NewJWTMiddleware returns the echo-jwt middleware plus a cleanup func that stops JWKS refresh.
func NewJWTMiddleware(cfg AuthConfig, logger *zap.Logger) (echo.MiddlewareFunc, func(), error) {
	jwtConfig := echojwt.Config{
		ContextKey: tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(SupabaseClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Debug("Rejected access token", zap.Error(err))
			return common.SendUnauthorizedError(c)
		},
	}

	cleanup := func() {}
	if cfg.JWKSURL != "" {
		jwks, err := keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
			RefreshInterval:   time.Hour,
			RefreshRateLimit:  5 * time.Minute,
			RefreshUnknownKID: true,
			RefreshErrorHandler: func(err error) {
				logger.Warn("JWKS refresh failed", zap.Error(err))
			},
		})
		if err != nil {
			return nil, nil, err
		}
		jwtConfig.KeyFunc = jwks.Keyfunc
		cleanup = jwks.EndBackground
	} else {
		jwtConfig.SigningKey = []byte(cfg.JWTSecret)
		jwtConfig.SigningMethod = echojwt.AlgorithmHS256
	}

	return echojwt.WithConfig(jwtConfig), cleanup, nil
}

// RequireIdentity copies the verified subject and email onto the request context.
// It must run after the JWT middleware.
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(tokenContextKey).(*jwt.Token)
			if !ok {
				return common.SendUnauthorizedError(c)
			}
			claims, ok := token.Claims.(*SupabaseClaims)
			if !ok {
				return common.SendUnauthorizedError(c)
			}
			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, common.CreateErrorResponse("UNAUTHORIZED", "Invalid subject in token", nil))
			}

			ctx := common.WithUser(c.Request().Context(), userID, claims.Email)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
