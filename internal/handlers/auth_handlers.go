package handlers

import (
	"net/http"
	"strings"

	"nxtrix/internal/caching"
	"nxtrix/internal/common"
	"nxtrix/internal/models"
	"nxtrix/internal/services"
	"nxtrix/internal/session"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthHandlers handles sign-in, sign-up and onboarding.
type AuthHandlers struct {
	authService    services.AuthService
	profileService services.ProfileService
	leadService    services.LeadService
	sessions       *sessionStore
	logger         *zap.Logger
}

func NewAuthHandlers(authService services.AuthService, profileService services.ProfileService, leadService services.LeadService, cacheService caching.CacheService, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		authService:    authService,
		profileService: profileService,
		leadService:    leadService,
		sessions:       newSessionStore(cacheService, logger),
		logger:         logger,
	}
}

// LoginResponse is returned by login, signup and refresh.
type LoginResponse struct {
	Session         *models.AuthSession   `json:"session"`
	Profile         *models.Profile       `json:"profile"`
	NeedsOnboarding bool                  `json:"needs_onboarding"`
	SessionContext  models.SessionContext `json:"session_context"`
}

// Login handles POST /v1/auth/login
func (h *AuthHandlers) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return common.SendValidationError(c, "email", "Email and password are required")
	}

	result, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Login failed", zap.String("email", req.Email), zap.Error(err))
		return c.JSON(http.StatusUnauthorized, common.CreateErrorResponse(string(common.KindAuth), err.Error(), nil))
	}
	return h.establish(c, result, "")
}

// Signup handles POST /v1/auth/signup
func (h *AuthHandlers) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return common.SendValidationError(c, "email", "Email and password are required")
	}

	result, err := h.authService.SignUp(c.Request().Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		h.logger.Info("Signup failed", zap.String("email", req.Email), zap.Error(err))
		return c.JSON(http.StatusUnauthorized, common.CreateErrorResponse(string(common.KindAuth), err.Error(), nil))
	}
	if result.Session == nil {
		return c.JSON(http.StatusAccepted, map[string]any{
			"message": "Check your email to confirm your account",
		})
	}
	return h.establish(c, result, req.FullName)
}

// Refresh handles POST /v1/auth/refresh
func (h *AuthHandlers) Refresh(c echo.Context) error {
	var req models.RefreshTokenRequest
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return common.SendValidationError(c, "refresh_token", "Refresh token is required")
	}

	result, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, common.CreateErrorResponse(string(common.KindAuth), err.Error(), nil))
	}
	return h.establish(c, result, "")
}

// establish resolves the profile and starts a fresh session context. Store failures are logged
// and the caller continues with a transient profile.
func (h *AuthHandlers) establish(c echo.Context, result *services.AuthResult, fullName string) error {
	ctx := c.Request().Context()
	identity := result.Identity

	profile, err := h.profileService.ResolveProfile(ctx, identity, fullName)
	if err != nil {
		h.logger.Warn("Continuing with transient profile", zap.String("user_id", identity.ID.String()), zap.Error(err))
	}

	hasLeads, err := h.leadService.HasLeads(ctx, identity.ID)
	if err != nil {
		h.logger.Warn("Could not count leads", zap.String("user_id", identity.ID.String()), zap.Error(err))
	}
	needsOnboarding := h.profileService.NeedsOnboarding(profile, hasLeads)

	sc := session.New(identity.ID, needsOnboarding)
	h.sessions.save(ctx, sc)

	return c.JSON(http.StatusOK, LoginResponse{
		Session:         result.Session,
		Profile:         profile,
		NeedsOnboarding: needsOnboarding,
		SessionContext:  sc,
	})
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandlers) Logout(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	h.sessions.clear(c.Request().Context(), userID)
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /v1/auth/me
func (h *AuthHandlers) Me(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	email, _ := common.GetUserEmailFromContext(ctx)

	profile, err := h.profileService.ResolveProfile(ctx, models.Identity{ID: userID, Email: email}, "")
	if err != nil {
		h.logger.Warn("Continuing with transient profile", zap.String("user_id", userID.String()), zap.Error(err))
	}
	return c.JSON(http.StatusOK, map[string]any{"profile": profile})
}

// CompleteOnboarding handles POST /v1/profile/onboarding. Persisting the answers is best effort.
func (h *AuthHandlers) CompleteOnboarding(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var answers models.OnboardingAnswers
	if err := c.Bind(&answers); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := h.profileService.CompleteOnboarding(ctx, userID, answers); err != nil {
		h.logger.Warn("Onboarding answers not saved", zap.String("user_id", userID.String()), zap.Error(err))
	}

	sc := session.CompleteOnboarding(h.sessions.load(ctx, userID))
	h.sessions.save(ctx, sc)

	return c.JSON(http.StatusOK, map[string]any{
		"success":         true,
		"session_context": sc,
	})
}
