package handlers

import (
	"context"
	"net/http"
	"time"

	"nxtrix/internal/caching"
	"nxtrix/internal/common"
	"nxtrix/internal/models"
	"nxtrix/internal/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const sessionTTL = 24 * time.Hour

// sessionStore keeps SessionContext values in the cache. Cache failures are logged and a
// fresh context is used instead.
type sessionStore struct {
	cache  caching.CacheService
	logger *zap.Logger
}

func newSessionStore(cache caching.CacheService, logger *zap.Logger) *sessionStore {
	return &sessionStore{cache: cache, logger: logger}
}

func (s *sessionStore) load(ctx context.Context, userID uuid.UUID) models.SessionContext {
	sc, err := s.cache.GetSessionContext(ctx, userID)
	if err != nil {
		s.logger.Warn("Session context read failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
	if sc == nil {
		return session.New(userID, false)
	}
	return *sc
}

func (s *sessionStore) save(ctx context.Context, sc models.SessionContext) {
	if err := s.cache.SetSessionContext(ctx, &sc, sessionTTL); err != nil {
		s.logger.Warn("Session context write failed", zap.String("user_id", sc.UserID.String()), zap.Error(err))
	}
}

func (s *sessionStore) clear(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.DeleteSessionContext(ctx, userID); err != nil {
		s.logger.Warn("Session context delete failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
}

// SessionHandlers exposes page navigation and modal state.
type SessionHandlers struct {
	sessions *sessionStore
}

func NewSessionHandlers(cacheService caching.CacheService, logger *zap.Logger) *SessionHandlers {
	return &SessionHandlers{sessions: newSessionStore(cacheService, logger)}
}

type NavigateRequest struct {
	Page string `json:"page"`
}

// GetSession handles GET /v1/session
func (h *SessionHandlers) GetSession(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	return c.JSON(http.StatusOK, h.sessions.load(c.Request().Context(), userID))
}

// Navigate handles POST /v1/session/navigate
func (h *SessionHandlers) Navigate(c echo.Context) error {
	var req NavigateRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	return h.transition(c, func(sc models.SessionContext) (models.SessionContext, error) {
		return session.Navigate(sc, models.Page(req.Page))
	})
}

// OpenModal handles PUT /v1/session/modals/:modal
func (h *SessionHandlers) OpenModal(c echo.Context) error {
	modal := models.Modal(c.Param("modal"))
	return h.transition(c, func(sc models.SessionContext) (models.SessionContext, error) {
		return session.OpenModal(sc, modal)
	})
}

// CloseModal handles DELETE /v1/session/modals/:modal
func (h *SessionHandlers) CloseModal(c echo.Context) error {
	modal := models.Modal(c.Param("modal"))
	return h.transition(c, func(sc models.SessionContext) (models.SessionContext, error) {
		return session.CloseModal(sc, modal)
	})
}

func (h *SessionHandlers) transition(c echo.Context, apply func(models.SessionContext) (models.SessionContext, error)) error {
	ctx := c.Request().Context()
	userID, ok := currentUserID(c)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	next, err := apply(h.sessions.load(ctx, userID))
	if err != nil {
		return common.SendAppError(c, err)
	}
	h.sessions.save(ctx, next)
	return c.JSON(http.StatusOK, next)
}
