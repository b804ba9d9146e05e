package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nxtrix/internal/caching"
	"nxtrix/internal/common"
	"nxtrix/internal/models"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	loginAttemptLimit  = 10
	loginAttemptWindow = 15 * time.Minute
)

// AuthService talks to the hosted auth provider.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	SignUp(ctx context.Context, email, password, fullName string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	CurrentIdentity(ctx context.Context, accessToken string) (*models.Identity, error)
}

// AuthResult is an identity plus its session. Session is nil when sign-up requires email confirmation.
type AuthResult struct {
	Identity models.Identity    `json:"identity"`
	Session  *models.AuthSession `json:"session,omitempty"`
}

type authService struct {
	http     *resty.Client
	cacheSvc caching.CacheService
	logger   *zap.Logger
}

type gotrueUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

type gotrueSession struct {
	AccessToken  string      `json:"access_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int         `json:"expires_in"`
	RefreshToken string      `json:"refresh_token"`
	User         *gotrueUser `json:"user"`

	// Sign-up without auto-confirm answers with the bare user.
	ID    string `json:"id"`
	Email string `json:"email"`
}

type gotrueError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e *gotrueError) text() string {
	for _, s := range []string{e.ErrorDescription, e.Msg, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// NewAuthService builds a client for <supabaseURL>/auth/v1.
func NewAuthService(supabaseURL, anonKey string, cacheSvc caching.CacheService, logger *zap.Logger) AuthService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(supabaseURL, "/")+"/auth/v1").
		SetTimeout(15*time.Second).
		SetHeader("apikey", anonKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &authService{
		http:     client,
		cacheSvc: cacheSvc,
		logger:   logger,
	}
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	if err := common.ValidateRequiredString(email, "email"); err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(password, "password"); err != nil {
		return nil, err
	}

	limitKey := "login:" + strings.ToLower(strings.TrimSpace(email))
	if s.cacheSvc != nil {
		limited, err := s.cacheSvc.IsRateLimited(ctx, limitKey, loginAttemptLimit, loginAttemptWindow)
		if err != nil {
			s.logger.Warn("Login rate limit check failed", zap.Error(err))
		} else if limited {
			return nil, common.NewAuthError("too many login attempts, try again later", nil)
		}
	}

	var session gotrueSession
	if err := s.call(ctx, "/token", "password", map[string]string{"email": email, "password": password}, &session); err != nil {
		return nil, err
	}

	if s.cacheSvc != nil {
		if err := s.cacheSvc.ResetRateLimit(ctx, limitKey); err != nil {
			s.logger.Warn("Failed to reset login rate limit", zap.Error(err))
		}
	}
	return toAuthResult(&session)
}

func (s *authService) SignUp(ctx context.Context, email, password, fullName string) (*AuthResult, error) {
	if err := common.ValidateRequiredString(email, "email"); err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(password, "password"); err != nil {
		return nil, err
	}

	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": fullName},
	}
	var session gotrueSession
	if err := s.call(ctx, "/signup", "", body, &session); err != nil {
		return nil, err
	}
	return toAuthResult(&session)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	if err := common.ValidateRequiredString(refreshToken, "refresh_token"); err != nil {
		return nil, err
	}

	var session gotrueSession
	if err := s.call(ctx, "/token", "refresh_token", map[string]string{"refresh_token": refreshToken}, &session); err != nil {
		return nil, err
	}
	return toAuthResult(&session)
}

func (s *authService) CurrentIdentity(ctx context.Context, accessToken string) (*models.Identity, error) {
	var user gotrueUser
	var apiErr gotrueError
	resp, err := s.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&user).
		SetError(&apiErr).
		Get("/user")
	if err != nil {
		return nil, common.NewAuthError("auth provider unreachable", err)
	}
	if resp.IsError() {
		return nil, common.NewAuthError(authMessage(&apiErr, resp.StatusCode()), nil)
	}
	return toIdentity(&user)
}

func (s *authService) call(ctx context.Context, path, grantType string, body any, result *gotrueSession) error {
	var apiErr gotrueError
	req := s.http.R()
	if grantType != "" {
		req.SetQueryParam("grant_type", grantType)
	}
	resp, err := req.
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		SetError(&apiErr).
		Post(path)
	if err != nil {
		s.logger.Error("Auth provider call failed", zap.String("path", path), zap.Error(err))
		return common.NewAuthError("auth provider unreachable", err)
	}
	if resp.IsError() {
		s.logger.Info("Auth provider rejected request", zap.String("path", path), zap.Int("status_code", resp.StatusCode()))
		return common.NewAuthError(authMessage(&apiErr, resp.StatusCode()), nil)
	}
	return nil
}

func authMessage(apiErr *gotrueError, status int) string {
	if msg := apiErr.text(); msg != "" {
		return msg
	}
	return fmt.Sprintf("auth provider returned status %d", status)
}

func toAuthResult(s *gotrueSession) (*AuthResult, error) {
	user := s.User
	if user == nil {
		user = &gotrueUser{ID: s.ID, Email: s.Email}
	}
	identity, err := toIdentity(user)
	if err != nil {
		return nil, err
	}

	result := &AuthResult{Identity: *identity}
	if s.AccessToken != "" {
		result.Session = &models.AuthSession{
			AccessToken:  s.AccessToken,
			TokenType:    s.TokenType,
			ExpiresIn:    s.ExpiresIn,
			RefreshToken: s.RefreshToken,
			IssuedAt:     time.Now(),
		}
	}
	return result, nil
}

func toIdentity(u *gotrueUser) (*models.Identity, error) {
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return nil, common.NewAuthError("auth provider returned an invalid user id", err)
	}
	metadata := make(map[string]string, len(u.UserMetadata))
	for k, v := range u.UserMetadata {
		if s, ok := v.(string); ok {
			metadata[k] = s
		}
	}
	return &models.Identity{ID: id, Email: u.Email, Metadata: metadata}, nil
}
