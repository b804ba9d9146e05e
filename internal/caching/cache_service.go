package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"nxtrix/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type CacheService interface {
	// Dashboard lead snapshot
	GetLeadSnapshot(ctx context.Context, userID uuid.UUID) (*models.LeadSnapshot, error)
	SetLeadSnapshot(ctx context.Context, userID uuid.UUID, snapshot *models.LeadSnapshot, ttl time.Duration) error

	// Session context
	GetSessionContext(ctx context.Context, userID uuid.UUID) (*models.SessionContext, error)
	SetSessionContext(ctx context.Context, sc *models.SessionContext, ttl time.Duration) error
	DeleteSessionContext(ctx context.Context, userID uuid.UUID) error

	// Rate limiting
	IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	ResetRateLimit(ctx context.Context, key string) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int, logger *zap.Logger) CacheService {
	// Accept redis://host:port as well as host:port
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		logger.Warn("Redis ping failed on initialization", zap.String("address", parsedAddr), zap.Error(pingErr))
	} else {
		logger.Debug("Redis connection established", zap.String("address", parsedAddr))
	}

	return &redisCacheService{client: client}
}

// NewCacheServiceFromClient wraps an existing client.
func NewCacheServiceFromClient(client *redis.Client) CacheService {
	return &redisCacheService{client: client}
}

func snapshotKey(userID uuid.UUID) string {
	return fmt.Sprintf("nxtrix:leads:%s", userID.String())
}

func sessionKey(userID uuid.UUID) string {
	return fmt.Sprintf("nxtrix:session:%s", userID.String())
}

func rateLimitKey(key string) string {
	return fmt.Sprintf("nxtrix:ratelimit:%s", key)
}

// getJSON returns false on a cache miss.
func (r *redisCacheService) getJSON(ctx context.Context, key string, v any) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisCacheService) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

// GetLeadSnapshot returns nil, nil on a miss.
func (r *redisCacheService) GetLeadSnapshot(ctx context.Context, userID uuid.UUID) (*models.LeadSnapshot, error) {
	var snapshot models.LeadSnapshot
	found, err := r.getJSON(ctx, snapshotKey(userID), &snapshot)
	if err != nil || !found {
		return nil, err
	}
	return &snapshot, nil
}

func (r *redisCacheService) SetLeadSnapshot(ctx context.Context, userID uuid.UUID, snapshot *models.LeadSnapshot, ttl time.Duration) error {
	return r.setJSON(ctx, snapshotKey(userID), snapshot, ttl)
}

// GetSessionContext returns nil, nil when the user has no stored session.
func (r *redisCacheService) GetSessionContext(ctx context.Context, userID uuid.UUID) (*models.SessionContext, error) {
	var sc models.SessionContext
	found, err := r.getJSON(ctx, sessionKey(userID), &sc)
	if err != nil || !found {
		return nil, err
	}
	return &sc, nil
}

func (r *redisCacheService) SetSessionContext(ctx context.Context, sc *models.SessionContext, ttl time.Duration) error {
	return r.setJSON(ctx, sessionKey(sc.UserID), sc, ttl)
}

func (r *redisCacheService) DeleteSessionContext(ctx context.Context, userID uuid.UUID) error {
	return r.client.Del(ctx, sessionKey(userID)).Err()
}

// IsRateLimited counts one attempt against key and reports whether the limit is exceeded.
func (r *redisCacheService) IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	cacheKey := rateLimitKey(key)

	// Window starts at the first attempt; NX keeps later attempts from extending it
	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, cacheKey)
		pipe.ExpireNX(ctx, cacheKey, window)
		return nil
	})
	if err != nil {
		return true, err
	}
	count := incr.Val()

	return count > int64(limit), nil
}

func (r *redisCacheService) ResetRateLimit(ctx context.Context, key string) error {
	return r.client.Del(ctx, rateLimitKey(key)).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
