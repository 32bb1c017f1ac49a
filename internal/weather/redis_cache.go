package weather

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/namefreezers/weather-console/internal/weather/types"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachingFetcher serves repeated lookups of a city from Redis.
// Only complete successful records are stored, so every failure Outcome
// is produced by a fresh upstream call. Redis errors degrade to a miss.
type CachingFetcher struct {
	inner  Fetcher
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachingFetcher(inner Fetcher, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *CachingFetcher {
	return &CachingFetcher{inner: inner, redis: rdb, ttl: ttl, logger: logger}
}

func cacheKey(city string) string {
	return "weather:" + strings.ToLower(strings.TrimSpace(city))
}

func (c *CachingFetcher) FetchCurrent(ctx context.Context, city string) (types.Record, error) {
	key := cacheKey(city)
	if rec, ok := c.cached(ctx, key); ok {
		c.logger.Debug("weather served from cache", zap.String("city", city))
		return rec, nil
	}

	rec, err := c.inner.FetchCurrent(ctx, city)
	if err != nil {
		return rec, err
	}
	if verr := rec.Validate(); verr != nil {
		c.logger.Debug("incomplete record not cached", zap.String("city", city), zap.Error(verr))
		return rec, nil
	}
	c.remember(ctx, key, rec)
	return rec, nil
}

// cached reports a usable hit; lookup and decode problems count as a miss.
func (c *CachingFetcher) cached(ctx context.Context, key string) (types.Record, bool) {
	var rec types.Record
	raw, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return rec, false
	case err != nil:
		c.logger.Warn("weather cache read failed", zap.String("key", key), zap.Error(err))
		return rec, false
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		c.logger.Warn("weather cache entry corrupt", zap.String("key", key), zap.Error(err))
		return rec, false
	}
	return rec, true
}

func (c *CachingFetcher) remember(ctx context.Context, key string, rec types.Record) {
	blob, err := json.Marshal(rec)
	if err != nil {
		c.logger.Warn("weather cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.redis.Set(ctx, key, blob, c.ttl).Err(); err != nil {
		c.logger.Warn("weather cache write failed", zap.String("key", key), zap.Error(err))
	}
}
