package weather

import (
	"context"
	"fmt"

	"github.com/namefreezers/weather-console/internal/config"
	"github.com/namefreezers/weather-console/internal/weather/openweathermap"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildFetcher constructs the OpenWeatherMap client and, when cfg.RedisAddr
// is set, decorates it with a Redis cache using cfg.CacheTTL.
// Used by the API server and scheduler; the console talks to the client directly.
func BuildFetcher(cfg *config.Config, logger *zap.Logger) (Fetcher, error) {
	owm, err := openweathermap.NewClient(cfg.Weather, logger)
	if err != nil {
		return nil, fmt.Errorf("openweathermap client: %w", err)
	}

	if cfg.RedisAddr == "" {
		logger.Info("redis cache disabled, REDIS_ADDR is empty")
		return owm, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	logger.Info("redis cache enabled",
		zap.String("addr", cfg.RedisAddr),
		zap.Duration("ttl", cfg.CacheTTL),
	)
	return NewCachingFetcher(owm, rdb, cfg.CacheTTL, logger), nil
}
