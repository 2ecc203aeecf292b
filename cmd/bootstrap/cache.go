package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lounge-billing/internal/infra/cache"
	"lounge-billing/internal/pkg/clock"
	"lounge-billing/internal/pkg/config"
	"lounge-billing/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	cacheBackendMemory = "memory"
	cacheBackendRedis  = "redis"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewConfigCache,
	),
)

// NewConfigCache picks the pricing cache backend. Redis is shared across
// replicas; memory is per process.
func NewConfigCache(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (shared.ConfigCache, error) {
	switch strings.ToLower(cfg.Cache.Backend) {
	case "", cacheBackendMemory:
		return cache.NewMemoryConfigCache(cfg.Cache.TTL, clk), nil
	case cacheBackendRedis:
		client := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{cfg.Cache.RedisAddr},
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})

		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				defer cancel()
				if err := client.Ping(pingCtx).Err(); err != nil {
					return fmt.Errorf("failed to ping redis at %s: %w", cfg.Cache.RedisAddr, err)
				}
				slog.Info("pricing cache connected", "backend", cacheBackendRedis, "addr", cfg.Cache.RedisAddr)
				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return cache.NewRedisConfigCache(client, cfg.Cache.KeyPrefix, cfg.Cache.TTL), nil
	default:
		return nil, fmt.Errorf("unknown CACHE_BACKEND %q", cfg.Cache.Backend)
	}
}
