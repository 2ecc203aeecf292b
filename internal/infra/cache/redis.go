package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"lounge-billing/internal/pkg/errs"
	"lounge-billing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "lounge:pricing"
	maxWatchRetries  = 5
)

// RedisConfigCache shares configurations between service instances.
type RedisConfigCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ shared.ConfigCache = (*RedisConfigCache)(nil)

func NewRedisConfigCache(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisConfigCache {
	trimmed := strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if trimmed == "" {
		trimmed = defaultKeyPrefix
	}
	return &RedisConfigCache{
		client: client,
		prefix: trimmed,
		ttl:    ttl,
	}
}

func (c *RedisConfigCache) key(tenantID uuid.UUID) string {
	return c.prefix + ":" + tenantID.String()
}

func (c *RedisConfigCache) Get(ctx context.Context, tenantID uuid.UUID) (*shared.TenantConfig, bool, error) {
	raw, err := c.client.Get(ctx, c.key(tenantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "redis get")
	}

	var cfg shared.TenantConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		// Entry written by an incompatible build; drop it and reload.
		_ = c.client.Del(ctx, c.key(tenantID)).Err()
		return nil, false, nil
	}
	return &cfg, true, nil
}

// SetIfNewer writes cfg under WATCH so a concurrent writer with a later
// UpdatedAt is never overwritten. An unreadable entry is replaced.
func (c *RedisConfigCache) SetIfNewer(ctx context.Context, tenantID uuid.UUID, cfg *shared.TenantConfig) (bool, error) {
	if cfg == nil {
		return false, nil
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return false, errs.Wrap(err, "encode cached config")
	}

	key := c.key(tenantID)
	var stored bool
	txf := func(tx *redis.Tx) error {
		stored = false
		current, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			var cached shared.TenantConfig
			if json.Unmarshal(current, &cached) == nil && !cfg.Supersedes(&cached) {
				return nil
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, c.ttl)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}

	for range maxWatchRetries {
		err := c.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return false, errs.Wrapf(err, "redis set %s", key)
		}
		return stored, nil
	}
	return false, errs.Newf("redis set %s: key kept changing", key)
}

func (c *RedisConfigCache) Invalidate(ctx context.Context, tenantID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(tenantID)).Err(); err != nil {
		return errs.Wrapf(err, "redis del %s", c.key(tenantID))
	}
	return nil
}
