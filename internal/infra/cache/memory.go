package cache

import (
	"context"
	"maps"
	"sync"
	"time"

	"lounge-billing/internal/pkg/clock"
	"lounge-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type memoryEntry struct {
	cfg       shared.TenantConfig
	expiresAt time.Time
}

// MemoryConfigCache keeps configurations in process. Entries are copied on the
// way in and out so callers cannot mutate cached maps.
type MemoryConfigCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]memoryEntry
	ttl     time.Duration
	clock   clock.Clock
}

var _ shared.ConfigCache = (*MemoryConfigCache)(nil)

func NewMemoryConfigCache(ttl time.Duration, clk clock.Clock) *MemoryConfigCache {
	return &MemoryConfigCache{
		entries: make(map[uuid.UUID]memoryEntry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (c *MemoryConfigCache) Get(_ context.Context, tenantID uuid.UUID) (*shared.TenantConfig, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[tenantID]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if c.ttl > 0 && !c.clock.Now().Before(entry.expiresAt) {
		c.mu.Lock()
		if current, still := c.entries[tenantID]; still && current.expiresAt.Equal(entry.expiresAt) {
			delete(c.entries, tenantID)
		}
		c.mu.Unlock()
		return nil, false, nil
	}

	out := cloneConfig(entry.cfg)
	return &out, true, nil
}

// SetIfNewer stores cfg unless the entry already held for the tenant was
// updated later. Expired entries still take part in the comparison.
func (c *MemoryConfigCache) SetIfNewer(_ context.Context, tenantID uuid.UUID, cfg *shared.TenantConfig) (bool, error) {
	if cfg == nil {
		return false, nil
	}
	entry := memoryEntry{cfg: cloneConfig(*cfg)}
	if c.ttl > 0 {
		entry.expiresAt = c.clock.Now().Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if current, ok := c.entries[tenantID]; ok && !cfg.Supersedes(&current.cfg) {
		return false, nil
	}
	c.entries[tenantID] = entry
	return true, nil
}

func (c *MemoryConfigCache) Invalidate(_ context.Context, tenantID uuid.UUID) error {
	c.mu.Lock()
	delete(c.entries, tenantID)
	c.mu.Unlock()
	return nil
}

func (c *MemoryConfigCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func cloneConfig(in shared.TenantConfig) shared.TenantConfig {
	out := in
	out.Pricing.Rates = maps.Clone(in.Pricing.Rates)
	out.Bonus = maps.Clone(in.Bonus)
	if in.Pricing.BufferMinutes != nil {
		b := *in.Pricing.BufferMinutes
		out.Pricing.BufferMinutes = &b
	}
	if in.UpdatedAt != nil {
		t := *in.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
