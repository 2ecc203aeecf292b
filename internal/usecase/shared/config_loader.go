package shared

import (
	"context"
	"log/slog"

	"lounge-billing/internal/domain/pricing"
	"lounge-billing/internal/infra"
	"lounge-billing/internal/pkg/config"
	"lounge-billing/internal/pkg/errs"
	"lounge-billing/internal/pkg/metrics"

	"github.com/google/uuid"
)

// ConfigLoader resolves a tenant's effective configuration: cache, then
// database, then built-in defaults. Cache failures degrade to a database read.
type ConfigLoader struct {
	uow             UnitOfWork
	cache           ConfigCache
	metrics         *metrics.BillingMetrics
	defaultTimezone string
}

func NewConfigLoader(uow UnitOfWork, cache ConfigCache, m *metrics.BillingMetrics, cfg config.Config) *ConfigLoader {
	return &ConfigLoader{
		uow:             uow,
		cache:           cache,
		metrics:         m,
		defaultTimezone: cfg.Billing.DefaultTimezone,
	}
}

func (l *ConfigLoader) Load(ctx context.Context, tenantID uuid.UUID) (*TenantConfig, error) {
	cached, ok, err := l.cache.Get(ctx, tenantID)
	if err != nil {
		slog.Warn("pricing cache read failed", "tenant_id", tenantID.String(), "error", err.Error())
	}
	if err == nil && ok {
		l.metrics.CacheLookup(true)
		return cached, nil
	}
	l.metrics.CacheLookup(false)

	effective, err := l.read(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if _, setErr := l.cache.SetIfNewer(ctx, tenantID, effective); setErr != nil {
		slog.Warn("pricing cache write failed", "tenant_id", tenantID.String(), "error", setErr.Error())
	}
	return effective, nil
}

// Refresh publishes the committed configuration without consulting the cached
// entry. Writers call it after commit and before returning.
func (l *ConfigLoader) Refresh(ctx context.Context, tenantID uuid.UUID) (*TenantConfig, error) {
	effective, err := l.read(ctx, tenantID)
	if err != nil {
		return nil, l.evict(ctx, tenantID, errs.Wrap(err, "reload tenant config"))
	}
	if _, err := l.cache.SetIfNewer(ctx, tenantID, effective); err != nil {
		return nil, l.evict(ctx, tenantID, errs.Wrap(err, "publish tenant config"))
	}
	return effective, nil
}

func (l *ConfigLoader) read(ctx context.Context, tenantID uuid.UUID) (*TenantConfig, error) {
	stored, err := l.uow.CommandReads().TenantConfig(ctx, tenantID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return EffectiveConfig(stored), nil
}

// evict drops the tenant's entry after a failed refresh. The write itself stands.
func (l *ConfigLoader) evict(ctx context.Context, tenantID uuid.UUID, cause error) error {
	if err := l.cache.Invalidate(ctx, tenantID); err != nil {
		slog.Error("pricing cache eviction failed", "tenant_id", tenantID.String(), "error", err.Error())
	}
	return errs.Mark(cause, errs.ErrConfigCacheStale)
}

func (l *ConfigLoader) Snapshot(ctx context.Context, tenantID uuid.UUID) (*pricing.Snapshot, error) {
	cfg, err := l.Load(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	snap, err := pricing.NewSnapshot(cfg.Pricing, cfg.Bonus, l.defaultTimezone)
	if err != nil {
		slog.Error("stored pricing configuration is unusable", "tenant_id", tenantID.String(), "error", err.Error())
		return nil, errs.Mark(errs.Wrap(err, "stored configuration is unusable"), errs.ErrStoredConfigUnusable)
	}
	return snap, nil
}

func (l *ConfigLoader) DefaultTimezone() string {
	return l.defaultTimezone
}
