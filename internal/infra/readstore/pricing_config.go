package readstore

import (
	"context"
	"encoding/json"

	"lounge-billing/internal/domain/pricing"
	"lounge-billing/internal/infra"
	"lounge-billing/internal/infra/dbq"
	"lounge-billing/internal/pkg/pgconv"
	"lounge-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type PricingConfigReadQueries interface {
	GetTenantPricingConfig(ctx context.Context, db dbq.DBTX, tenantID uuid.UUID) (dbq.TenantPricingConfig, error)
}

type PricingConfigReadStore struct {
	queries PricingConfigReadQueries
	db      dbq.DBTX
}

func NewPricingConfigReadStore(queries PricingConfigReadQueries, db dbq.DBTX) *PricingConfigReadStore {
	return &PricingConfigReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByTenant decodes the stored documents. Legacy key spellings are
// normalized by the pricing decoders.
func (r *PricingConfigReadStore) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*shared.StoredConfig, error) {
	row, err := r.queries.GetTenantPricingConfig(ctx, r.db, tenantID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing config not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pricing config", err)
	}

	stored := &shared.StoredConfig{UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt)}

	if len(row.Pricing) > 0 {
		var cfg pricing.PricingConfig
		if err := json.Unmarshal(row.Pricing, &cfg); err != nil {
			return nil, infra.WrapRepoErr("stored pricing config is malformed", err, infra.KindCorruptData)
		}
		stored.Pricing = &cfg
	}

	if len(row.Bonus) > 0 {
		var cfg pricing.BonusConfig
		if err := json.Unmarshal(row.Bonus, &cfg); err != nil {
			return nil, infra.WrapRepoErr("stored bonus config is malformed", err, infra.KindCorruptData)
		}
		stored.Bonus = cfg
	}

	return stored, nil
}
