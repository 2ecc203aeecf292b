package repository

import (
	"context"
	"encoding/json"
	"time"

	"lounge-billing/internal/domain/pricing"
	"lounge-billing/internal/infra"
	"lounge-billing/internal/infra/dbq"
	"lounge-billing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PricingConfigWriteQueries interface {
	UpsertTenantPricing(ctx context.Context, db dbq.DBTX, arg dbq.UpsertTenantPricingParams) error
	UpsertTenantBonus(ctx context.Context, db dbq.DBTX, arg dbq.UpsertTenantBonusParams) error
}

type PricingConfigRepository struct {
	queries PricingConfigWriteQueries
}

func NewPricingConfigRepository(queries PricingConfigWriteQueries) *PricingConfigRepository {
	return &PricingConfigRepository{queries: queries}
}

func (r *PricingConfigRepository) SavePricing(ctx context.Context, tx dbq.DBTX, tenantID uuid.UUID, cfg pricing.PricingConfig, at time.Time) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return infra.WrapRepoErr("failed to encode pricing config", err, infra.KindCorruptData)
	}

	params := dbq.UpsertTenantPricingParams{
		TenantID:  tenantID,
		Pricing:   raw,
		UpdatedAt: pgconv.TimeToPgtype(at),
	}
	if err := r.queries.UpsertTenantPricing(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to upsert pricing config", err)
	}
	return nil
}

func (r *PricingConfigRepository) SaveBonus(ctx context.Context, tx dbq.DBTX, tenantID uuid.UUID, cfg pricing.BonusConfig, at time.Time) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return infra.WrapRepoErr("failed to encode bonus config", err, infra.KindCorruptData)
	}

	params := dbq.UpsertTenantBonusParams{
		TenantID:  tenantID,
		Bonus:     raw,
		UpdatedAt: pgconv.TimeToPgtype(at),
	}
	if err := r.queries.UpsertTenantBonus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to upsert bonus config", err)
	}
	return nil
}
