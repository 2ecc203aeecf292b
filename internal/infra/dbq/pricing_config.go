package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getTenantPricingConfig = `
SELECT tenant_id, pricing, bonus, updated_at
FROM tenant_pricing_configs
WHERE tenant_id = $1
`

func (q *Queries) GetTenantPricingConfig(ctx context.Context, db DBTX, tenantID uuid.UUID) (TenantPricingConfig, error) {
	row := db.QueryRow(ctx, getTenantPricingConfig, tenantID)
	var i TenantPricingConfig
	err := row.Scan(&i.TenantID, &i.Pricing, &i.Bonus, &i.UpdatedAt)
	return i, err
}

const upsertTenantPricing = `
INSERT INTO tenant_pricing_configs (tenant_id, pricing, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (tenant_id) DO UPDATE
SET pricing = EXCLUDED.pricing, updated_at = EXCLUDED.updated_at
`

type UpsertTenantPricingParams struct {
	TenantID  uuid.UUID
	Pricing   []byte
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpsertTenantPricing(ctx context.Context, db DBTX, arg UpsertTenantPricingParams) error {
	_, err := db.Exec(ctx, upsertTenantPricing, arg.TenantID, arg.Pricing, arg.UpdatedAt)
	return err
}

const upsertTenantBonus = `
INSERT INTO tenant_pricing_configs (tenant_id, bonus, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (tenant_id) DO UPDATE
SET bonus = EXCLUDED.bonus, updated_at = EXCLUDED.updated_at
`

type UpsertTenantBonusParams struct {
	TenantID  uuid.UUID
	Bonus     []byte
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpsertTenantBonus(ctx context.Context, db DBTX, arg UpsertTenantBonusParams) error {
	_, err := db.Exec(ctx, upsertTenantBonus, arg.TenantID, arg.Bonus, arg.UpdatedAt)
	return err
}
