package queries

import (
	"context"

	"lounge-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type PricingQueries interface {
	GetPricing(ctx context.Context, tenantID uuid.UUID) (*PricingView, error)
	GetBonus(ctx context.Context, tenantID uuid.UUID) (*BonusView, error)
}

type pricingQueriesImpl struct {
	loader *shared.ConfigLoader
}

func NewPricingQueries(loader *shared.ConfigLoader) PricingQueries {
	return &pricingQueriesImpl{loader: loader}
}

func (q *pricingQueriesImpl) GetPricing(ctx context.Context, tenantID uuid.UUID) (*PricingView, error) {
	cfg, err := q.loader.Load(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return &PricingView{Pricing: cfg.Pricing, Stored: cfg.PricingStored, UpdatedAt: cfg.UpdatedAt}, nil
}

func (q *pricingQueriesImpl) GetBonus(ctx context.Context, tenantID uuid.UUID) (*BonusView, error) {
	cfg, err := q.loader.Load(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return &BonusView{Bonus: cfg.Bonus, Stored: cfg.BonusStored, UpdatedAt: cfg.UpdatedAt}, nil
}
