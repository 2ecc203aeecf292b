package commands

import (
	"context"

	"lounge-billing/internal/domain/pricing"
	"lounge-billing/internal/pkg/clock"
	"lounge-billing/internal/pkg/errs"
	"lounge-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type PricingCommands interface {
	UpdatePricing(ctx context.Context, tenantID uuid.UUID, cfg pricing.PricingConfig) (*shared.TenantConfig, error)
	UpdateBonusConfig(ctx context.Context, tenantID uuid.UUID, cfg pricing.BonusConfig) (*shared.TenantConfig, error)
}

type pricingUseCaseImpl struct {
	uow    shared.UnitOfWork
	loader *shared.ConfigLoader
	clock  clock.Clock
}

func NewPricingUseCase(uow shared.UnitOfWork, loader *shared.ConfigLoader, clk clock.Clock) PricingCommands {
	return &pricingUseCaseImpl{
		uow:    uow,
		loader: loader,
		clock:  clk,
	}
}

func (uc *pricingUseCaseImpl) UpdatePricing(ctx context.Context, tenantID uuid.UUID, cfg pricing.PricingConfig) (*shared.TenantConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "pricing config rejected"), errs.ErrInvalidConfiguration)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PricingConfigs().SavePricing(ctx, tx.DB(), tenantID, cfg, uc.clock.Now())
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return uc.refresh(ctx, tenantID)
}

func (uc *pricingUseCaseImpl) UpdateBonusConfig(ctx context.Context, tenantID uuid.UUID, cfg pricing.BonusConfig) (*shared.TenantConfig, error) {
	if cfg == nil {
		cfg = pricing.BonusConfig{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "bonus config rejected"), errs.ErrInvalidConfiguration)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PricingConfigs().SaveBonus(ctx, tx.DB(), tenantID, cfg, uc.clock.Now())
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return uc.refresh(ctx, tenantID)
}

// refresh runs after commit. The saved row replaces the cached entry before
// the caller sees success.
func (uc *pricingUseCaseImpl) refresh(ctx context.Context, tenantID uuid.UUID) (*shared.TenantConfig, error) {
	return uc.loader.Refresh(ctx, tenantID)
}
