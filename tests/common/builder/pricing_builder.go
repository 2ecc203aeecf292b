//go:build unit || e2e

package builder

import (
	"time"

	"lounge-billing/internal/domain/pricing"
	"lounge-billing/internal/usecase/shared"
)

type PricingBuilder struct {
	Pricing pricing.PricingConfig
	Bonus   pricing.BonusConfig
}

func NewPricingBuilder() *PricingBuilder {
	return &PricingBuilder{
		Pricing: pricing.DefaultPricingConfig(),
		Bonus:   pricing.DefaultBonusConfig(),
	}
}

func (b *PricingBuilder) WithRate(gameType pricing.GameType, weekday, weekend int64) *PricingBuilder {
	b.Pricing.Rates[gameType] = pricing.RatePair{Weekday: pricing.MoneyFromInt(weekday), Weekend: pricing.MoneyFromInt(weekend)}
	return b
}

func (b *PricingBuilder) WithoutRate(gameType pricing.GameType) *PricingBuilder {
	delete(b.Pricing.Rates, gameType)
	return b
}

func (b *PricingBuilder) WithBufferMinutes(minutes int) *PricingBuilder {
	b.Pricing.BufferMinutes = &minutes
	return b
}

func (b *PricingBuilder) WithTimezone(tz string) *PricingBuilder {
	b.Pricing.Timezone = tz
	return b
}

func (b *PricingBuilder) WithBonus(gameType pricing.GameType, tiers pricing.BonusTiers) *PricingBuilder {
	b.Bonus[gameType] = pricing.DayBonus{Weekday: tiers, Weekend: tiers}
	return b
}

func (b *PricingBuilder) BuildPricing() pricing.PricingConfig {
	return b.Pricing
}

func (b *PricingBuilder) BuildBonus() pricing.BonusConfig {
	return b.Bonus
}

func (b *PricingBuilder) BuildStored(updatedAt time.Time) *shared.StoredConfig {
	p := b.Pricing
	return &shared.StoredConfig{Pricing: &p, Bonus: b.Bonus, UpdatedAt: updatedAt}
}

func (b *PricingBuilder) BuildTenantConfig() *shared.TenantConfig {
	return &shared.TenantConfig{
		Pricing:       b.Pricing,
		Bonus:         b.Bonus,
		PricingStored: true,
		BonusStored:   true,
	}
}
