package response

import (
	"lounge-billing/internal/domain/pricing"
	"lounge-billing/internal/usecase/queries"
	"lounge-billing/internal/usecase/shared"
)

// Config documents keep their persisted camelCase shape.
type PricingResponse struct {
	Pricing   pricing.PricingConfig `json:"pricing"`
	Stored    bool                  `json:"stored"`
	UpdatedAt *int64                `json:"updated_at,omitempty"`
}

type BonusResponse struct {
	Bonus     pricing.BonusConfig `json:"bonus"`
	Stored    bool                `json:"stored"`
	UpdatedAt *int64              `json:"updated_at,omitempty"`
}

func FromPricingView(v *queries.PricingView) *PricingResponse {
	res := &PricingResponse{Pricing: v.Pricing, Stored: v.Stored}
	if v.UpdatedAt != nil {
		ts := v.UpdatedAt.Unix()
		res.UpdatedAt = &ts
	}
	return res
}

func FromBonusView(v *queries.BonusView) *BonusResponse {
	res := &BonusResponse{Bonus: v.Bonus, Stored: v.Stored}
	if v.UpdatedAt != nil {
		ts := v.UpdatedAt.Unix()
		res.UpdatedAt = &ts
	}
	return res
}

func PricingFromTenantConfig(cfg *shared.TenantConfig) *PricingResponse {
	return FromPricingView(&queries.PricingView{Pricing: cfg.Pricing, Stored: cfg.PricingStored, UpdatedAt: cfg.UpdatedAt})
}

func BonusFromTenantConfig(cfg *shared.TenantConfig) *BonusResponse {
	return FromBonusView(&queries.BonusView{Bonus: cfg.Bonus, Stored: cfg.BonusStored, UpdatedAt: cfg.UpdatedAt})
}
