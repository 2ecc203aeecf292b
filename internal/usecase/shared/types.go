package shared

import (
	"time"

	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/domain/pricing"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	TenantID        uuid.UUID
	Status          string
	RequestHash     string
	ResultInvoiceID *uuid.UUID
	ExpiresAt       time.Time
}

func (r *IdempotencyRecord) ExpiredAt(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// StoredConfig is what a tenant has persisted. A nil part was never saved.
type StoredConfig struct {
	Pricing   *pricing.PricingConfig
	Bonus     pricing.BonusConfig
	UpdatedAt time.Time
}

// TenantConfig is the effective configuration: stored parts, defaults for the rest.
// It is the unit kept in ConfigCache.
type TenantConfig struct {
	Pricing       pricing.PricingConfig `json:"pricing"`
	Bonus         pricing.BonusConfig   `json:"bonus"`
	PricingStored bool                  `json:"pricingStored"`
	BonusStored   bool                  `json:"bonusStored"`
	UpdatedAt     *time.Time            `json:"updatedAt,omitempty"`
}

// Supersedes reports whether c may replace cached. A configuration with no
// stored row ranks below every stored one.
func (c *TenantConfig) Supersedes(cached *TenantConfig) bool {
	if cached == nil || cached.UpdatedAt == nil {
		return true
	}
	if c.UpdatedAt == nil {
		return false
	}
	return !c.UpdatedAt.Before(*cached.UpdatedAt)
}

func EffectiveConfig(stored *StoredConfig) *TenantConfig {
	cfg := &TenantConfig{
		Pricing: pricing.DefaultPricingConfig(),
		Bonus:   pricing.DefaultBonusConfig(),
	}
	if stored == nil {
		return cfg
	}
	if stored.Pricing != nil {
		cfg.Pricing = *stored.Pricing
		cfg.PricingStored = true
	}
	if stored.Bonus != nil {
		cfg.Bonus = stored.Bonus
		cfg.BonusStored = true
	}
	if !stored.UpdatedAt.IsZero() {
		updatedAt := stored.UpdatedAt
		cfg.UpdatedAt = &updatedAt
	}
	return cfg
}

// InvoiceRecord is a computed line ready to persist.
type InvoiceRecord struct {
	ID                   uuid.UUID
	TenantID             uuid.UUID
	StaffID              *uuid.UUID
	StationLabel         *string
	ExtraControllerUnits int64
	Snacks               []billing.SnackLine
	Line                 *billing.Line
	BilledAt             time.Time
}
