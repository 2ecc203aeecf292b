package pricing

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"lounge-billing/internal/pkg/patch"
)

// Provider is the read side of a tenant's configuration as seen by the
// billing engine. Lookups for a game type that is not configured resolve to
// the System entry and report ok == false so the caller can surface a warning.
type Provider interface {
	Rate(gameType GameType, day DayType) (Money, bool)
	ExtraControllerRate() Money
	BufferMinutes() int
	BonusTiers(gameType GameType, day DayType) (BonusTiers, bool)
	Location() *time.Location
}

// Snapshot is an immutable, validated view of one tenant's pricing and bonus
// configuration.
type Snapshot struct {
	pricing  PricingConfig
	bonus    BonusConfig
	location *time.Location
}

var _ Provider = (*Snapshot)(nil)

func NewSnapshot(p PricingConfig, b BonusConfig, defaultTimezone string) (*Snapshot, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	tz := p.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}

	return &Snapshot{pricing: p, bonus: b, location: loc}, nil
}

// DefaultSnapshot is what a tenant that never saved configuration is billed with.
func DefaultSnapshot(defaultTimezone string) (*Snapshot, error) {
	return NewSnapshot(DefaultPricingConfig(), DefaultBonusConfig(), defaultTimezone)
}

func (s *Snapshot) Pricing() PricingConfig { return s.pricing }
func (s *Snapshot) Bonus() BonusConfig     { return s.bonus }

func (s *Snapshot) Rate(gameType GameType, day DayType) (Money, bool) {
	if pair, ok := s.pricing.Rates[gameType]; ok {
		return pair.For(day), true
	}
	if pair, ok := s.pricing.Rates[GameSystem]; ok {
		return pair.For(day), false
	}
	return DefaultPricingConfig().Rates[GameSystem].For(day), false
}

func (s *Snapshot) ExtraControllerRate() Money {
	return s.pricing.ExtraControllerRate
}

func (s *Snapshot) BufferMinutes() int {
	return patch.Coalesce(s.pricing.BufferMinutes, DefaultBufferMinutes)
}

func (s *Snapshot) BonusTiers(gameType GameType, day DayType) (BonusTiers, bool) {
	if days, ok := s.bonus[gameType]; ok {
		return days.For(day), true
	}
	if days, ok := s.bonus[GameSystem]; ok {
		return days.For(day), false
	}
	return BonusTiers{}, false
}

func (s *Snapshot) Location() *time.Location {
	return s.location
}
