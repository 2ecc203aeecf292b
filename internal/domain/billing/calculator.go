package billing

import (
	"time"

	"lounge-billing/internal/domain/pricing"
)

const (
	FieldRate  = "rate"
	FieldBonus = "bonus"
)

type LineCalculator interface {
	ComputeInvoiceLine(in Input, provider pricing.Provider, billingInstant time.Time) (*Line, error)
}

// DefaultCalculator is stateless; every call works on the provider snapshot it is given.
type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

var _ LineCalculator = (*DefaultCalculator)(nil)

func (c *DefaultCalculator) ComputeInvoiceLine(in Input, provider pricing.Provider, billingInstant time.Time) (*Line, error) {
	if provider == nil {
		return nil, ErrMissingProvider
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var warnings []pricing.Warning

	gameType, known := in.GameType.Normalize()
	if !known {
		warnings = append(warnings, pricing.UnknownGameTypeWarning(in.GameType.String()))
	}

	day := NewDayClassifier(provider.Location()).Classify(billingInstant)

	tiers, ok := provider.BonusTiers(gameType, day)
	if !ok {
		warnings = append(warnings, pricing.ConfigurationMissingWarning(gameType, FieldBonus))
	}
	bonusSeconds := Bonus(in.ElapsedSeconds, tiers)

	bufferMinutes := provider.BufferMinutes()
	paidHours := BillableHours(in.ElapsedSeconds, bonusSeconds, bufferMinutes)

	rate, ok := provider.Rate(gameType, day)
	if !ok {
		warnings = append(warnings, pricing.ConfigurationMissingWarning(gameType, FieldRate))
	}

	cost := ComposeCost(CostInput{
		PaidHours:            paidHours,
		HourlyRate:           rate,
		GameType:             gameType,
		ExtraControllerUnits: in.ExtraControllerUnits,
		ExtraControllerRate:  provider.ExtraControllerRate(),
		Snacks:               in.Snacks,
	})

	var extra int64
	if gameType == pricing.GamePlaystation && day == pricing.Weekend {
		extra = extraTimeSeconds(in.ElapsedSeconds, bufferMinutes)
	}

	return &Line{
		GameType:            gameType,
		DayType:             day,
		ElapsedSeconds:      in.ElapsedSeconds,
		PaidHours:           paidHours,
		BonusSeconds:        bonusSeconds,
		ExtraTimeSeconds:    extra,
		HourlyRate:          rate,
		BaseCost:            cost.BaseCost,
		ExtraControllerCost: cost.ExtraControllerCost,
		SnackCost:           cost.SnackCost,
		TotalCost:           cost.TotalCost,
		Warnings:            warnings,
	}, nil
}
