package billing

import (
	"errors"

	"lounge-billing/internal/domain/pricing"
)

var (
	ErrInvalidInput     = errors.New("invalid billing input")
	ErrNegativeElapsed  = errors.New("elapsed seconds cannot be negative")
	ErrNegativeUnits    = errors.New("extra controller units cannot be negative")
	ErrNegativeQuantity = errors.New("snack quantity cannot be negative")
	ErrNegativePrice    = errors.New("snack unit price cannot be negative")
	ErrMissingProvider  = errors.New("pricing provider is required")
)

type SnackLine struct {
	Name      string
	UnitPrice pricing.Money
	Quantity  int64
}

// Input is one invoice line as handed over by the station subsystem at billing time.
type Input struct {
	ElapsedSeconds       int64
	GameType             pricing.GameType
	ExtraControllerUnits int64
	Snacks               []SnackLine
}

func (in Input) Validate() error {
	if in.ElapsedSeconds < 0 {
		return errors.Join(ErrInvalidInput, ErrNegativeElapsed)
	}
	if in.ExtraControllerUnits < 0 {
		return errors.Join(ErrInvalidInput, ErrNegativeUnits)
	}
	for _, s := range in.Snacks {
		if s.Quantity < 0 {
			return errors.Join(ErrInvalidInput, ErrNegativeQuantity)
		}
		if s.UnitPrice.IsNegative() {
			return errors.Join(ErrInvalidInput, ErrNegativePrice)
		}
	}
	return nil
}

// Line is the computed breakdown for one session. ExtraTimeSeconds is for
// display only and never contributes to TotalCost.
type Line struct {
	GameType            pricing.GameType
	DayType             pricing.DayType
	ElapsedSeconds      int64
	PaidHours           int64
	BonusSeconds        int64
	ExtraTimeSeconds    int64
	HourlyRate          pricing.Money
	BaseCost            pricing.Money
	ExtraControllerCost pricing.Money
	SnackCost           pricing.Money
	TotalCost           pricing.Money
	Warnings            []pricing.Warning
}

func (l *Line) HasWarnings() bool {
	return len(l.Warnings) > 0
}
