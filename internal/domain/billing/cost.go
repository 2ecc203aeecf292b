package billing

import "lounge-billing/internal/domain/pricing"

type CostInput struct {
	PaidHours            int64
	HourlyRate           pricing.Money
	GameType             pricing.GameType
	ExtraControllerUnits int64
	ExtraControllerRate  pricing.Money
	Snacks               []SnackLine
}

type CostBreakdown struct {
	BaseCost            pricing.Money
	ExtraControllerCost pricing.Money
	SnackCost           pricing.Money
	TotalCost           pricing.Money
}

// ComposeCost sums the session charge, the extra-controller charge (Playstation
// only) and snacks. All arithmetic is decimal; the total is rounded once to
// minor units.
func ComposeCost(in CostInput) CostBreakdown {
	base := in.HourlyRate.Mul(in.PaidHours)

	controllers := pricing.ZeroMoney
	if in.GameType == pricing.GamePlaystation && in.ExtraControllerUnits > 0 {
		controllers = in.ExtraControllerRate.Mul(in.ExtraControllerUnits)
	}

	snacks := pricing.ZeroMoney
	for _, item := range in.Snacks {
		snacks = snacks.Add(item.UnitPrice.Mul(item.Quantity))
	}

	return CostBreakdown{
		BaseCost:            base.RoundMinor(),
		ExtraControllerCost: controllers.RoundMinor(),
		SnackCost:           snacks.RoundMinor(),
		TotalCost:           base.Add(controllers).Add(snacks).RoundMinor(),
	}
}
