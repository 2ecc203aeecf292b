//go:build unit

package billing_test

import (
	"testing"

	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func assertMoney(t *testing.T, want string, got pricing.Money, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, pricing.MustParseMoney(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func TestComposeCost(t *testing.T) {
	t.Run("playstation charges extra controllers", func(t *testing.T) {
		actual := billing.ComposeCost(billing.CostInput{
			PaidHours:            2,
			HourlyRate:           pricing.MoneyFromInt(150),
			GameType:             pricing.GamePlaystation,
			ExtraControllerUnits: 2,
			ExtraControllerRate:  pricing.MoneyFromInt(50),
		})

		assertMoney(t, "300", actual.BaseCost)
		assertMoney(t, "100", actual.ExtraControllerCost)
		assertMoney(t, "0", actual.SnackCost)
		assertMoney(t, "400", actual.TotalCost)
	})

	t.Run("extra controllers are ignored for other game types", func(t *testing.T) {
		for _, gt := range []pricing.GameType{pricing.GameSteeringWheel, pricing.GameSystem} {
			actual := billing.ComposeCost(billing.CostInput{
				PaidHours:            1,
				HourlyRate:           pricing.MoneyFromInt(150),
				GameType:             gt,
				ExtraControllerUnits: 3,
				ExtraControllerRate:  pricing.MoneyFromInt(50),
			})

			assertMoney(t, "0", actual.ExtraControllerCost, gt.String())
			assertMoney(t, "150", actual.TotalCost, gt.String())
		}
	})

	t.Run("snacks are summed exactly", func(t *testing.T) {
		actual := billing.ComposeCost(billing.CostInput{
			GameType: pricing.GameSystem,
			Snacks: []billing.SnackLine{
				{Name: "toffee", UnitPrice: pricing.MustParseMoney("0.1"), Quantity: 10},
				{Name: "cola", UnitPrice: pricing.MustParseMoney("40"), Quantity: 2},
			},
		})

		assertMoney(t, "81.00", actual.SnackCost)
		assertMoney(t, "81.00", actual.TotalCost)
	})

	t.Run("totals are rounded to minor units", func(t *testing.T) {
		actual := billing.ComposeCost(billing.CostInput{
			GameType: pricing.GameSystem,
			Snacks:   []billing.SnackLine{{Name: "mints", UnitPrice: pricing.MustParseMoney("0.333"), Quantity: 3}},
		})

		assertMoney(t, "1.00", actual.SnackCost)
		assertMoney(t, "1.00", actual.TotalCost)
	})
}
