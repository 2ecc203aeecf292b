//go:build unit

package pricing_test

import (
	"testing"

	"lounge-billing/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	t.Run("unconfigured game type falls back to system", func(t *testing.T) {
		snap, err := pricing.NewSnapshot(
			pricing.PricingConfig{Rates: map[pricing.GameType]pricing.RatePair{
				pricing.GameSystem: {Weekday: pricing.MoneyFromInt(80), Weekend: pricing.MoneyFromInt(95)},
			}},
			pricing.BonusConfig{pricing.GameSystem: {Weekend: pricing.BonusTiers{OneHour: 60}}},
			"UTC",
		)
		require.NoError(t, err)

		rate, ok := snap.Rate(pricing.GamePlaystation, pricing.Weekend)
		assert.False(t, ok)
		assert.True(t, pricing.MoneyFromInt(95).Equal(rate))

		tiers, ok := snap.BonusTiers(pricing.GameSteeringWheel, pricing.Weekend)
		assert.False(t, ok)
		assert.Equal(t, int64(60), tiers.OneHour)

		rate, ok = snap.Rate(pricing.GameSystem, pricing.Weekday)
		assert.True(t, ok)
		assert.True(t, pricing.MoneyFromInt(80).Equal(rate))
	})

	t.Run("empty configuration uses built-in system defaults", func(t *testing.T) {
		snap, err := pricing.NewSnapshot(pricing.PricingConfig{}, nil, "UTC")
		require.NoError(t, err)

		rate, ok := snap.Rate(pricing.GameSteeringWheel, pricing.Weekday)
		assert.False(t, ok)
		assert.True(t, pricing.MoneyFromInt(100).Equal(rate))

		tiers, ok := snap.BonusTiers(pricing.GamePlaystation, pricing.Weekday)
		assert.False(t, ok)
		assert.True(t, tiers.Disabled())
		assert.Equal(t, pricing.DefaultBufferMinutes, snap.BufferMinutes())
		assert.True(t, snap.ExtraControllerRate().IsZero())
	})

	t.Run("tenant timezone overrides the default", func(t *testing.T) {
		cfg := pricing.DefaultPricingConfig()
		cfg.Timezone = "Asia/Dubai"
		snap, err := pricing.NewSnapshot(cfg, pricing.DefaultBonusConfig(), "Asia/Kolkata")
		require.NoError(t, err)
		assert.Equal(t, "Asia/Dubai", snap.Location().String())

		snap, err = pricing.DefaultSnapshot("Asia/Kolkata")
		require.NoError(t, err)
		assert.Equal(t, "Asia/Kolkata", snap.Location().String())
	})

	t.Run("invalid configuration is rejected", func(t *testing.T) {
		_, err := pricing.DefaultSnapshot("Nowhere/Special")
		assert.ErrorIs(t, err, pricing.ErrInvalidTimezone)

		bad := pricing.DefaultBonusConfig()
		bad[pricing.GamePlaystation] = pricing.DayBonus{Weekday: pricing.BonusTiers{ThreeHours: -1}}
		_, err = pricing.NewSnapshot(pricing.DefaultPricingConfig(), bad, "UTC")
		assert.ErrorIs(t, err, pricing.ErrNegativeBonus)
	})
}

func TestNormalizeGameType(t *testing.T) {
	cases := []struct {
		raw      string
		expected pricing.GameType
		known    bool
	}{
		{raw: "Playstation", expected: pricing.GamePlaystation, known: true},
		{raw: "PlayStation", expected: pricing.GamePlaystation, known: true},
		{raw: "PS4", expected: pricing.GamePlaystation, known: true},
		{raw: " ps5 ", expected: pricing.GamePlaystation, known: true},
		{raw: "Play Station", expected: pricing.GamePlaystation, known: true},
		{raw: "steering_wheel", expected: pricing.GameSteeringWheel, known: true},
		{raw: "Steering-Wheel", expected: pricing.GameSteeringWheel, known: true},
		{raw: "Desktop", expected: pricing.GameSystem, known: true},
		{raw: "PC", expected: pricing.GameSystem, known: true},
		{raw: "Arcade", expected: pricing.GameSystem, known: false},
		{raw: "", expected: pricing.GameSystem, known: false},
	}
	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			gt, known := pricing.NormalizeGameType(c.raw)
			assert.Equal(t, c.expected, gt)
			assert.Equal(t, c.known, known)
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("json accepts numbers and numeric strings", func(t *testing.T) {
		var m pricing.Money
		require.NoError(t, m.UnmarshalJSON([]byte(`"12.50"`)))
		assert.True(t, pricing.MustParseMoney("12.5").Equal(m))
		require.NoError(t, m.UnmarshalJSON([]byte(`7`)))
		assert.True(t, pricing.MoneyFromInt(7).Equal(m))

		assert.ErrorIs(t, m.UnmarshalJSON([]byte(`"seven"`)), pricing.ErrInvalidMoney)
	})

	t.Run("encodes as a bare number", func(t *testing.T) {
		out, err := pricing.MustParseMoney("150.25").MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, "150.25", string(out))
	})

	t.Run("decimal arithmetic is exact", func(t *testing.T) {
		sum := pricing.ZeroMoney
		for range 10 {
			sum = sum.Add(pricing.MustParseMoney("0.1"))
		}
		assert.True(t, pricing.MoneyFromInt(1).Equal(sum))
		assert.Equal(t, "0.33", pricing.MustParseMoney("0.3333").RoundMinor().String())
	})

	t.Run("parse rejects garbage", func(t *testing.T) {
		_, err := pricing.ParseMoney("1,000")
		assert.ErrorIs(t, err, pricing.ErrInvalidMoney)
	})
}
