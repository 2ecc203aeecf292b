//go:build unit

package billing_test

import (
	"testing"
	"time"

	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func TestDayClassifier(t *testing.T) {
	loc := kolkata(t)
	classifier := billing.NewDayClassifier(loc)

	t.Run("calendar days", func(t *testing.T) {
		// 2025-01-06 is a Monday.
		expected := []pricing.DayType{
			pricing.Weekday, pricing.Weekday, pricing.Weekday, pricing.Weekday, pricing.Weekday,
			pricing.Weekend, pricing.Weekend,
		}
		for i, want := range expected {
			instant := time.Date(2025, 1, 6+i, 12, 0, 0, 0, loc)
			assert.Equal(t, want, classifier.Classify(instant), instant.Weekday().String())
		}
	})

	t.Run("classified in the tenant's civil time", func(t *testing.T) {
		// Friday 19:00 UTC is already Saturday 00:30 in Kolkata.
		instant := time.Date(2025, 1, 3, 19, 0, 0, 0, time.UTC)
		assert.Equal(t, pricing.Weekend, classifier.Classify(instant))
		assert.Equal(t, pricing.Weekday, billing.NewDayClassifier(time.UTC).Classify(instant))
	})

	t.Run("nil location behaves as UTC", func(t *testing.T) {
		instant := time.Date(2025, 1, 5, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, pricing.Weekend, billing.NewDayClassifier(nil).Classify(instant))
		assert.Equal(t, pricing.Weekday, billing.NewDayClassifier(nil).Classify(instant.Add(time.Second)))
	})
}
