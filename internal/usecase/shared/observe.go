package shared

import (
	"log/slog"

	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/domain/pricing"
	"lounge-billing/internal/pkg/metrics"

	"github.com/google/uuid"
)

// RecordLine logs the warnings of a computed line and feeds the billing metrics.
func RecordLine(m *metrics.BillingMetrics, tenantID uuid.UUID, line *billing.Line, mode string) {
	for _, w := range line.Warnings {
		slog.Warn("billing fallback applied",
			"tenant_id", tenantID.String(),
			"code", string(w.Code),
			"game_type", w.GameType,
			"field", w.Field,
			"mode", mode)
		if w.Code == pricing.CodeConfigurationMissing {
			m.ConfigFallback(w.GameType, w.Field)
		}
	}
	m.LineComputed(line.GameType.String(), line.DayType.String(), mode, line.PaidHours)
}
