package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const maxLabelLen = 32

// sanitizeLabel keeps label cardinality bounded: game types come from request
// bodies, so unknown spellings must not explode the series count.
func sanitizeLabel(s string) string {
	if s == "" {
		return "unknown"
	}
	s = strings.ReplaceAll(s, " ", "_")
	if len(s) > maxLabelLen {
		s = s[:maxLabelLen]
	}
	return s
}

// BillingMetrics manages Prometheus instrumentation for invoice computation.
type BillingMetrics struct {
	configFallback *prometheus.CounterVec
	linesComputed  *prometheus.CounterVec
	paidHours      *prometheus.HistogramVec
	cacheLookups   *prometheus.CounterVec
}

func NewBillingMetrics(reg prometheus.Registerer) *BillingMetrics {
	m := &BillingMetrics{
		configFallback: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lounge",
				Subsystem: "billing",
				Name:      "config_fallback_total",
				Help:      "Lookups that fell back to System pricing because the game type was not configured",
			},
			[]string{"game_type", "field"},
		),
		linesComputed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lounge",
				Subsystem: "billing",
				Name:      "lines_computed_total",
				Help:      "Invoice lines computed by game type, day type and mode (preview or invoice)",
			},
			[]string{"game_type", "day_type", "mode"},
		),
		paidHours: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "lounge",
				Subsystem: "billing",
				Name:      "paid_hours",
				Help:      "Distribution of paid hours per invoiced session",
				Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10, 12},
			},
			[]string{"game_type"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lounge",
				Subsystem: "pricing",
				Name:      "cache_lookups_total",
				Help:      "Tenant pricing snapshot cache lookups by result",
			},
			[]string{"result"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.configFallback, m.linesComputed, m.paidHours, m.cacheLookups)
	}
	return m
}

// NewNopBillingMetrics returns unregistered collectors, for tests and the CLI.
func NewNopBillingMetrics() *BillingMetrics {
	return NewBillingMetrics(nil)
}

func (m *BillingMetrics) ConfigFallback(gameType, field string) {
	m.configFallback.WithLabelValues(sanitizeLabel(gameType), sanitizeLabel(field)).Inc()
}

func (m *BillingMetrics) LineComputed(gameType, dayType, mode string, paidHours int64) {
	m.linesComputed.WithLabelValues(sanitizeLabel(gameType), sanitizeLabel(dayType), mode).Inc()
	if mode == ModeInvoice {
		m.paidHours.WithLabelValues(sanitizeLabel(gameType)).Observe(float64(paidHours))
	}
}

func (m *BillingMetrics) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

const (
	ModePreview = "preview"
	ModeInvoice = "invoice"
)
