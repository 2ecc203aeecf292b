//go:build unit

package metrics_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"lounge-billing/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingMetrics(t *testing.T) {
	t.Run("fallbacks are counted per game type and field", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := metrics.NewBillingMetrics(reg)

		m.ConfigFallback("SteeringWheel", "rate")
		m.ConfigFallback("SteeringWheel", "rate")
		m.ConfigFallback("SteeringWheel", "bonus")

		expected := `
# HELP lounge_billing_config_fallback_total Lookups that fell back to System pricing because the game type was not configured
# TYPE lounge_billing_config_fallback_total counter
lounge_billing_config_fallback_total{field="bonus",game_type="SteeringWheel"} 1
lounge_billing_config_fallback_total{field="rate",game_type="SteeringWheel"} 2
`
		require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "lounge_billing_config_fallback_total"))
	})

	t.Run("paid hours are only observed for invoices", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := metrics.NewBillingMetrics(reg)

		m.LineComputed("Playstation", "weekend", metrics.ModePreview, 5)
		m.LineComputed("Playstation", "weekend", metrics.ModeInvoice, 5)

		lines, err := testutil.GatherAndCount(reg, "lounge_billing_lines_computed_total")
		require.NoError(t, err)
		assert.Equal(t, 2, lines)

		hours, err := testutil.GatherAndCount(reg, "lounge_billing_paid_hours")
		require.NoError(t, err)
		assert.Equal(t, 1, hours)
	})

	t.Run("long or empty labels are bounded", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := metrics.NewBillingMetrics(reg)

		m.ConfigFallback("", "rate")
		m.ConfigFallback(strings.Repeat("x", 100), "rate")
		m.ConfigFallback(strings.Repeat("x", 200), "rate")

		expected := `
# HELP lounge_billing_config_fallback_total Lookups that fell back to System pricing because the game type was not configured
# TYPE lounge_billing_config_fallback_total counter
lounge_billing_config_fallback_total{field="rate",game_type="unknown"} 1
lounge_billing_config_fallback_total{field="rate",game_type="` + strings.Repeat("x", 32) + `"} 2
`
		require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "lounge_billing_config_fallback_total"))
	})

	t.Run("cache lookups split hits and misses", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := metrics.NewBillingMetrics(reg)

		m.CacheLookup(true)
		m.CacheLookup(false)
		m.CacheLookup(false)

		expected := `
# HELP lounge_pricing_cache_lookups_total Tenant pricing snapshot cache lookups by result
# TYPE lounge_pricing_cache_lookups_total counter
lounge_pricing_cache_lookups_total{result="hit"} 1
lounge_pricing_cache_lookups_total{result="miss"} 2
`
		require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "lounge_pricing_cache_lookups_total"))
	})

	t.Run("nop metrics accept observations", func(t *testing.T) {
		m := metrics.NewNopBillingMetrics()
		assert.NotPanics(t, func() {
			m.CacheLookup(true)
			m.LineComputed("System", "weekday", metrics.ModeInvoice, 1)
		})
	})
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics(reg)

	m.Observe(http.MethodGet, "/api/invoices/:id", http.StatusOK, 10*time.Millisecond)
	m.Observe(http.MethodGet, "/api/invoices/:id", http.StatusNotFound, 5*time.Millisecond)
	m.Observe(http.MethodPost, "/api/invoices", http.StatusInternalServerError, 50*time.Millisecond)
	m.Observe(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	expected := `
# HELP lounge_http_request_errors_total Total number of HTTP errors surfaced to clients.
# TYPE lounge_http_request_errors_total counter
lounge_http_request_errors_total{method="GET",route="/api/invoices/:id",status_class="client_error"} 1
lounge_http_request_errors_total{method="GET",route="unmatched",status_class="client_error"} 1
lounge_http_request_errors_total{method="POST",route="/api/invoices",status_class="server_error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "lounge_http_request_errors_total"))

	total, err := testutil.GatherAndCount(reg, "lounge_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}
