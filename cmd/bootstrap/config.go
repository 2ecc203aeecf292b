package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"lounge-billing/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads the environment and validates the billing and cache sections.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if _, err := time.LoadLocation(cfg.Billing.DefaultTimezone); err != nil {
		return config.Config{}, fmt.Errorf("BILLING_DEFAULT_TIMEZONE %q: %w", cfg.Billing.DefaultTimezone, err)
	}
	if cfg.Billing.InvoiceListMax <= 0 {
		return config.Config{}, fmt.Errorf("BILLING_INVOICE_LIST_MAX must be positive, got %d", cfg.Billing.InvoiceListMax)
	}
	switch strings.ToLower(cfg.Cache.Backend) {
	case "", cacheBackendMemory, cacheBackendRedis:
	default:
		return config.Config{}, fmt.Errorf("unknown CACHE_BACKEND %q", cfg.Cache.Backend)
	}
	return cfg, nil
}
