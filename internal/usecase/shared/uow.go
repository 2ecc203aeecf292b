package shared

import (
	"context"
	"time"

	"lounge-billing/internal/domain/pricing"
	"lounge-billing/internal/infra/dbq"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	PricingConfigs() PricingConfigRepository
	Invoices() InvoiceRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() dbq.DBTX
}

type CommandReads interface {
	TenantConfig(ctx context.Context, tenantID uuid.UUID) (*StoredConfig, error)
	IdempotencyByKey(ctx context.Context, key, tenantID uuid.UUID) (*IdempotencyRecord, error)
}

type PricingConfigRepository interface {
	SavePricing(ctx context.Context, tx dbq.DBTX, tenantID uuid.UUID, cfg pricing.PricingConfig, at time.Time) error
	SaveBonus(ctx context.Context, tx dbq.DBTX, tenantID uuid.UUID, cfg pricing.BonusConfig, at time.Time) error
}

type InvoiceRepository interface {
	Create(ctx context.Context, tx dbq.DBTX, inv *InvoiceRecord) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx dbq.DBTX, key, tenantID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, tx dbq.DBTX, key, tenantID, invoiceID uuid.UUID) error
	ClaimExpired(ctx context.Context, tx dbq.DBTX, key, tenantID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
	Release(ctx context.Context, tx dbq.DBTX, key, tenantID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx dbq.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
