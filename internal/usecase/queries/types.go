package queries

import (
	"time"

	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/domain/pricing"

	"github.com/google/uuid"
)

// InvoiceView represents a persisted invoice line with its breakdown
type InvoiceView struct {
	ID                   uuid.UUID
	TenantID             uuid.UUID
	StaffID              *uuid.UUID
	StationLabel         *string
	GameType             string
	DayType              string
	ElapsedSeconds       int64
	PaidHours            int64
	BonusSeconds         int64
	ExtraTimeSeconds     int64
	HourlyRate           pricing.Money
	BaseCost             pricing.Money
	ExtraControllerCost  pricing.Money
	SnackCost            pricing.Money
	TotalCost            pricing.Money
	ExtraControllerUnits int64
	Snacks               []billing.SnackLine
	Warnings             []pricing.Warning
	BilledAt             time.Time
	CreatedAt            time.Time
}

// NotificationJobView represents a queued outbox job
type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PricingView is a tenant's effective configuration and whether it was stored
// or came from defaults.
type PricingView struct {
	Pricing   pricing.PricingConfig
	Stored    bool
	UpdatedAt *time.Time
}

type BonusView struct {
	Bonus     pricing.BonusConfig
	Stored    bool
	UpdatedAt *time.Time
}
