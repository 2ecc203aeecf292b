package dbq

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TenantPricingConfig struct {
	TenantID  uuid.UUID
	Pricing   []byte
	Bonus     []byte
	UpdatedAt pgtype.Timestamptz
}

// Invoice money columns are numeric(12,2) read back as text.
type Invoice struct {
	ID                  uuid.UUID
	TenantID            uuid.UUID
	StaffID             pgtype.UUID
	StationLabel        pgtype.Text
	GameType            string
	DayType             string
	ElapsedSeconds      int64
	PaidHours           int64
	BonusSeconds        int64
	ExtraTimeSeconds    int64
	HourlyRate          string
	BaseCost            string
	ExtraControllerCost string
	SnackCost           string
	TotalCost           string
	Breakdown           []byte
	BilledAt            pgtype.Timestamptz
	CreatedAt           pgtype.Timestamptz
}

type IdempotencyKey struct {
	Key             uuid.UUID
	TenantID        uuid.UUID
	Endpoint        string
	RequestHash     string
	Status          string
	ResultInvoiceID pgtype.UUID
	ExpiresAt       pgtype.Timestamptz
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
