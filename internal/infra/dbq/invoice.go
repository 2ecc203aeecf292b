package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const invoiceColumns = `
    id, tenant_id, staff_id, station_label, game_type, day_type,
    elapsed_seconds, paid_hours, bonus_seconds, extra_time_seconds,
    hourly_rate::text, base_cost::text, extra_controller_cost::text,
    snack_cost::text, total_cost::text, breakdown, billed_at, created_at
`

func scanInvoice(row interface{ Scan(dest ...any) error }) (Invoice, error) {
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.TenantID,
		&i.StaffID,
		&i.StationLabel,
		&i.GameType,
		&i.DayType,
		&i.ElapsedSeconds,
		&i.PaidHours,
		&i.BonusSeconds,
		&i.ExtraTimeSeconds,
		&i.HourlyRate,
		&i.BaseCost,
		&i.ExtraControllerCost,
		&i.SnackCost,
		&i.TotalCost,
		&i.Breakdown,
		&i.BilledAt,
		&i.CreatedAt,
	)
	return i, err
}

const createInvoice = `
INSERT INTO invoices (
    id, tenant_id, staff_id, station_label, game_type, day_type,
    elapsed_seconds, paid_hours, bonus_seconds, extra_time_seconds,
    hourly_rate, base_cost, extra_controller_cost, snack_cost, total_cost,
    breakdown, billed_at
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9, $10,
    $11::numeric, $12::numeric, $13::numeric, $14::numeric, $15::numeric,
    $16, $17
)
`

type CreateInvoiceParams struct {
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
}

func (q *Queries) CreateInvoice(ctx context.Context, db DBTX, arg CreateInvoiceParams) error {
	_, err := db.Exec(ctx, createInvoice,
		arg.ID,
		arg.TenantID,
		arg.StaffID,
		arg.StationLabel,
		arg.GameType,
		arg.DayType,
		arg.ElapsedSeconds,
		arg.PaidHours,
		arg.BonusSeconds,
		arg.ExtraTimeSeconds,
		arg.HourlyRate,
		arg.BaseCost,
		arg.ExtraControllerCost,
		arg.SnackCost,
		arg.TotalCost,
		arg.Breakdown,
		arg.BilledAt,
	)
	return err
}

const getInvoice = `SELECT` + invoiceColumns + `FROM invoices WHERE id = $1 AND tenant_id = $2`

type GetInvoiceParams struct {
	ID       uuid.UUID
	TenantID uuid.UUID
}

func (q *Queries) GetInvoice(ctx context.Context, db DBTX, arg GetInvoiceParams) (Invoice, error) {
	return scanInvoice(db.QueryRow(ctx, getInvoice, arg.ID, arg.TenantID))
}

// Keyset pagination on (billed_at, id), newest first. A NULL cursor starts at the top.
const listInvoicesByTenant = `SELECT` + invoiceColumns + `FROM invoices
WHERE tenant_id = $1
  AND ($2::timestamptz IS NULL OR (billed_at, id) < ($2::timestamptz, $3::uuid))
ORDER BY billed_at DESC, id DESC
LIMIT $4
`

type ListInvoicesByTenantParams struct {
	TenantID       uuid.UUID
	BeforeBilledAt pgtype.Timestamptz
	BeforeID       pgtype.UUID
	Limit          int32
}

func (q *Queries) ListInvoicesByTenant(ctx context.Context, db DBTX, arg ListInvoicesByTenantParams) ([]Invoice, error) {
	rows, err := db.Query(ctx, listInvoicesByTenant, arg.TenantID, arg.BeforeBilledAt, arg.BeforeID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Invoice
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
