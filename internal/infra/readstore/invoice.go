package readstore

import (
	"context"
	"time"

	"lounge-billing/internal/domain/pricing"
	"lounge-billing/internal/infra"
	"lounge-billing/internal/infra/dbq"
	"lounge-billing/internal/infra/repository/converter"
	"lounge-billing/internal/pkg/pgconv"
	"lounge-billing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InvoiceReadQueries interface {
	GetInvoice(ctx context.Context, db dbq.DBTX, arg dbq.GetInvoiceParams) (dbq.Invoice, error)
	ListInvoicesByTenant(ctx context.Context, db dbq.DBTX, arg dbq.ListInvoicesByTenantParams) ([]dbq.Invoice, error)
}

type InvoiceReadStore struct {
	queries InvoiceReadQueries
	db      dbq.DBTX
}

func NewInvoiceReadStore(queries InvoiceReadQueries, db dbq.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*queries.InvoiceView, error) {
	row, err := r.queries.GetInvoice(ctx, r.db, dbq.GetInvoiceParams{ID: id, TenantID: tenantID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get invoice by id", err)
	}
	return toInvoiceView(row)
}

// FindByTenant pages newest first. A zero `before` time starts at the top.
func (r *InvoiceReadStore) FindByTenant(ctx context.Context, tenantID uuid.UUID, beforeBilledAt time.Time, beforeID uuid.UUID, limit int32) ([]*queries.InvoiceView, error) {
	params := dbq.ListInvoicesByTenantParams{
		TenantID: tenantID,
		Limit:    limit,
	}
	if !beforeBilledAt.IsZero() {
		params.BeforeBilledAt = pgconv.TimeToPgtype(beforeBilledAt)
		params.BeforeID = pgconv.UUIDToPgtype(beforeID)
	} else {
		params.BeforeBilledAt = pgtype.Timestamptz{Valid: false}
		params.BeforeID = pgtype.UUID{Valid: false}
	}

	rows, err := r.queries.ListInvoicesByTenant(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices by tenant", err)
	}

	views := make([]*queries.InvoiceView, 0, len(rows))
	for _, row := range rows {
		v, err := toInvoiceView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toInvoiceView(row dbq.Invoice) (*queries.InvoiceView, error) {
	amounts := [...]string{row.HourlyRate, row.BaseCost, row.ExtraControllerCost, row.SnackCost, row.TotalCost}
	var parsed [len(amounts)]pricing.Money
	for i, raw := range amounts {
		m, err := pricing.ParseMoney(raw)
		if err != nil {
			return nil, infra.WrapRepoErr("invoice amount is malformed", err, infra.KindCorruptData)
		}
		parsed[i] = m
	}

	breakdown, err := converter.DecodeBreakdown(row.Breakdown)
	if err != nil {
		return nil, infra.WrapRepoErr("invoice breakdown is malformed", err, infra.KindCorruptData)
	}

	return &queries.InvoiceView{
		ID:                   row.ID,
		TenantID:             row.TenantID,
		StaffID:              pgconv.UUIDPtrFromPgtype(row.StaffID),
		StationLabel:         pgconv.StringPtrFromPgtype(row.StationLabel),
		GameType:             row.GameType,
		DayType:              row.DayType,
		ElapsedSeconds:       row.ElapsedSeconds,
		PaidHours:            row.PaidHours,
		BonusSeconds:         row.BonusSeconds,
		ExtraTimeSeconds:     row.ExtraTimeSeconds,
		HourlyRate:           parsed[0],
		BaseCost:             parsed[1],
		ExtraControllerCost:  parsed[2],
		SnackCost:            parsed[3],
		TotalCost:            parsed[4],
		ExtraControllerUnits: breakdown.ExtraControllerUnits,
		Snacks:               breakdown.SnackLines(),
		Warnings:             breakdown.Warnings,
		BilledAt:             pgconv.TimeFromPgtype(row.BilledAt),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
