package converter

import (
	"encoding/json"
	"fmt"

	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/domain/pricing"
	"lounge-billing/internal/infra/dbq"
	"lounge-billing/internal/pkg/pgconv"
	"lounge-billing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

// InvoiceBreakdown is the jsonb document kept next to the flat invoice columns.
type InvoiceBreakdown struct {
	ExtraControllerUnits int64             `json:"extraControllerUnits"`
	Snacks               []SnackItem       `json:"snacks"`
	Warnings             []pricing.Warning `json:"warnings"`
}

type SnackItem struct {
	Name      string        `json:"name"`
	UnitPrice pricing.Money `json:"unitPrice"`
	Quantity  int64         `json:"quantity"`
}

func InvoiceToInfra(inv *shared.InvoiceRecord) (dbq.CreateInvoiceParams, error) {
	if inv.Line == nil {
		return dbq.CreateInvoiceParams{}, fmt.Errorf("invoice %s has no computed line", inv.ID)
	}
	line := inv.Line

	breakdown := InvoiceBreakdown{
		ExtraControllerUnits: inv.ExtraControllerUnits,
		Snacks:               make([]SnackItem, 0, len(inv.Snacks)),
		Warnings:             line.Warnings,
	}
	if breakdown.Warnings == nil {
		breakdown.Warnings = []pricing.Warning{}
	}
	for _, s := range inv.Snacks {
		breakdown.Snacks = append(breakdown.Snacks, SnackItem{Name: s.Name, UnitPrice: s.UnitPrice, Quantity: s.Quantity})
	}
	raw, err := json.Marshal(breakdown)
	if err != nil {
		return dbq.CreateInvoiceParams{}, fmt.Errorf("encode invoice breakdown: %w", err)
	}

	params := dbq.CreateInvoiceParams{
		ID:                  inv.ID,
		TenantID:            inv.TenantID,
		StaffID:             pgtype.UUID{Valid: false},
		StationLabel:        pgconv.StringPtrToPgtype(inv.StationLabel),
		GameType:            line.GameType.String(),
		DayType:             line.DayType.String(),
		ElapsedSeconds:      line.ElapsedSeconds,
		PaidHours:           line.PaidHours,
		BonusSeconds:        line.BonusSeconds,
		ExtraTimeSeconds:    line.ExtraTimeSeconds,
		HourlyRate:          pgconv.DecimalToText(line.HourlyRate.Decimal()),
		BaseCost:            pgconv.DecimalToText(line.BaseCost.Decimal()),
		ExtraControllerCost: pgconv.DecimalToText(line.ExtraControllerCost.Decimal()),
		SnackCost:           pgconv.DecimalToText(line.SnackCost.Decimal()),
		TotalCost:           pgconv.DecimalToText(line.TotalCost.Decimal()),
		Breakdown:           raw,
		BilledAt:            pgconv.TimeToPgtype(inv.BilledAt),
	}
	if inv.StaffID != nil {
		params.StaffID = pgconv.UUIDToPgtype(*inv.StaffID)
	}
	return params, nil
}

func DecodeBreakdown(raw []byte) (InvoiceBreakdown, error) {
	var b InvoiceBreakdown
	if len(raw) == 0 {
		return b, nil
	}
	if err := json.Unmarshal(raw, &b); err != nil {
		return InvoiceBreakdown{}, fmt.Errorf("decode invoice breakdown: %w", err)
	}
	return b, nil
}

func (b InvoiceBreakdown) SnackLines() []billing.SnackLine {
	lines := make([]billing.SnackLine, 0, len(b.Snacks))
	for _, s := range b.Snacks {
		lines = append(lines, billing.SnackLine{Name: s.Name, UnitPrice: s.UnitPrice, Quantity: s.Quantity})
	}
	return lines
}
