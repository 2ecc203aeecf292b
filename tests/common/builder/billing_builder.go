//go:build unit || e2e

package builder

import (
	"time"

	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/domain/pricing"
	reqdto "lounge-billing/internal/handler/dto/request"
	"lounge-billing/internal/usecase/commands"
	"lounge-billing/internal/usecase/queries"
	"lounge-billing/internal/usecase/shared"

	"github.com/google/uuid"
)

type Snack struct {
	Name      string
	UnitPrice string
	Quantity  int64
}

// InvoiceBuilder defaults to a weekend Playstation session whose total is 1130.
type InvoiceBuilder struct {
	TenantID             uuid.UUID
	StaffID              uuid.UUID
	GameType             string
	ElapsedSeconds       int64
	ExtraControllerUnits int64
	Snacks               []Snack
	StationLabel         *string
	BilledAt             time.Time
}

func NewInvoiceBuilder() *InvoiceBuilder {
	label := "PS-03"
	loc, _ := time.LoadLocation("Asia/Kolkata")
	return &InvoiceBuilder{
		TenantID:             uuid.New(),
		StaffID:              uuid.New(),
		GameType:             string(pricing.GamePlaystation),
		ElapsedSeconds:       18533,
		ExtraControllerUnits: 2,
		Snacks:               []Snack{{Name: "chips", UnitPrice: "30", Quantity: 1}},
		StationLabel:         &label,
		BilledAt:             time.Date(2025, 1, 4, 18, 0, 0, 0, loc),
	}
}

func (b *InvoiceBuilder) With(mutate func(*InvoiceBuilder)) *InvoiceBuilder {
	mutate(b)
	return b
}

func (b *InvoiceBuilder) snackLines() []billing.SnackLine {
	if len(b.Snacks) == 0 {
		return nil
	}
	out := make([]billing.SnackLine, len(b.Snacks))
	for i, s := range b.Snacks {
		out[i] = billing.SnackLine{Name: s.Name, UnitPrice: pricing.MustParseMoney(s.UnitPrice), Quantity: s.Quantity}
	}
	return out
}

func (b *InvoiceBuilder) BuildInput() billing.Input {
	return billing.Input{
		ElapsedSeconds:       b.ElapsedSeconds,
		GameType:             pricing.GameType(b.GameType),
		ExtraControllerUnits: b.ExtraControllerUnits,
		Snacks:               b.snackLines(),
	}
}

func (b *InvoiceBuilder) BuildLineRequestDTO() reqdto.BillingLineRequest {
	elapsed := b.ElapsedSeconds
	snacks := make([]reqdto.SnackRequest, len(b.Snacks))
	for i, s := range b.Snacks {
		snacks[i] = reqdto.SnackRequest{Name: s.Name, UnitPrice: pricing.MustParseMoney(s.UnitPrice), Quantity: s.Quantity}
	}
	return reqdto.BillingLineRequest{
		GameType:             b.GameType,
		ElapsedSeconds:       &elapsed,
		ExtraControllerUnits: b.ExtraControllerUnits,
		Snacks:               snacks,
	}
}

func (b *InvoiceBuilder) BuildPreviewRequestDTO() reqdto.PreviewRequest {
	at := b.BilledAt
	return reqdto.PreviewRequest{BillingLineRequest: b.BuildLineRequestDTO(), BillingInstant: &at}
}

func (b *InvoiceBuilder) BuildCreateRequestDTO() reqdto.CreateInvoiceRequest {
	return reqdto.CreateInvoiceRequest{BillingLineRequest: b.BuildLineRequestDTO(), StationLabel: b.StationLabel}
}

func (b *InvoiceBuilder) BuildCommand() commands.CreateInvoiceRequest {
	return commands.CreateInvoiceRequest{Input: b.BuildInput(), StationLabel: b.StationLabel}
}

// BuildLine is the line the default configuration produces for the builder defaults.
func (b *InvoiceBuilder) BuildLine() *billing.Line {
	return &billing.Line{
		GameType:            pricing.GameType(b.GameType),
		DayType:             pricing.Weekend,
		ElapsedSeconds:      b.ElapsedSeconds,
		PaidHours:           5,
		BonusSeconds:        3600,
		ExtraTimeSeconds:    0,
		HourlyRate:          pricing.MoneyFromInt(200),
		BaseCost:            pricing.MoneyFromInt(1000),
		ExtraControllerCost: pricing.MoneyFromInt(100),
		SnackCost:           pricing.MoneyFromInt(30),
		TotalCost:           pricing.MoneyFromInt(1130),
	}
}

func (b *InvoiceBuilder) BuildRecord(id uuid.UUID) *shared.InvoiceRecord {
	staffID := b.StaffID
	return &shared.InvoiceRecord{
		ID:                   id,
		TenantID:             b.TenantID,
		StaffID:              &staffID,
		StationLabel:         b.StationLabel,
		ExtraControllerUnits: b.ExtraControllerUnits,
		Snacks:               b.snackLines(),
		Line:                 b.BuildLine(),
		BilledAt:             b.BilledAt,
	}
}

func (b *InvoiceBuilder) BuildView() *queries.InvoiceView {
	line := b.BuildLine()
	staffID := b.StaffID
	return &queries.InvoiceView{
		ID:                   uuid.New(),
		TenantID:             b.TenantID,
		StaffID:              &staffID,
		StationLabel:         b.StationLabel,
		GameType:             string(line.GameType),
		DayType:              string(line.DayType),
		ElapsedSeconds:       line.ElapsedSeconds,
		PaidHours:            line.PaidHours,
		BonusSeconds:         line.BonusSeconds,
		ExtraTimeSeconds:     line.ExtraTimeSeconds,
		HourlyRate:           line.HourlyRate,
		BaseCost:             line.BaseCost,
		ExtraControllerCost:  line.ExtraControllerCost,
		SnackCost:            line.SnackCost,
		TotalCost:            line.TotalCost,
		ExtraControllerUnits: b.ExtraControllerUnits,
		Snacks:               b.snackLines(),
		BilledAt:             b.BilledAt,
		CreatedAt:            b.BilledAt,
	}
}

// Fluent builder methods
func (b *InvoiceBuilder) WithTenantID(id uuid.UUID) *InvoiceBuilder {
	b.TenantID = id
	return b
}

func (b *InvoiceBuilder) WithGameType(gameType string) *InvoiceBuilder {
	b.GameType = gameType
	return b
}

func (b *InvoiceBuilder) WithElapsedSeconds(seconds int64) *InvoiceBuilder {
	b.ElapsedSeconds = seconds
	return b
}

func (b *InvoiceBuilder) WithoutExtras() *InvoiceBuilder {
	b.ExtraControllerUnits = 0
	b.Snacks = nil
	return b
}
