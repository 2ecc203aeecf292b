package request

import (
	"strings"
	"time"

	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/domain/pricing"
	"lounge-billing/internal/usecase/commands"
)

type SnackRequest struct {
	Name      string        `json:"name" binding:"required,max=100"`
	UnitPrice pricing.Money `json:"unit_price"`
	Quantity  int64         `json:"quantity"`
}

// BillingLineRequest carries what the station hands over at billing time.
// Negative amounts are rejected by the billing engine, not by binding.
type BillingLineRequest struct {
	GameType             string         `json:"game_type" binding:"required,max=50"`
	ElapsedSeconds       *int64         `json:"elapsed_seconds" binding:"required"`
	ExtraControllerUnits int64          `json:"extra_controller_units"`
	Snacks               []SnackRequest `json:"snacks" binding:"omitempty,max=100,dive"`
}

func (r *BillingLineRequest) ToInput() billing.Input {
	in := billing.Input{
		GameType:             pricing.GameType(strings.TrimSpace(r.GameType)),
		ExtraControllerUnits: r.ExtraControllerUnits,
	}
	if r.ElapsedSeconds != nil {
		in.ElapsedSeconds = *r.ElapsedSeconds
	}
	if len(r.Snacks) > 0 {
		in.Snacks = make([]billing.SnackLine, len(r.Snacks))
		for i, s := range r.Snacks {
			in.Snacks[i] = billing.SnackLine{Name: s.Name, UnitPrice: s.UnitPrice, Quantity: s.Quantity}
		}
	}
	return in
}

type PreviewRequest struct {
	BillingLineRequest
	// BillingInstant defaults to now; it decides weekday vs weekend pricing.
	BillingInstant *time.Time `json:"billing_instant"`
}

type CreateInvoiceRequest struct {
	BillingLineRequest
	StationLabel *string `json:"station_label" binding:"omitempty,max=64"`
}

func (r *CreateInvoiceRequest) ToCommand() commands.CreateInvoiceRequest {
	return commands.CreateInvoiceRequest{
		Input:        r.ToInput(),
		StationLabel: r.StationLabel,
	}
}
