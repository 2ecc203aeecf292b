package response

import (
	"lounge-billing/internal/domain/pricing"
	"lounge-billing/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SnackResponse struct {
	Name      string        `json:"name"`
	UnitPrice pricing.Money `json:"unit_price"`
	Quantity  int64         `json:"quantity"`
}

type InvoiceResponse struct {
	ID                   string            `json:"id" copier:"-"`
	StaffID              *string           `json:"staff_id,omitempty" copier:"-"`
	StationLabel         *string           `json:"station_label,omitempty"`
	GameType             string            `json:"game_type"`
	DayType              string            `json:"day_type"`
	ElapsedSeconds       int64             `json:"elapsed_seconds"`
	PaidHours            int64             `json:"paid_hours"`
	BonusSeconds         int64             `json:"bonus_seconds"`
	ExtraTimeSeconds     int64             `json:"extra_time_seconds"`
	HourlyRate           pricing.Money     `json:"hourly_rate"`
	BaseCost             pricing.Money     `json:"base_cost"`
	ExtraControllerCost  pricing.Money     `json:"extra_controller_cost"`
	SnackCost            pricing.Money     `json:"snack_cost"`
	TotalCost            pricing.Money     `json:"total_cost"`
	ExtraControllerUnits int64             `json:"extra_controller_units"`
	Snacks               []SnackResponse   `json:"snacks" copier:"-"`
	Warnings             []WarningResponse `json:"warnings" copier:"-"`
	BilledAt             int64             `json:"billed_at" copier:"-"`
	CreatedAt            int64             `json:"created_at" copier:"-"`
}

func FromInvoiceView(v *queries.InvoiceView) (*InvoiceResponse, error) {
	res := &InvoiceResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}

	res.ID = v.ID.String()
	if v.StaffID != nil {
		s := v.StaffID.String()
		res.StaffID = &s
	}
	res.Snacks = make([]SnackResponse, len(v.Snacks))
	for i, s := range v.Snacks {
		res.Snacks[i] = SnackResponse{Name: s.Name, UnitPrice: s.UnitPrice, Quantity: s.Quantity}
	}
	res.Warnings = fromWarnings(v.Warnings)
	res.BilledAt = v.BilledAt.Unix()
	res.CreatedAt = v.CreatedAt.Unix()
	return res, nil
}

type InvoiceListResponse struct {
	Items      []*InvoiceResponse `json:"items"`
	NextCursor *string            `json:"next_cursor,omitempty"`
}

func FromInvoiceList(views []*queries.InvoiceView, next *queries.Cursor) (*InvoiceListResponse, error) {
	items := make([]*InvoiceResponse, len(views))
	for i, v := range views {
		item, err := FromInvoiceView(v)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	res := &InvoiceListResponse{Items: items}
	if next != nil && next.After != "" {
		after := next.After
		res.NextCursor = &after
	}
	return res, nil
}
