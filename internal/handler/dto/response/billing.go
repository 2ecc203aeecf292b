package response

import (
	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/domain/pricing"

	"github.com/jinzhu/copier"
)

type WarningResponse struct {
	Code     string `json:"code"`
	GameType string `json:"game_type"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
}

type LineResponse struct {
	GameType            string            `json:"game_type"`
	DayType             string            `json:"day_type"`
	ElapsedSeconds      int64             `json:"elapsed_seconds"`
	PaidHours           int64             `json:"paid_hours"`
	BonusSeconds        int64             `json:"bonus_seconds"`
	ExtraTimeSeconds    int64             `json:"extra_time_seconds"`
	HourlyRate          pricing.Money     `json:"hourly_rate"`
	BaseCost            pricing.Money     `json:"base_cost"`
	ExtraControllerCost pricing.Money     `json:"extra_controller_cost"`
	SnackCost           pricing.Money     `json:"snack_cost"`
	TotalCost           pricing.Money     `json:"total_cost"`
	Warnings            []WarningResponse `json:"warnings" copier:"-"`
}

func FromLine(line *billing.Line) (*LineResponse, error) {
	res := &LineResponse{}
	if err := copier.Copy(res, line); err != nil {
		return nil, err
	}
	res.Warnings = fromWarnings(line.Warnings)
	return res, nil
}

func fromWarnings(ws []pricing.Warning) []WarningResponse {
	out := make([]WarningResponse, len(ws))
	for i, w := range ws {
		out[i] = WarningResponse{
			Code:     string(w.Code),
			GameType: w.GameType,
			Field:    w.Field,
			Message:  w.Message,
		}
	}
	return out
}
