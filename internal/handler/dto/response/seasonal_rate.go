package response

import (
	"casual-leasing/internal/domain/pricing"
)

type SeasonalRateResponse struct {
	ID          string  `json:"id"`
	SiteID      string  `json:"siteId"`
	Name        string  `json:"name"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	WeekdayRate *string `json:"weekdayRate"`
	WeekendRate *string `json:"weekendRate"`
	WeeklyRate  *string `json:"weeklyRate"`
}

func FromSeasonalRate(r *pricing.SeasonalRate) *SeasonalRateResponse {
	return &SeasonalRateResponse{
		ID:          r.ID.String(),
		SiteID:      r.SiteID.String(),
		Name:        r.Name,
		StartDate:   date(r.StartDate),
		EndDate:     date(r.EndDate),
		WeekdayRate: moneyPtr(r.WeekdayRate),
		WeekendRate: moneyPtr(r.WeekendRate),
		WeeklyRate:  moneyPtr(r.WeeklyRate),
	}
}

func FromSeasonalRates(rates []pricing.SeasonalRate) []*SeasonalRateResponse {
	res := make([]*SeasonalRateResponse, len(rates))
	for i := range rates {
		res[i] = FromSeasonalRate(&rates[i])
	}
	return res
}
