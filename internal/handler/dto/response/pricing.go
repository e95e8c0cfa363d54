package response

import (
	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/usecase/queries"
)

type DayPriceResponse struct {
	Date       string `json:"date"`
	Rate       string `json:"rate"`
	Label      string `json:"label"`
	IsSeasonal bool   `json:"isSeasonal"`
}

type SegmentResponse struct {
	Label        string  `json:"label"`
	IsSeasonal   bool    `json:"isSeasonal"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Days         int     `json:"days"`
	WeeksCharged int     `json:"weeksCharged"`
	WeeklyRate   *string `json:"weeklyRate,omitempty"`
	Amount       string  `json:"amount"`
}

type QuoteResponse struct {
	SiteID       string              `json:"siteId"`
	SiteName     string              `json:"siteName"`
	StartDate    string              `json:"startDate"`
	EndDate      string              `json:"endDate"`
	Subtotal     string              `json:"subtotal"`
	GSTRate      string              `json:"gstRate"`
	GST          string              `json:"gst"`
	Total        string              `json:"total"`
	WeekdayCount int                 `json:"weekdayCount"`
	WeekendCount int                 `json:"weekendCount"`
	Days         []*DayPriceResponse `json:"days"`
	Segments     []*SegmentResponse  `json:"segments"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		SiteID:       v.SiteID.String(),
		SiteName:     v.SiteName,
		StartDate:    date(v.StartDate),
		EndDate:      date(v.EndDate),
		Subtotal:     money(v.Subtotal),
		GSTRate:      v.GSTRate.String(),
		GST:          money(v.GST),
		Total:        money(v.Total),
		WeekdayCount: v.WeekdayCount,
		WeekendCount: v.WeekendCount,
		Days:         FromDayPrices(v.Days),
		Segments:     FromSegments(v.Segments),
	}
}

func FromDayPrices(days []pricing.DayPrice) []*DayPriceResponse {
	res := make([]*DayPriceResponse, len(days))
	for i, d := range days {
		res[i] = &DayPriceResponse{
			Date:       date(d.Date),
			Rate:       money(d.Rate),
			Label:      d.Label,
			IsSeasonal: d.IsSeasonal,
		}
	}
	return res
}

func FromSegments(segments []pricing.SegmentPrice) []*SegmentResponse {
	res := make([]*SegmentResponse, len(segments))
	for i, s := range segments {
		res[i] = &SegmentResponse{
			Label:        s.Source.Name(),
			IsSeasonal:   s.Source.IsSeasonal(),
			StartDate:    date(s.StartDate),
			EndDate:      date(s.EndDate),
			Days:         s.Days,
			WeeksCharged: s.WeeksCharged,
			WeeklyRate:   moneyPtr(s.WeeklyRate),
			Amount:       money(s.Amount),
		}
	}
	return res
}
