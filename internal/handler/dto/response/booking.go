package response

import (
	"casual-leasing/internal/usecase/queries"
)

type CreateBookingResponse struct {
	ID string `json:"id"`
}

type BookingResponse struct {
	ID           string              `json:"id"`
	SiteID       string              `json:"siteId"`
	SiteName     string              `json:"siteName"`
	TenantName   string              `json:"tenantName"`
	TenantEmail  string              `json:"tenantEmail"`
	StartDate    string              `json:"startDate"`
	EndDate      string              `json:"endDate"`
	Status       string              `json:"status"`
	Subtotal     string              `json:"subtotal"`
	GSTRate      string              `json:"gstRate"`
	GST          string              `json:"gst"`
	Total        string              `json:"total"`
	WeekdayCount int                 `json:"weekdayCount"`
	WeekendCount int                 `json:"weekendCount"`
	Note         *string             `json:"note,omitempty"`
	Days         []*DayPriceResponse `json:"days"`
	CreatedAt    int64               `json:"createdAt"`
	UpdatedAt    int64               `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	days := make([]*DayPriceResponse, len(v.Days))
	for i, d := range v.Days {
		days[i] = &DayPriceResponse{
			Date:       date(d.Date),
			Rate:       money(d.Rate),
			Label:      d.Label,
			IsSeasonal: d.IsSeasonal,
		}
	}

	return &BookingResponse{
		ID:           v.ID.String(),
		SiteID:       v.SiteID.String(),
		SiteName:     v.SiteName,
		TenantName:   v.TenantName,
		TenantEmail:  v.TenantEmail,
		StartDate:    date(v.StartDate),
		EndDate:      date(v.EndDate),
		Status:       v.Status,
		Subtotal:     money(v.Subtotal),
		GSTRate:      v.GSTRate.String(),
		GST:          money(v.GST),
		Total:        money(v.Total),
		WeekdayCount: v.WeekdayCount,
		WeekendCount: v.WeekendCount,
		Note:         v.Note,
		Days:         days,
		CreatedAt:    v.CreatedAt.Unix(),
		UpdatedAt:    v.UpdatedAt.Unix(),
	}
}
