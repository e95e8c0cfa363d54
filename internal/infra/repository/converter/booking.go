package converter

import (
	"casual-leasing/internal/domain/booking"
	sqlc "casual-leasing/internal/infra/sqlc/generated"
	"casual-leasing/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	period := b.Period()
	amounts := b.Amounts()

	params := sqlc.CreateBookingParams{
		ID:           b.ID(),
		SiteID:       b.SiteID(),
		TenantName:   b.Tenant().Name(),
		TenantEmail:  b.Tenant().Email(),
		StartDate:    pgconv.DateToPgtype(period.Start()),
		EndDate:      pgconv.DateToPgtype(period.End()),
		Status:       b.Status().String(),
		Subtotal:     pgconv.DecimalToNumeric(amounts.Subtotal().Round(2)),
		GstRate:      pgconv.DecimalToNumeric(amounts.TaxRate()),
		Gst:          pgconv.DecimalToNumeric(amounts.Tax()),
		Total:        pgconv.DecimalToNumeric(amounts.Total()),
		WeekdayCount: int32(b.WeekdayCount()), // #nosec G115 -- bounded by the maximum booking length
		WeekendCount: int32(b.WeekendCount()), // #nosec G115 -- bounded by the maximum booking length
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(b.UpdatedAt()),
	}

	if !b.Note().IsEmpty() {
		note := b.Note().String()
		params.Note = pgconv.StringPtrToPgtype(&note)
	}

	return params
}

func BookingDaysToParams(b *booking.Booking) []sqlc.InsertBookingDaysParams {
	days := b.Days()
	params := make([]sqlc.InsertBookingDaysParams, len(days))
	for i, d := range days {
		params[i] = sqlc.InsertBookingDaysParams{
			BookingID:  b.ID(),
			Day:        pgconv.DateToPgtype(d.Date),
			Rate:       pgconv.DecimalToNumeric(d.Rate),
			Label:      d.Label,
			IsSeasonal: d.IsSeasonal,
		}
	}
	return params
}
