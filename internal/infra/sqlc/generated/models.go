package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingDays struct {
	BookingID  uuid.UUID
	Day        pgtype.Date
	Rate       pgtype.Numeric
	Label      string
	IsSeasonal bool
}

type Bookings struct {
	ID           uuid.UUID
	SiteID       uuid.UUID
	TenantName   string
	TenantEmail  string
	StartDate    pgtype.Date
	EndDate      pgtype.Date
	Status       string
	Subtotal     pgtype.Numeric
	GstRate      pgtype.Numeric
	Gst          pgtype.Numeric
	Total        pgtype.Numeric
	WeekdayCount int32
	WeekendCount int32
	Note         pgtype.Text
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type SeasonalRates struct {
	ID          uuid.UUID
	SiteID      uuid.UUID
	Name        string
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	WeekdayRate pgtype.Numeric
	WeekendRate pgtype.Numeric
	WeeklyRate  pgtype.Numeric
	CreatedAt   pgtype.Timestamptz
}

type Sites struct {
	ID                 uuid.UUID
	Name               string
	CentreName         string
	PricePerDay        pgtype.Numeric
	PricePerWeek       pgtype.Numeric
	WeekendPricePerDay pgtype.Numeric
	IsActive           bool
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}
