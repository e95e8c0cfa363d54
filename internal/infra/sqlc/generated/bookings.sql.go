// Accessors for queries/bookings.sql in the sqlc pgx/v5 layout.
// queries_internal_test.go fails when the two drift apart.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (
    id, site_id, tenant_name, tenant_email, start_date, end_date, status,
    subtotal, gst_rate, gst, total, weekday_count, weekend_count, note, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
)
RETURNING id
`

type CreateBookingParams struct {
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

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.SiteID,
		arg.TenantName,
		arg.TenantEmail,
		arg.StartDate,
		arg.EndDate,
		arg.Status,
		arg.Subtotal,
		arg.GstRate,
		arg.Gst,
		arg.Total,
		arg.WeekdayCount,
		arg.WeekendCount,
		arg.Note,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getBookingViewByID = `-- name: GetBookingViewByID :one
SELECT b.id, b.site_id, s.name AS site_name, b.tenant_name, b.tenant_email, b.start_date, b.end_date,
       b.status, b.subtotal, b.gst_rate, b.gst, b.total, b.weekday_count, b.weekend_count, b.note,
       b.created_at, b.updated_at
FROM bookings b
JOIN sites s ON s.id = b.site_id
WHERE b.id = $1
`

type GetBookingViewByIDRow struct {
	ID           uuid.UUID
	SiteID       uuid.UUID
	SiteName     string
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

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (GetBookingViewByIDRow, error) {
	row := db.QueryRow(ctx, getBookingViewByID, id)
	var i GetBookingViewByIDRow
	err := row.Scan(
		&i.ID,
		&i.SiteID,
		&i.SiteName,
		&i.TenantName,
		&i.TenantEmail,
		&i.StartDate,
		&i.EndDate,
		&i.Status,
		&i.Subtotal,
		&i.GstRate,
		&i.Gst,
		&i.Total,
		&i.WeekdayCount,
		&i.WeekendCount,
		&i.Note,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

type InsertBookingDaysParams struct {
	BookingID  uuid.UUID
	Day        pgtype.Date
	Rate       pgtype.Numeric
	Label      string
	IsSeasonal bool
}

const listBookingDays = `-- name: ListBookingDays :many
SELECT booking_id, day, rate, label, is_seasonal
FROM booking_days
WHERE booking_id = $1
ORDER BY day
`

func (q *Queries) ListBookingDays(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]BookingDays, error) {
	rows, err := db.Query(ctx, listBookingDays, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []BookingDays{}
	for rows.Next() {
		var i BookingDays
		if err := rows.Scan(
			&i.BookingID,
			&i.Day,
			&i.Rate,
			&i.Label,
			&i.IsSeasonal,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
