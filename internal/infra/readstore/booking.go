package readstore

import (
	"context"
	"time"

	"casual-leasing/internal/infra"
	sqlc "casual-leasing/internal/infra/sqlc/generated"
	"casual-leasing/internal/pkg/pgconv"
	"casual-leasing/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListBookingDays(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingDays, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}

	dayRows, err := r.queries.ListBookingDays(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking days", err)
	}

	view, err := mapBookingView(row, dayRows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err, infra.KindDBFailure)
	}
	return view, nil
}

func mapBookingView(row sqlc.GetBookingViewByIDRow, dayRows []sqlc.BookingDays) (*queries.BookingView, error) {
	subtotal, err := pgconv.DecimalFromNumeric(row.Subtotal)
	if err != nil {
		return nil, err
	}
	gstRate, err := pgconv.DecimalFromNumeric(row.GstRate)
	if err != nil {
		return nil, err
	}
	gst, err := pgconv.DecimalFromNumeric(row.Gst)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(row.Total)
	if err != nil {
		return nil, err
	}

	days := make([]queries.BookingDayView, len(dayRows))
	for i, d := range dayRows {
		rate, err := pgconv.DecimalFromNumeric(d.Rate)
		if err != nil {
			return nil, err
		}
		days[i] = queries.BookingDayView{
			Date:       pgconv.DateFromPgtype(d.Day, time.UTC),
			Rate:       rate,
			Label:      d.Label,
			IsSeasonal: d.IsSeasonal,
		}
	}

	return &queries.BookingView{
		ID:           row.ID,
		SiteID:       row.SiteID,
		SiteName:     row.SiteName,
		TenantName:   row.TenantName,
		TenantEmail:  row.TenantEmail,
		StartDate:    pgconv.DateFromPgtype(row.StartDate, time.UTC),
		EndDate:      pgconv.DateFromPgtype(row.EndDate, time.UTC),
		Status:       row.Status,
		Subtotal:     subtotal,
		GSTRate:      gstRate,
		GST:          gst,
		Total:        total,
		WeekdayCount: int(row.WeekdayCount),
		WeekendCount: int(row.WeekendCount),
		Note:         pgconv.StringPtrFromPgtype(row.Note),
		Days:         days,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
