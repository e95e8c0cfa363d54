package queries

import (
	"context"
	"time"

	"casual-leasing/internal/infra"
	"casual-leasing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingDayView struct {
	Date       time.Time
	Rate       decimal.Decimal
	Label      string
	IsSeasonal bool
}

type BookingView struct {
	ID           uuid.UUID
	SiteID       uuid.UUID
	SiteName     string
	TenantName   string
	TenantEmail  string
	StartDate    time.Time
	EndDate      time.Time
	Status       string
	Subtotal     decimal.Decimal
	GSTRate      decimal.Decimal
	GST          decimal.Decimal
	Total        decimal.Decimal
	WeekdayCount int
	WeekendCount int
	Note         *string
	Days         []BookingDayView
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	return view, nil
}
