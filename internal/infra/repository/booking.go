package repository

import (
	"context"
	"fmt"

	"casual-leasing/internal/domain/booking"
	"casual-leasing/internal/infra"
	"casual-leasing/internal/infra/repository/converter"
	sqlc "casual-leasing/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	InsertBookingDays(ctx context.Context, db sqlc.DBTX, arg []sqlc.InsertBookingDaysParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

// Create stores the booking and its per-day breakdown. Both writes go through
// tx so callers get all or nothing.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	id, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	days := converter.BookingDaysToParams(b)
	if len(days) == 0 {
		return id, nil
	}

	copied, err := r.queries.InsertBookingDays(ctx, tx, days)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert booking days", err)
	}
	if copied != int64(len(days)) {
		return uuid.Nil, infra.WrapRepoErr(
			fmt.Sprintf("booking days partially inserted: %d of %d", copied, len(days)),
			nil, infra.KindDBFailure)
	}

	return id, nil
}
