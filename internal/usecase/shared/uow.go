package shared

import (
	"context"

	"casual-leasing/internal/domain/booking"
	"casual-leasing/internal/domain/pricing"
	sqlc "casual-leasing/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	SeasonalRates() SeasonalRateRepository
	DB() sqlc.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
}

type SeasonalRateRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rate *pricing.SeasonalRate) (uuid.UUID, error)
}
