package booking

import (
	"context"
	"time"

	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/domain/site"
	"casual-leasing/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CostCalculator interface {
	CalculateCost(ctx context.Context, siteID uuid.UUID, card pricing.RateCard, start, end time.Time) (pricing.Result, error)
}

type Factory struct {
	Clock      clock.Clock
	Calculator CostCalculator
}

func NewFactory(clock clock.Clock, calculator CostCalculator) *Factory {
	return &Factory{
		Clock:      clock,
		Calculator: calculator,
	}
}

// CreateBooking prices the period for the site and returns a confirmed
// booking carrying the per-day breakdown it was priced with.
func (f *Factory) CreateBooking(
	ctx context.Context,
	siteEntity *site.Site,
	tenant Tenant,
	period Period,
	taxRate decimal.Decimal,
	note Note,
) (*Booking, error) {
	if err := siteEntity.EnsureBookable(); err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	if err := period.ValidateStartAt(now); err != nil {
		return nil, err
	}

	quote, err := f.Calculator.CalculateCost(ctx, siteEntity.ID(), siteEntity.RateCard(), period.Start(), period.End())
	if err != nil {
		return nil, err
	}

	amounts, err := NewAmounts(quote.TotalAmount, taxRate)
	if err != nil {
		return nil, err
	}

	return NewBooking(siteEntity.ID(), tenant, period, quote, amounts, note, now), nil
}
