package shared

import (
	"context"
	"time"

	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/domain/site"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SiteReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*site.Site, error)
}

// SeasonalRateReadStore is the read side the pricing calculator consumes.
type SeasonalRateReadStore interface {
	FindSeasonalRatesForRange(ctx context.Context, siteID uuid.UUID, start, end time.Time) ([]pricing.SeasonalRate, error)
}

type TaxRateProvider interface {
	GSTRate(ctx context.Context) (decimal.Decimal, error)
}
