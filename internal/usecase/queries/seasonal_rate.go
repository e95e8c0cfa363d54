package queries

import (
	"context"
	"time"

	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/usecase/shared"

	"github.com/google/uuid"
)

type SeasonalRateQueries interface {
	ListForRange(ctx context.Context, siteID uuid.UUID, start, end time.Time) ([]pricing.SeasonalRate, error)
}

type seasonalRateQueriesImpl struct {
	sites shared.SiteReadStore
	rates shared.SeasonalRateReadStore
}

func NewSeasonalRateQueries(sites shared.SiteReadStore, rates shared.SeasonalRateReadStore) SeasonalRateQueries {
	return &seasonalRateQueriesImpl{sites: sites, rates: rates}
}

// ListForRange returns the records intersecting [start, end] in the order
// the calculator resolves them.
func (q *seasonalRateQueriesImpl) ListForRange(ctx context.Context, siteID uuid.UUID, start, end time.Time) ([]pricing.SeasonalRate, error) {
	if _, err := findSite(ctx, q.sites, siteID); err != nil {
		return nil, err
	}

	start, end = pricing.NormalizeDate(start), pricing.NormalizeDate(end)
	if start.After(end) {
		return []pricing.SeasonalRate{}, nil
	}

	return q.rates.FindSeasonalRatesForRange(ctx, siteID, start, end)
}
