package readstore

import (
	"context"
	"time"

	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/infra"
	"casual-leasing/internal/infra/converter"
	sqlc "casual-leasing/internal/infra/sqlc/generated"
	"casual-leasing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SeasonalRateReadQueries interface {
	ListSeasonalRatesForRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSeasonalRatesForRangeParams) ([]sqlc.SeasonalRates, error)
}

type SeasonalRateReadStore struct {
	queries SeasonalRateReadQueries
	db      sqlc.DBTX
}

func NewSeasonalRateReadStore(queries SeasonalRateReadQueries, db sqlc.DBTX) *SeasonalRateReadStore {
	return &SeasonalRateReadStore{
		queries: queries,
		db:      db,
	}
}

// FindSeasonalRatesForRange returns the site's records intersecting
// [start, end] ordered by creation time, then id. Record dates come back as
// midnight in start's location.
func (r *SeasonalRateReadStore) FindSeasonalRatesForRange(ctx context.Context, siteID uuid.UUID, start, end time.Time) ([]pricing.SeasonalRate, error) {
	params := sqlc.ListSeasonalRatesForRangeParams{
		SiteID:     siteID,
		RangeStart: pgconv.DateToPgtype(start),
		RangeEnd:   pgconv.DateToPgtype(end),
	}

	rows, err := r.queries.ListSeasonalRatesForRange(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seasonal rates for range", err)
	}

	rates, err := converter.SeasonalRatesFromRows(rows, start.Location())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert seasonal rate rows", err, infra.KindDBFailure)
	}
	return rates, nil
}
