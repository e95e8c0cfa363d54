package repository

import (
	"context"

	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/infra"
	"casual-leasing/internal/infra/repository/converter"
	sqlc "casual-leasing/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type SeasonalRateWriteQueries interface {
	CreateSeasonalRate(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSeasonalRateParams) (sqlc.SeasonalRates, error)
}

type SeasonalRateRepository struct {
	queries SeasonalRateWriteQueries
}

func NewSeasonalRateRepository(queries SeasonalRateWriteQueries) *SeasonalRateRepository {
	return &SeasonalRateRepository{queries: queries}
}

func (r *SeasonalRateRepository) Create(ctx context.Context, tx sqlc.DBTX, rate *pricing.SeasonalRate) (uuid.UUID, error) {
	row, err := r.queries.CreateSeasonalRate(ctx, tx, converter.SeasonalRateToCreateParams(rate))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create seasonal rate", err)
	}
	return row.ID, nil
}
