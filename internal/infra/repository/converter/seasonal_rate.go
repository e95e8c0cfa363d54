package converter

import (
	"casual-leasing/internal/domain/pricing"
	sqlc "casual-leasing/internal/infra/sqlc/generated"
	"casual-leasing/internal/pkg/pgconv"
)

func SeasonalRateToCreateParams(r *pricing.SeasonalRate) sqlc.CreateSeasonalRateParams {
	return sqlc.CreateSeasonalRateParams{
		ID:          r.ID,
		SiteID:      r.SiteID,
		Name:        r.Name,
		StartDate:   pgconv.DateToPgtype(r.StartDate),
		EndDate:     pgconv.DateToPgtype(r.EndDate),
		WeekdayRate: pgconv.DecimalPtrToNumeric(r.WeekdayRate),
		WeekendRate: pgconv.DecimalPtrToNumeric(r.WeekendRate),
		WeeklyRate:  pgconv.DecimalPtrToNumeric(r.WeeklyRate),
	}
}
