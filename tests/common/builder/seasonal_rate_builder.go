//go:build unit || e2e

package builder

import (
	"time"

	"casual-leasing/internal/domain/pricing"
	sqlc "casual-leasing/internal/infra/sqlc/generated"
	"casual-leasing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type SeasonalRateBuilder struct {
	ID          uuid.UUID
	SiteID      uuid.UUID
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	WeekdayRate *decimal.Decimal
	WeekendRate *decimal.Decimal
	WeeklyRate  *decimal.Decimal
	CreatedAt   time.Time
}

// NewSeasonalRateBuilder defaults to a December 2024 weekday override of 200.
func NewSeasonalRateBuilder(siteID uuid.UUID) *SeasonalRateBuilder {
	return &SeasonalRateBuilder{
		ID:          uuid.New(),
		SiteID:      siteID,
		Name:        "Christmas",
		StartDate:   time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		WeekdayRate: dec(200),
		CreatedAt:   time.Now(),
	}
}

func (b *SeasonalRateBuilder) With(mutate func(*SeasonalRateBuilder)) *SeasonalRateBuilder {
	mutate(b)
	return b
}

func (b *SeasonalRateBuilder) Between(start, end time.Time) *SeasonalRateBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *SeasonalRateBuilder) Rates(weekday, weekend, weekly *decimal.Decimal) *SeasonalRateBuilder {
	b.WeekdayRate = weekday
	b.WeekendRate = weekend
	b.WeeklyRate = weekly
	return b
}

// Build methods
func (b *SeasonalRateBuilder) BuildDomain() pricing.SeasonalRate {
	return pricing.SeasonalRate{
		ID:          b.ID,
		SiteID:      b.SiteID,
		Name:        b.Name,
		StartDate:   pricing.NormalizeDate(b.StartDate),
		EndDate:     pricing.NormalizeDate(b.EndDate),
		WeekdayRate: b.WeekdayRate,
		WeekendRate: b.WeekendRate,
		WeeklyRate:  b.WeeklyRate,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *SeasonalRateBuilder) BuildInfra() sqlc.SeasonalRates {
	return sqlc.SeasonalRates{
		ID:          b.ID,
		SiteID:      b.SiteID,
		Name:        b.Name,
		StartDate:   pgconv.DateToPgtype(b.StartDate),
		EndDate:     pgconv.DateToPgtype(b.EndDate),
		WeekdayRate: pgconv.DecimalPtrToNumeric(b.WeekdayRate),
		WeekendRate: pgconv.DecimalPtrToNumeric(b.WeekendRate),
		WeeklyRate:  pgconv.DecimalPtrToNumeric(b.WeeklyRate),
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}
