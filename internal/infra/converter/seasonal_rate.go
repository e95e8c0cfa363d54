package converter

import (
	"time"

	"casual-leasing/internal/domain/pricing"
	sqlc "casual-leasing/internal/infra/sqlc/generated"
	"casual-leasing/internal/pkg/pgconv"
)

// SeasonalRateFromRow expresses the stored dates as midnight in loc. Stored
// rows are trusted and not re-validated.
func SeasonalRateFromRow(row sqlc.SeasonalRates, loc *time.Location) (pricing.SeasonalRate, error) {
	weekday, err := pgconv.DecimalPtrFromNumeric(row.WeekdayRate)
	if err != nil {
		return pricing.SeasonalRate{}, err
	}
	weekend, err := pgconv.DecimalPtrFromNumeric(row.WeekendRate)
	if err != nil {
		return pricing.SeasonalRate{}, err
	}
	weekly, err := pgconv.DecimalPtrFromNumeric(row.WeeklyRate)
	if err != nil {
		return pricing.SeasonalRate{}, err
	}

	return pricing.SeasonalRate{
		ID:          row.ID,
		SiteID:      row.SiteID,
		Name:        row.Name,
		StartDate:   pgconv.DateFromPgtype(row.StartDate, loc),
		EndDate:     pgconv.DateFromPgtype(row.EndDate, loc),
		WeekdayRate: weekday,
		WeekendRate: weekend,
		WeeklyRate:  weekly,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func SeasonalRatesFromRows(rows []sqlc.SeasonalRates, loc *time.Location) ([]pricing.SeasonalRate, error) {
	rates := make([]pricing.SeasonalRate, 0, len(rows))
	for _, row := range rows {
		rate, err := SeasonalRateFromRow(row, loc)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, nil
}
