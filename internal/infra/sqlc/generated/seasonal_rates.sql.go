// Accessors for queries/seasonal_rates.sql in the sqlc pgx/v5 layout.
// queries_internal_test.go fails when the two drift apart.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createSeasonalRate = `-- name: CreateSeasonalRate :one
INSERT INTO seasonal_rates (id, site_id, name, start_date, end_date, weekday_rate, weekend_rate, weekly_rate)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, site_id, name, start_date, end_date, weekday_rate, weekend_rate, weekly_rate, created_at
`

type CreateSeasonalRateParams struct {
	ID          uuid.UUID
	SiteID      uuid.UUID
	Name        string
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	WeekdayRate pgtype.Numeric
	WeekendRate pgtype.Numeric
	WeeklyRate  pgtype.Numeric
}

func (q *Queries) CreateSeasonalRate(ctx context.Context, db DBTX, arg CreateSeasonalRateParams) (SeasonalRates, error) {
	row := db.QueryRow(ctx, createSeasonalRate,
		arg.ID,
		arg.SiteID,
		arg.Name,
		arg.StartDate,
		arg.EndDate,
		arg.WeekdayRate,
		arg.WeekendRate,
		arg.WeeklyRate,
	)
	var i SeasonalRates
	err := row.Scan(
		&i.ID,
		&i.SiteID,
		&i.Name,
		&i.StartDate,
		&i.EndDate,
		&i.WeekdayRate,
		&i.WeekendRate,
		&i.WeeklyRate,
		&i.CreatedAt,
	)
	return i, err
}

const listSeasonalRatesForRange = `-- name: ListSeasonalRatesForRange :many
SELECT id, site_id, name, start_date, end_date, weekday_rate, weekend_rate, weekly_rate, created_at
FROM seasonal_rates
WHERE site_id = $1
  AND start_date <= $2::date
  AND end_date >= $3::date
ORDER BY created_at, id
`

type ListSeasonalRatesForRangeParams struct {
	SiteID     uuid.UUID
	RangeEnd   pgtype.Date
	RangeStart pgtype.Date
}

func (q *Queries) ListSeasonalRatesForRange(ctx context.Context, db DBTX, arg ListSeasonalRatesForRangeParams) ([]SeasonalRates, error) {
	rows, err := db.Query(ctx, listSeasonalRatesForRange, arg.SiteID, arg.RangeEnd, arg.RangeStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []SeasonalRates{}
	for rows.Next() {
		var i SeasonalRates
		if err := rows.Scan(
			&i.ID,
			&i.SiteID,
			&i.Name,
			&i.StartDate,
			&i.EndDate,
			&i.WeekdayRate,
			&i.WeekendRate,
			&i.WeeklyRate,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
