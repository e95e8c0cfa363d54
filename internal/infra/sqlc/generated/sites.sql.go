// Accessors for queries/sites.sql in the sqlc pgx/v5 layout.
// queries_internal_test.go fails when the two drift apart.

package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const getSiteByID = `-- name: GetSiteByID :one
SELECT id, name, centre_name, price_per_day, price_per_week, weekend_price_per_day, is_active, created_at, updated_at
FROM sites
WHERE id = $1
`

func (q *Queries) GetSiteByID(ctx context.Context, db DBTX, id uuid.UUID) (Sites, error) {
	row := db.QueryRow(ctx, getSiteByID, id)
	var i Sites
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CentreName,
		&i.PricePerDay,
		&i.PricePerWeek,
		&i.WeekendPricePerDay,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
