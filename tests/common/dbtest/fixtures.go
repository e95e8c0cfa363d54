//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"casual-leasing/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Execer is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// DefaultSiteID is the active site seeded by SeedReferenceData.
var DefaultSiteID = uuid.MustParse("0b6f2c1e-6a0e-4d7e-9a51-3f1c2d8e7a10")

// Children first; CASCADE covers anything added later.
const truncateAll = `TRUNCATE booking_days, bookings, seasonal_rates, sites CASCADE`

func CreateTestSite(t *testing.T, db Execer, b *builder.SiteBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	_, err := db.Exec(context.Background(), `
		INSERT INTO sites (id, name, centre_name, price_per_day, price_per_week, weekend_price_per_day, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		row.ID, row.Name, row.CentreName, row.PricePerDay, row.PricePerWeek, row.WeekendPricePerDay, row.IsActive)
	require.NoError(t, err, "insert site %s", row.ID)

	return row.ID
}

// CreateTestSeasonalRate inserts rows one at a time so creation order follows call order.
func CreateTestSeasonalRate(t *testing.T, db Execer, b *builder.SeasonalRateBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	_, err := db.Exec(context.Background(), `
		INSERT INTO seasonal_rates (id, site_id, name, start_date, end_date, weekday_rate, weekend_rate, weekly_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		row.ID, row.SiteID, row.Name, row.StartDate, row.EndDate, row.WeekdayRate, row.WeekendRate, row.WeeklyRate)
	require.NoError(t, err, "insert seasonal rate %q", row.Name)

	return row.ID
}

// SeedReferenceData inserts the default site: 100/day, 600/week, 150/weekend day.
func SeedReferenceData(ctx context.Context, db Execer) error {
	_, err := db.Exec(ctx, `
		INSERT INTO sites (id, name, centre_name, price_per_day, price_per_week, weekend_price_per_day, is_active)
		VALUES ($1, 'Kiosk 1', 'Default Centre', 100.00, 600.00, 150.00, true)
		ON CONFLICT (id) DO NOTHING`, DefaultSiteID)
	return err
}

// ResetDB empties every table and reseeds the default site.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, truncateAll); err != nil {
		return err
	}
	return SeedReferenceData(ctx, pool)
}
