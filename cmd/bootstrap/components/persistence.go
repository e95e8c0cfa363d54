package components

import (
	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/infra/readstore"
	sqlc "casual-leasing/internal/infra/sqlc/generated"
	"casual-leasing/internal/infra/taxrate"
	"casual-leasing/internal/infra/uow"
	"casual-leasing/internal/usecase/queries"
	"casual-leasing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Site
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SiteReadQueries)),
		),
		fx.Annotate(
			readstore.NewSiteReadStore,
			fx.As(new(shared.SiteReadStore)),
		),
		// SeasonalRate
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SeasonalRateReadQueries)),
		),
		fx.Annotate(
			readstore.NewSeasonalRateReadStore,
			fx.As(new(shared.SeasonalRateReadStore)),
			fx.As(new(pricing.SeasonalRateSource)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// TaxRate
		fx.Annotate(
			taxrate.NewConfigProvider,
			fx.As(new(shared.TaxRateProvider)),
		),
	),
)

// Write repositories are created per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
