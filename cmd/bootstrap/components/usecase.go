package components

import (
	"casual-leasing/internal/domain/booking"
	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/pkg/clock"
	"casual-leasing/internal/usecase/commands"
	"casual-leasing/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewCalculator,
		fx.As(new(booking.CostCalculator)),
	),
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewSeasonalRateCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
		queries.NewBookingQueries,
		queries.NewSeasonalRateQueries,
	),
)
