package components

import (
	"casual-leasing/internal/handler"
	"casual-leasing/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewBookingHandler,
		api.NewSeasonalRateHandler,
		func(p *api.PricingHandler, b *api.BookingHandler, s *api.SeasonalRateHandler) handler.Handlers {
			return handler.Handlers{Pricing: p, Booking: b, SeasonalRate: s}
		},
	),
	fx.Invoke(handler.NewRouter),
)
