package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"casual-leasing/internal/handler/api"
	"casual-leasing/internal/handler/middleware"
	"casual-leasing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Pricing      *api.PricingHandler
	Booking      *api.BookingHandler
	SeasonalRate *api.SeasonalRateHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

// Order matters: the access log wraps recovery so panics still get a line.
func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.NewCORS(cfg.CORS, logger))
	engine.Use(middleware.ErrorResponder())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		sites := apiGroup.Group("/sites/:id")
		addRoutes(sites, []route{
			{Method: http.MethodGet, Path: "/quote", Handler: h.Pricing.Quote},
			{Method: http.MethodGet, Path: "/seasonal-rates", Handler: h.SeasonalRate.List},
			{Method: http.MethodPost, Path: "/seasonal-rates", Handler: h.SeasonalRate.Create},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
		})
	}
}

// @Summary Health check
// @Description Liveness probe for the casual-leasing API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
