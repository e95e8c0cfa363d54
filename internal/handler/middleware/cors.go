package middleware

import (
	"log/slog"
	"slices"

	"casual-leasing/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORS lets browser clients send and read the request id and the Location
// header of newly created bookings and seasonal rates.
func NewCORS(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	allow := withHeader(cfg.AllowHeaders, RequestIDHeader)
	expose := withHeader(withHeader(cfg.ExposeHeaders, RequestIDHeader), "Location")

	logger.Info("cors configured",
		slog.Any("origins", cfg.AllowOrigins),
		slog.Any("methods", cfg.AllowMethods),
		slog.Any("expose", expose),
	)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allow,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func withHeader(headers []string, h string) []string {
	if slices.Contains(headers, h) {
		return headers
	}
	return append(slices.Clone(headers), h)
}
