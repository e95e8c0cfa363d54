package bootstrap

import (
	"context"
	"log/slog"

	"casual-leasing/cmd/bootstrap/components"
	"casual-leasing/internal/handler/middleware"
	"casual-leasing/internal/infra/db"
	"casual-leasing/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Module wires the full API process. Tests swap ConfigModule and DBModule
// for their own providers and reuse the rest.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	ServerModule,
)

var ConfigModule = fx.Module("config", fx.Provide(config.LoadConfig))

var LoggerModule = fx.Module("logger", fx.Provide(
	func(cfg config.Config) *slog.Logger { return middleware.NewLogger(cfg.Log) },
))

var DBModule = fx.Module("db", fx.Provide(NewPool))

// NewPool opens the pool eagerly so a bad DSN fails fx startup, and closes it on stop.
func NewPool(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected",
		slog.String("host", cfg.DB.Host),
		slog.String("database", cfg.DB.DBName),
		slog.Int("max_conns", int(pool.Config().MaxConns)),
	)
	lc.Append(fx.StopHook(func(context.Context) { closePool() }))
	return pool, nil
}
