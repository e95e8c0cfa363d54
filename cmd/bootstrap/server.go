package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"casual-leasing/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var ServerModule = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Invoke(RegisterServer),
)

func NewEngine() *gin.Engine {
	gin.EnableJsonDecoderDisallowUnknownFields()
	return gin.New()
}

// RegisterServer binds the listener during fx start so a taken port aborts
// startup, and drains in-flight requests on stop.
func RegisterServer(lc fx.Lifecycle, sd fx.Shutdowner, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var lcfg net.ListenConfig
			ln, err := lcfg.Listen(ctx, "tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("casual-leasing API listening", slog.String("addr", ln.Addr().String()), slog.String("mode", gin.Mode()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server stopped unexpectedly", slog.Any("error", err))
					_ = sd.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			logger.Info("draining http server")
			return srv.Shutdown(ctx)
		},
	})
}
