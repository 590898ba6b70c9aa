package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/govgoose/govgoose/config"
	"github.com/govgoose/govgoose/middlewares"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/fx"
)

// StartedAt is used to report the uptime on the info endpoint
var StartedAt = time.Now()

type Server struct {
	Echo *echo.Echo
}

// NewServer creates the echo instance and binds its lifetime to the fx application.
func NewServer(lc fx.Lifecycle, cfg config.Config) Server {
	e := middlewares.Server(cfg)
	e.Use(otelecho.Middleware("govgoose"))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("starting server", "port", cfg.Port)
				if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return Server{Echo: e}
}
