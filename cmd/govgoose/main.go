// Copyright (C) 2026 The GovGoose Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/govgoose/govgoose/accesscontrol"
	"github.com/govgoose/govgoose/cmd/govgoose/api"
	"github.com/govgoose/govgoose/config"
	"github.com/govgoose/govgoose/controllers"
	"github.com/govgoose/govgoose/database"
	"github.com/govgoose/govgoose/database/repositories"
	"github.com/govgoose/govgoose/integrations"
	"github.com/govgoose/govgoose/monitoring"
	"github.com/govgoose/govgoose/router"
	"github.com/govgoose/govgoose/services"
	"github.com/govgoose/govgoose/shared"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

//	@title			govgoose API
//	@version		v1
//	@description	sign and permit code compliance API

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(errors.Wrap(err, "could not load config"))
	}
	shared.InitLogger(shared.ParseLogLevel(cfg.LogLevel))

	if err := monitoring.InitErrorTracking(cfg.ErrorTrackingDSN, cfg.Environment, config.Version); err != nil {
		slog.Error("could not initialize error tracking", "err", err)
	}
	// Catch panics
	defer func() {
		if err := recover(); err != nil {
			sentry.CurrentHub().Recover(err)
			// Wait for events to be send to server
			sentry.Flush(time.Second * 5)
			panic(err)
		}
	}()

	shutdownTracing, err := monitoring.InitTracing(context.Background(), cfg.OtelEndpoint, config.Version)
	if err != nil {
		slog.Error("could not initialize tracing", "err", err)
		shutdownTracing = func(context.Context) error { return nil }
	}

	// Initialize database connection first
	pool, err := database.NewPgxConnPool(database.PoolConfigFromConfig(cfg.Postgres))
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}
	db, err := database.NewGormDB(pool)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}

	if !cfg.DisableAutoMigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(api.NewServer),
		shared.Module,
		repositories.Module,
		accesscontrol.Module,
		integrations.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(CodeCheckRouter router.CodeCheckRouter) {}),
		fx.Invoke(func(ProjectRouter router.ProjectRouter) {}),
		fx.Invoke(func(DocumentRouter router.DocumentRouter) {}),
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStop: func(ctx context.Context) error {
					pool.Close()
					return shutdownTracing(ctx)
				},
			})
		}),
	).Run()
}
