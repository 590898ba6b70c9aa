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

package router

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/govgoose/govgoose/cmd/govgoose/api"
	"github.com/govgoose/govgoose/config"
	"github.com/govgoose/govgoose/controllers"
	"github.com/govgoose/govgoose/database"
	"github.com/govgoose/govgoose/middlewares"
	"github.com/govgoose/govgoose/shared"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv api.Server,
	db shared.DB,
	pool *pgxpool.Pool,
	oryAdmin shared.AdminClient,
	citationController *controllers.CitationController,
	mapsController *controllers.MapsController,
) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1", middlewares.SessionMiddleware(oryAdmin))

	apiV1Router.GET("/info/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, buildInfo(db, pool))
	})

	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		// Check database connectivity
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.Ping(); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	apiV1Router.GET("/citations/", citationController.Read)
	apiV1Router.GET("/maps/config/", mapsController.Config)

	return APIV1Router{
		Group: apiV1Router,
	}
}

func buildInfo(db shared.DB, pool *pgxpool.Pool) InfoResponse {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	resp := InfoResponse{
		Build: BuildInfo{
			Version:   config.Version,
			Commit:    config.Commit,
			BuildDate: config.BuildDate,
		},
		Runtime: RuntimeInfo{
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			Mem: MemStats{
				Alloc:      mem.Alloc,
				TotalAlloc: mem.TotalAlloc,
				Sys:        mem.Sys,
				HeapAlloc:  mem.HeapAlloc,
			},
		},
		Process: ProcessInfo{
			PID:           os.Getpid(),
			UptimeSeconds: int(time.Since(api.StartedAt).Seconds()),
		},
	}

	if host, _ := os.Hostname(); host != "" {
		resp.Process.Hostname = host
	}

	dbInfo := DatabaseInfo{Status: "unknown"}
	sqlDB, err := db.DB()
	if err != nil {
		errMsg := "failed to get database instance"
		dbInfo.Status = "unhealthy"
		dbInfo.Error = &errMsg
		resp.Database = dbInfo
		return resp
	}

	if err := sqlDB.Ping(); err != nil {
		errMsg := "database ping failed"
		dbInfo.Status = "unhealthy"
		dbInfo.Error = &errMsg
		resp.Database = dbInfo
		return resp
	}

	dbInfo.Status = "healthy"
	dbInfo.DBStats = sqlDB.Stats()
	if pool != nil {
		stats := pool.Stat()
		dbInfo.Pool = &PoolInfo{
			TotalConns:    int(stats.TotalConns()),
			IdleConns:     int(stats.IdleConns()),
			AcquiredConns: int(stats.AcquiredConns()),
			MaxConns:      int(stats.MaxConns()),
		}
	}

	if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
		dbInfo.MigrationVersion = &ver
		dbInfo.MigrationDirty = &dirty
	} else {
		errStr := err.Error()
		dbInfo.MigrationError = &errStr
	}

	resp.Database = dbInfo
	return resp
}
