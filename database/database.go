package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/monitoring"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// alertingLogger forwards query failures to error tracking. Missing rows are expected and never alert.
type alertingLogger struct {
	logger.Interface
}

func NewLogger() logger.Interface {
	return alertingLogger{Interface: logger.Default.LogMode(logger.Warn)}
}

func (l alertingLogger) LogMode(level logger.LogLevel) logger.Interface {
	return alertingLogger{Interface: l.Interface.LogMode(level)}
}

func (l alertingLogger) Error(ctx context.Context, msg string, data ...any) {
	monitoring.Alert(msg, firstError(data))
	l.Interface.Error(ctx, msg, data...)
}

func (l alertingLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		sql, _ := fc()
		monitoring.Alert("database query failed", fmt.Errorf("%w (%s)", err, sql))
	}
	l.Interface.Trace(ctx, begin, fc, err)
}

func firstError(data []any) error {
	if len(data) == 0 {
		return nil
	}
	if err, ok := data[0].(error); ok {
		return err
	}
	return fmt.Errorf("%v", data[0])
}

func (cfg PoolConfig) dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
}

func NewPgxConnPool(cfg PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgx pool config: %w", err)
	}
	config.MaxConnIdleTime = cfg.ConnMaxIdleTime
	config.MaxConnLifetime = cfg.ConnMaxLifetime
	config.MaxConns = cfg.MaxOpenConns
	config.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	slog.Info("database connection pool configured",
		"maxOpenConns", cfg.MaxOpenConns,
		"connMaxLifetime", cfg.ConnMaxLifetime,
		"connMaxIdleTime", cfg.ConnMaxIdleTime,
	)

	return pool, nil
}

// NewGormDB shares pool with gorm so both see the same connection limits.
func NewGormDB(existingPool *pgxpool.Pool) (*gorm.DB, error) {
	db := stdlib.OpenDBFromPool(existingPool)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: NewLogger(),
	})
	if err != nil {
		return nil, err
	}

	if err := gormDB.SetupJoinTable(&models.CodeCheck{}, "Documents", &models.CodeCheckDocument{}); err != nil {
		return nil, fmt.Errorf("could not setup code check documents join table: %w", err)
	}

	if err := gormDB.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, fmt.Errorf("could not register tracing plugin: %w", err)
	}

	return gormDB, nil
}

func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.HasPrefix(msg, "ERROR: duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
