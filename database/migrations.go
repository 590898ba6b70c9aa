package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// the postgres driver pins one connection and closes the pool on Close,
// so one migrator is kept per pool for the lifetime of the process.
var migrators sync.Map // *sql.DB -> *migrate.Migrate

func migratorFor(gormDB *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	if m, ok := migrators.Load(sqlDB); ok {
		return m.(*migrate.Migrate), nil
	}

	m, err := newMigrator(sqlDB)
	if err != nil {
		return nil, err
	}
	actual, _ := migrators.LoadOrStore(sqlDB, m)
	return actual.(*migrate.Migrate), nil
}

func newMigrator(sqlDB *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not read embedded migrations: %w", err)
	}
	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create migration driver: %w", err)
	}
	return migrate.NewWithInstance("iofs", source, "postgres", driver)
}

// RunMigrationsWithDB applies every pending migration. Calling it on an up to date schema is a no-op.
func RunMigrationsWithDB(gormDB *gorm.DB) error {
	m, err := migratorFor(gormDB)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("database schema is up to date")
		return nil
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := m.Version()
	slog.Info("migrated database schema", "version", version)
	return nil
}

func GetMigrationVersionWithDB(gormDB *gorm.DB) (uint, bool, error) {
	m, err := migratorFor(gormDB)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m.Version()
}
