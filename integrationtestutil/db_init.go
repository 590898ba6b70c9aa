package integrationtestutil

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/govgoose/govgoose/database"
	"github.com/govgoose/govgoose/database/models"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	sqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// pure go sqlite driver registered as "sqlite"
	_ "modernc.org/sqlite"
)

var allModels = []any{
	&models.CodeCheck{},
	&models.Document{},
	&models.CodeCheckDocument{},
	&models.Project{},
	&models.ProjectUser{},
	&models.ProjectCodeCheck{},
	&models.CatalogEntry{},
}

// InitSQLiteDB creates a file backed sqlite database in the test temp dir with all tables migrated.
func InitSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "govgoose.db")
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_time_format=sqlite")
	if err != nil {
		t.Fatalf("could not open sqlite database: %s", err)
	}
	// sqlite only supports a single writer
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open gorm database: %s", err)
	}

	if err := db.SetupJoinTable(&models.CodeCheck{}, "Documents", &models.CodeCheckDocument{}); err != nil {
		t.Fatalf("could not setup join table: %s", err)
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("could not migrate sqlite database: %s", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

// InitDatabaseContainer starts a postgres container and runs the embedded migrations against it.
// The test is skipped unless GOVGOOSE_INTEGRATION=1.
func InitDatabaseContainer(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("GOVGOOSE_INTEGRATION") != "1" {
		t.Skip("set GOVGOOSE_INTEGRATION=1 to run postgres integration tests")
	}

	ctx := context.Background()

	dbName := "govgoose"
	dbUser := "user"
	dbPassword := "password"

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %s", err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	pool, err := database.NewPgxConnPool(database.PoolConfig{
		User:         dbUser,
		Password:     dbPassword,
		Host:         host,
		Port:         port.Port(),
		DBName:       dbName,
		MaxOpenConns: 5,
		MinConns:     1,
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %s", err)
	}
	t.Cleanup(pool.Close)

	db, err := database.NewGormDB(pool)
	if err != nil {
		t.Fatalf("failed to open gorm database: %s", err)
	}

	if err := database.RunMigrationsWithDB(db); err != nil {
		t.Fatalf("failed to run migrations: %s", err)
	}

	return db
}
