package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := FromViper(viper.New())
		assert.Nil(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "documents", cfg.Storage.Bucket)
		assert.Equal(t, time.Hour, cfg.Storage.SignedURLTTL)
		assert.Equal(t, int32(25), cfg.Postgres.MaxOpenConns)
		assert.Equal(t, 4, cfg.BatchImportConcurrency)
	})

	t.Run("should read values from the environment", func(t *testing.T) {
		t.Setenv("ANALYSIS_API_URL", "https://analysis.example.com")
		t.Setenv("POSTGRES_HOST", "db")
		t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
		t.Setenv("BATCH_IMPORT_CONCURRENCY", "8")

		cfg, err := FromViper(viper.New())
		assert.Nil(t, err)
		assert.Equal(t, "https://analysis.example.com", cfg.AnalysisAPIURL)
		assert.Equal(t, "db", cfg.Postgres.Host)
		assert.Equal(t, 5*time.Minute, cfg.Postgres.ConnMaxLifetime)
		assert.Equal(t, 8, cfg.BatchImportConcurrency)
	})

	t.Run("should fall back to the default concurrency for invalid values", func(t *testing.T) {
		t.Setenv("BATCH_IMPORT_CONCURRENCY", "0")
		cfg, err := FromViper(viper.New())
		assert.Nil(t, err)
		assert.Equal(t, 4, cfg.BatchImportConcurrency)
	})
}
