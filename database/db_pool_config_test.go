package database

import (
	"testing"
	"time"

	"github.com/govgoose/govgoose/config"
	"github.com/stretchr/testify/assert"
)

func TestPoolConfigFromConfig(t *testing.T) {
	t.Run("should fall back to defaults for zero values", func(t *testing.T) {
		cfg := PoolConfigFromConfig(config.PostgresConfig{Host: "db", Port: "5432", MinConns: -1})
		assert.Equal(t, "db", cfg.Host)
		assert.Equal(t, int32(25), cfg.MaxOpenConns)
		assert.Equal(t, int32(5), cfg.MinConns)
		assert.Equal(t, 4*time.Hour, cfg.ConnMaxLifetime)
		assert.Equal(t, 15*time.Minute, cfg.ConnMaxIdleTime)
	})

	t.Run("should take configured values", func(t *testing.T) {
		cfg := PoolConfigFromConfig(config.PostgresConfig{
			MaxOpenConns:    10,
			MinConns:        2,
			ConnMaxLifetime: time.Minute,
			ConnMaxIdleTime: time.Second,
		})
		assert.Equal(t, int32(10), cfg.MaxOpenConns)
		assert.Equal(t, int32(2), cfg.MinConns)
		assert.Equal(t, time.Minute, cfg.ConnMaxLifetime)
		assert.Equal(t, time.Second, cfg.ConnMaxIdleTime)
	})
}

func TestPoolConfigDSN(t *testing.T) {
	assert.Equal(t, "postgres://user:pw@localhost:5432/govgoose?sslmode=disable", PoolConfig{Host: "localhost", User: "user", Password: "pw", DBName: "govgoose", Port: "5432"}.dsn())
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.False(t, IsDuplicateKeyError(nil))
	assert.True(t, IsDuplicateKeyError(errString("ERROR: duplicate key value violates unique constraint \"project_users_pkey\"")))
	assert.True(t, IsDuplicateKeyError(errString("UNIQUE constraint failed: project_users.project_id")))
	assert.False(t, IsDuplicateKeyError(errString("connection refused")))
}

type errString string

func (e errString) Error() string { return string(e) }
