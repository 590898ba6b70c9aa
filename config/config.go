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

package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

type PostgresConfig struct {
	Host            string        `mapstructure:"POSTGRES_HOST"`
	Port            string        `mapstructure:"POSTGRES_PORT"`
	User            string        `mapstructure:"POSTGRES_USER"`
	Password        string        `mapstructure:"POSTGRES_PASSWORD"`
	DBName          string        `mapstructure:"POSTGRES_DB"`
	MaxOpenConns    int32         `mapstructure:"DB_MAX_OPEN_CONNS"`
	MinConns        int32         `mapstructure:"DB_MIN_CONNS"`
	ConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	ConnMaxIdleTime time.Duration `mapstructure:"DB_CONN_MAX_IDLE_TIME"`
}

type MapsConfig struct {
	AccessToken     string `mapstructure:"MAPBOX_ACCESS_TOKEN"`
	StyleURL        string `mapstructure:"MAPBOX_STYLE_URL"`
	GeocodingAPIURL string `mapstructure:"GEOCODING_API_URL"`
	// requests per second against the geocoding api, 0 disables pacing
	GeocodingRateLimit float64 `mapstructure:"GEOCODING_RATE_LIMIT"`
}

type StorageConfig struct {
	URL          string        `mapstructure:"STORAGE_URL"`
	Key          string        `mapstructure:"STORAGE_KEY"`
	Bucket       string        `mapstructure:"STORAGE_BUCKET"`
	SignedURLTTL time.Duration `mapstructure:"SIGNED_URL_TTL"`
}

type Config struct {
	Port               string `mapstructure:"PORT"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	Environment        string `mapstructure:"ENVIRONMENT"`
	ErrorTrackingDSN   string `mapstructure:"ERROR_TRACKING_DSN"`
	OtelEndpoint       string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	DisableAutoMigrate bool   `mapstructure:"DISABLE_AUTOMIGRATE"`
	CORSOrigin         string `mapstructure:"CORS_ORIGIN"`

	AnalysisAPIURL     string `mapstructure:"ANALYSIS_API_URL"`
	OryKratosPublicURL string `mapstructure:"ORY_KRATOS_PUBLIC"`
	CitationViewerURL  string `mapstructure:"CITATION_VIEWER_URL"`

	BatchImportConcurrency int `mapstructure:"BATCH_IMPORT_CONCURRENCY"`

	Postgres PostgresConfig `mapstructure:",squash"`
	Maps     MapsConfig     `mapstructure:",squash"`
	Storage  StorageConfig  `mapstructure:",squash"`
}

var defaults = map[string]any{
	"PORT":                        "8080",
	"LOG_LEVEL":                   "info",
	"ENVIRONMENT":                 "dev",
	"ERROR_TRACKING_DSN":          "",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "",
	"DISABLE_AUTOMIGRATE":         false,
	"CORS_ORIGIN":                 "http://localhost:3000",
	"ANALYSIS_API_URL":            "http://localhost:8000",
	"ORY_KRATOS_PUBLIC":           "http://localhost:4433",
	"CITATION_VIEWER_URL":         "http://localhost:3000/citation",
	"BATCH_IMPORT_CONCURRENCY":    4,

	"POSTGRES_HOST":         "localhost",
	"POSTGRES_PORT":         "5432",
	"POSTGRES_USER":         "govgoose",
	"POSTGRES_PASSWORD":     "",
	"POSTGRES_DB":           "govgoose",
	"DB_MAX_OPEN_CONNS":     25,
	"DB_MIN_CONNS":          5,
	"DB_CONN_MAX_LIFETIME":  4 * time.Hour,
	"DB_CONN_MAX_IDLE_TIME": 15 * time.Minute,

	"MAPBOX_ACCESS_TOKEN":  "",
	"MAPBOX_STYLE_URL":     "https://api.mapbox.com/styles/v1/mapbox/streets-v12",
	"GEOCODING_API_URL":    "https://api.mapbox.com",
	"GEOCODING_RATE_LIMIT": 0.0,

	"STORAGE_URL":    "",
	"STORAGE_KEY":    "",
	"STORAGE_BUCKET": "documents",
	"SIGNED_URL_TTL": time.Hour,
}

// Load reads an optional .env file and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}
	return FromViper(viper.New())
}

// FromViper decodes the configuration from an existing viper instance.
// Every known key gets a default, which makes viper pick up the matching
// environment variable.
func FromViper(v *viper.Viper) (Config, error) {
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.BatchImportConcurrency <= 0 {
		cfg.BatchImportConcurrency = 4
	}
	return cfg, nil
}
