// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package config

import (
	"time"

	"github.com/tomtom215/kollabee-recommender/internal/recommend"
)

// Config holds all service configuration.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	db, err := database.Open(ctx, &cfg.Database, &cfg.Recommend, &cfg.DetailBreaker)
type Config struct {
	Server        ServerConfig        `koanf:"server"`
	Database      DatabaseConfig      `koanf:"database"`
	Recommend     RecommendConfig     `koanf:"recommend"`
	DetailBreaker DetailBreakerConfig `koanf:"detail_breaker"`
	Events        EventsConfig        `koanf:"events"`
	Security      SecurityConfig      `koanf:"security"`
	Logging       LoggingConfig       `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig holds marketplace database settings.
type DatabaseConfig struct {
	// URL selects the driver by scheme: postgres/postgresql, sqlite or duckdb.
	URL string `koanf:"url" validate:"required,dsn"`

	MaxOpenConns    int           `koanf:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"min=0"`

	// QueryRetries bounds attempts for interaction fetches (1 = no retry).
	QueryRetries         uint          `koanf:"query_retries" validate:"min=1,max=10"`
	RetryInitialInterval time.Duration `koanf:"retry_initial_interval" validate:"gt=0"`
}

// RecommendConfig holds settings shared by the product and supplier engines.
type RecommendConfig struct {
	TrainInterval  time.Duration `koanf:"train_interval"`
	TrainOnStartup bool          `koanf:"train_on_startup"`

	MaxRank     int `koanf:"max_rank" validate:"min=1"`
	DefaultTopK int `koanf:"default_top_k" validate:"min=1"`
	MaxTopK     int `koanf:"max_top_k" validate:"min=1"`

	// Interaction source weights.
	OrderWeight    float64 `koanf:"order_weight" validate:"gte=0"`
	CartWeight     float64 `koanf:"cart_weight" validate:"gte=0"`
	WishlistWeight float64 `koanf:"wishlist_weight" validate:"gte=0"`

	// SupplierOmitColumns are removed from supplier detail rows.
	SupplierOmitColumns []string `koanf:"supplier_omit_columns"`

	// Detail rows are cached per id for DetailCacheTTL; zero disables the cache.
	DetailCacheTTL  time.Duration `koanf:"detail_cache_ttl" validate:"gte=0"`
	DetailCacheSize int           `koanf:"detail_cache_size" validate:"gte=0"`
}

// EngineConfig returns the per-engine tunables.
func (c *RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		MaxRank:     c.MaxRank,
		DefaultTopK: c.DefaultTopK,
		MaxTopK:     c.MaxTopK,
	}
}

// DetailBreakerConfig configures the circuit breaker around detail lookups.
type DetailBreakerConfig struct {
	FailureThreshold uint32        `koanf:"failure_threshold" validate:"min=1"`
	OpenTimeout      time.Duration `koanf:"open_timeout" validate:"gt=0"`
	MaxHalfOpen      uint32        `koanf:"max_half_open" validate:"min=1"`
}

// EventsConfig configures retraining on marketplace change events.
type EventsConfig struct {
	Enabled    bool   `koanf:"enabled"`
	NATSURL    string `koanf:"nats_url" validate:"omitempty,nats_url"`
	Topic      string `koanf:"topic"`
	QueueGroup string `koanf:"queue_group"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic disabled"`
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
