// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/kollabee-recommender/config.yaml",
	"/etc/kollabee-recommender/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults. DATABASE_URL has no default.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			URL:                  "",
			MaxOpenConns:         10,
			MaxIdleConns:         2,
			ConnMaxLifetime:      time.Hour,
			QueryRetries:         3,
			RetryInitialInterval: 500 * time.Millisecond,
		},
		Recommend: RecommendConfig{
			TrainInterval:       60 * time.Second,
			TrainOnStartup:      true,
			MaxRank:             20,
			DefaultTopK:         5,
			MaxTopK:             100,
			OrderWeight:         1.0,
			CartWeight:          0.5,
			WishlistWeight:      0.3,
			SupplierOmitColumns: []string{"password"},
			DetailCacheTTL:      30 * time.Second,
			DetailCacheSize:     10000,
		},
		DetailBreaker: DetailBreakerConfig{
			FailureThreshold: 5,
			OpenTimeout:      30 * time.Second,
			MaxHalfOpen:      1,
		},
		Events: EventsConfig{
			Enabled:    false,
			NATSURL:    "nats://127.0.0.1:4222",
			Topic:      "marketplace.interactions.changed",
			QueueGroup: "recommender",
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration with precedence ENV > file > defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"recommend.supplier_omit_columns",
}

// processSliceFields splits comma-separated env values for slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"port":             "server.port",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",

	// Database
	"database_url":         "database.url",
	"db_max_open_conns":    "database.max_open_conns",
	"db_max_idle_conns":    "database.max_idle_conns",
	"db_conn_max_lifetime": "database.conn_max_lifetime",
	"db_query_retries":     "database.query_retries",
	"db_retry_interval":    "database.retry_initial_interval",

	// Recommendation engines
	"train_interval":        "recommend.train_interval",
	"train_on_startup":      "recommend.train_on_startup",
	"max_rank":              "recommend.max_rank",
	"default_top_k":         "recommend.default_top_k",
	"max_top_k":             "recommend.max_top_k",
	"order_weight":          "recommend.order_weight",
	"cart_weight":           "recommend.cart_weight",
	"wishlist_weight":       "recommend.wishlist_weight",
	"supplier_omit_columns": "recommend.supplier_omit_columns",
	"detail_cache_ttl":      "recommend.detail_cache_ttl",
	"detail_cache_size":     "recommend.detail_cache_size",

	// Detail store circuit breaker
	"detail_breaker_failures":  "detail_breaker.failure_threshold",
	"detail_breaker_timeout":   "detail_breaker.open_timeout",
	"detail_breaker_half_open": "detail_breaker.max_half_open",

	// Retrain events
	"events_enabled":     "events.enabled",
	"nats_url":           "events.nats_url",
	"events_topic":       "events.topic",
	"events_queue_group": "events.queue_group",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path.
//
//   - DATABASE_URL -> database.url
//   - HTTP_PORT -> server.port
//   - TRAIN_INTERVAL -> recommend.train_interval
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
