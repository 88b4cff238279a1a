// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

/*
Package config loads and validates the recommender's configuration.

# Configuration Sources

Configuration is layered with koanf v2, later layers overriding earlier ones:
 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, config.yaml, config.yml,
    /etc/kollabee-recommender/config.yaml
 3. Environment variables, mapped explicitly by envTransformFunc

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default: 8000), HTTP_TIMEOUT, SHUTDOWN_TIMEOUT

Database:
  - DATABASE_URL (required): postgres://, postgresql://, sqlite:// or duckdb://
  - DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS, DB_CONN_MAX_LIFETIME
  - DB_QUERY_RETRIES (default: 3), DB_RETRY_INTERVAL (default: 500ms)

Recommendation engines:
  - TRAIN_INTERVAL (default: 60s), TRAIN_ON_STARTUP (default: true)
  - MAX_RANK (default: 20), DEFAULT_TOP_K (default: 5), MAX_TOP_K (default: 100)
  - ORDER_WEIGHT (1.0), CART_WEIGHT (0.5), WISHLIST_WEIGHT (0.3)
  - SUPPLIER_OMIT_COLUMNS (default: password)

Detail store circuit breaker:
  - DETAIL_BREAKER_FAILURES (5), DETAIL_BREAKER_TIMEOUT (30s), DETAIL_BREAKER_HALF_OPEN (1)

Retrain events:
  - EVENTS_ENABLED (default: false), NATS_URL, EVENTS_TOPIC, EVENTS_QUEUE_GROUP

Security:
  - CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Thread Safety

A Config is immutable after Load and safe for concurrent reads.
*/
package config
