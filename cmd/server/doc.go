// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

/*
Package main is the entry point of the Kollabee recommender service.

The service learns latent factors from marketplace interactions (orders,
carts and wishlists) and recommends unseen products and suppliers to buyers
over HTTP. Models are rebuilt periodically, on demand through the API, and
optionally when marketplace change events arrive over NATS.

# Application Architecture

	RootSupervisor ("kollabee-recommender")
	├── TrainingSupervisor ("training-layer")
	│   ├── recommend-product  (periodic + triggered retraining)
	│   └── recommend-supplier
	├── EventsSupervisor ("events-layer")
	│   └── events-listener    (optional, EVENTS_ENABLED=true)
	└── APISupervisor ("api-layer")
	    └── http-server

Startup order:

 1. Configuration: koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog
 3. Database: gorm over Postgres, SQLite or DuckDB, chosen by DATABASE_URL
 4. Engines: one product and one supplier engine, each trained once before
    the HTTP server starts
 5. Supervisor tree: retraining services, event listener, HTTP server

# Configuration

DATABASE_URL is the only required setting:

	export DATABASE_URL=postgres://kollabee:secret@db:5432/marketplace?sslmode=disable
	./kollabee-recommender

Common overrides:
  - HTTP_PORT (default 8000)
  - TRAIN_INTERVAL (default 60s)
  - DEFAULT_TOP_K (default 5)
  - DETAIL_CACHE_TTL (default 30s, 0 disables the detail row cache)
  - EVENTS_ENABLED, NATS_URL, EVENTS_TOPIC
  - LOG_LEVEL, LOG_FORMAT

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests within the shutdown timeout, retraining loops stop between cycles,
and the database pool is closed last.
*/
package main
