// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

// Package testinfra provides container-backed infrastructure for
// integration tests, built on testcontainers-go.
//
// # PostgreSQL
//
// PostgresContainer starts a real PostgreSQL instance so the marketplace
// interaction queries run against the same dialect as production:
//
//	func TestProductInteractions(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    pg, err := testinfra.NewPostgresContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, pg)
//
//	    db, err := database.Open(ctx, &config.DatabaseConfig{URL: pg.URL, ...})
//	    // ...
//	}
//
// # NATS
//
// NATSContainer starts a NATS server for the retrain event subscriber.
//
// These helpers are compiled only with the integration build tag. Tests are
// skipped when Docker is unavailable.
package testinfra
