// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

// Package logging provides the process-wide zerolog logger for the
// recommender service.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("kind", "product").Msg("Engine trained")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Detail lookup failed")
//
// # Component Loggers
//
// Long-lived components take a child logger at construction:
//
//	logger := logging.WithComponent("recommend")
//	engine, err := recommend.NewEngine(kind, source, details, cfg, logger)
//
// # Request Context
//
// The HTTP layer stores a request id in the context; Ctx(ctx) returns a
// logger that carries it as the request_id field.
//
// # Adapters
//
// Libraries that bring their own logging interface are bridged onto the same
// zerolog output:
//
//	slogLogger := logging.NewSlogLogger()                // suture / sutureslog
//	wmLogger := logging.NewWatermillLogger(zl)           // watermill subscribers
//
// # Output Formats
//
// JSON Format (Production):
//
//	{"level":"info","time":"2026-01-03T10:30:00Z","component":"recommend","kind":"product","message":"model snapshot published"}
//
// Console Format (Development):
//
//	10:30:00 INF model snapshot published component=recommend kind=product
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. The global logger is
// protected by a sync.RWMutex for reconfiguration.
package logging
