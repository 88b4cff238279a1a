// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

// Package middleware provides the HTTP middleware shared by all API routes:
// request ids wired into the logging context, Prometheus request metrics
// labelled by chi route pattern, and a zerolog access log that flags slow
// requests.
//
// All middleware use the standard func(http.Handler) http.Handler shape and
// are mounted with chi's Router.Use.
package middleware
