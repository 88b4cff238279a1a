// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/kollabee-recommender/internal/logging"
)

// DefaultSlowRequestThreshold marks requests logged at warn level.
const DefaultSlowRequestThreshold = time.Second

// AccessLog logs one line per request through logging.Ctx, so the request id
// is included. Requests slower than slow are logged at warn level; a
// non-positive slow uses DefaultSlowRequestThreshold.
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	if slow <= 0 {
		slow = DefaultSlowRequestThreshold
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())

			event := logger.Debug()
			switch {
			case rec.statusCode >= http.StatusInternalServerError:
				event = logger.Error()
			case duration > slow:
				event = logger.Warn().Bool("slow", true)
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("status", rec.statusCode).
				Int("bytes", rec.bytes).
				Dur("duration", duration).
				Msg("http request")
		})
	}
}
