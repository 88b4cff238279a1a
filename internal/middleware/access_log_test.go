// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/kollabee-recommender/internal/logging"
)

func serveWithLogger(t *testing.T, slow time.Duration, handler http.HandlerFunc) string {
	t.Helper()
	var buf bytes.Buffer
	logger := logging.NewTestLogger(&buf)

	chain := RequestID(AccessLog(slow)(handler))
	withLogger := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chain.ServeHTTP(w, r.WithContext(logging.ContextWithLogger(r.Context(), logger)))
	})

	req := httptest.NewRequest(http.MethodGet, "/recommendations/u1", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	withLogger.ServeHTTP(httptest.NewRecorder(), req)
	return buf.String()
}

func TestAccessLog(t *testing.T) {
	previous := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	t.Run("fast request logged at debug", func(t *testing.T) {
		out := serveWithLogger(t, time.Hour, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})
		for _, want := range []string{`"level":"debug"`, `"status":200`, `"bytes":2`, `"request_id":"req-1"`} {
			if !strings.Contains(out, want) {
				t.Errorf("log %q missing %s", out, want)
			}
		}
	})

	t.Run("slow request logged at warn", func(t *testing.T) {
		out := serveWithLogger(t, time.Nanosecond, func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(2 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		})
		if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, `"slow":true`) {
			t.Errorf("expected slow warning, got %q", out)
		}
	})

	t.Run("server error logged at error", func(t *testing.T) {
		out := serveWithLogger(t, time.Hour, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, `"status":503`) {
			t.Errorf("expected error entry, got %q", out)
		}
	})
}
