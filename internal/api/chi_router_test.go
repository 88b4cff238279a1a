// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package api

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/kollabee-recommender/internal/middleware"
	"github.com/tomtom215/kollabee-recommender/internal/models"
	"github.com/tomtom215/kollabee-recommender/internal/recommend"
)

func TestRouterSetup_Routes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/recommendations/b1", http.StatusOK},
		{http.MethodGet, "/recommend-suppliers/b1", http.StatusOK},
		{http.MethodGet, "/health/live", http.StatusOK},
		{http.MethodGet, "/health/ready", http.StatusOK},
		{http.MethodGet, "/api/v1/recommend/status", http.StatusOK},
		{http.MethodPost, "/api/v1/recommend/train", http.StatusAccepted},
		{http.MethodGet, "/metrics", http.StatusOK},
	}

	env := newTestEnv(t)
	router := env.router()
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()
			rec := serve(t, router, tt.method, tt.path)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouterSetup_NotFoundEnvelope(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := serve(t, env.router(), http.MethodGet, "/api/v1/playbacks")

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, models.StatusError, resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestRouterSetup_MethodNotAllowed(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := serve(t, env.router(), http.MethodGet, "/api/v1/recommend/train")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "METHOD_NOT_ALLOWED", resp.Error.Code)
	assert.Empty(t, env.trigger.calls())
}

func TestRouterSetup_RequestIDAndSecurityHeaders(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/recommendations/b1", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	env.router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestRouterSetup_GzipRecommendations(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/recommendations/b1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	env.router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"recommended_products":[{"id":"p2","name":"Tote bag"},{"id":"p1","name":"Canvas"}]}`,
		string(body))
}

func TestRouterSetup_RecoversPanics(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.handler.products = panickingRecommender{env.products}

	rec := serve(t, env.router(), http.MethodGet, "/recommendations/b1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthReady_NotReady(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.suppliers.ready = false

	rec := serve(t, env.router(), http.MethodGet, "/health/ready")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "MODEL_NOT_READY", resp.Error.Code)
	assert.Equal(t, true, resp.Error.Details["product"])
	assert.Equal(t, false, resp.Error.Details["supplier"])
}

func TestHealthLive_AlwaysOK(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.products.ready = false
	env.suppliers.ready = false

	rec := serve(t, env.router(), http.MethodGet, "/health/live")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, models.StatusSuccess, resp.Status)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alive", data["status"])
}

// panickingRecommender panics on Recommend.
type panickingRecommender struct {
	*fakeRecommender
}

func (panickingRecommender) Recommend(_ context.Context, _ string, _ int) ([]recommend.Detail, error) {
	panic("scorer exploded")
}
