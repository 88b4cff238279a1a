// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/kollabee-recommender/internal/models"
	"github.com/tomtom215/kollabee-recommender/internal/recommend"
)

// fakeRecommender returns canned results and records the last request.
type fakeRecommender struct {
	kind    recommend.EntityKind
	details []recommend.Detail
	err     error
	ready   bool
	status  recommend.TrainingStatus

	mu       sync.Mutex
	calls    int
	gotBuyer string
	gotTopK  int
}

func newFakeRecommender(kind recommend.EntityKind, details ...recommend.Detail) *fakeRecommender {
	return &fakeRecommender{kind: kind, details: details, ready: true}
}

func (f *fakeRecommender) Kind() recommend.EntityKind { return f.kind }

func (f *fakeRecommender) Recommend(_ context.Context, buyerID string, topK int) ([]recommend.Detail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.gotBuyer = buyerID
	f.gotTopK = topK
	if f.err != nil {
		return nil, f.err
	}
	if f.details == nil {
		return []recommend.Detail{}, nil
	}
	return f.details, nil
}

func (f *fakeRecommender) GetStatus() recommend.TrainingStatus {
	status := f.status
	status.Kind = f.kind
	status.Ready = f.ready
	return status
}

func (f *fakeRecommender) Ready() bool { return f.ready }

func (f *fakeRecommender) lastRequest() (calls int, buyerID string, topK int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, f.gotBuyer, f.gotTopK
}

// fakeTrigger records Fire calls.
type fakeTrigger struct {
	mu    sync.Mutex
	fires []fireCall
}

type fireCall struct {
	source string
	kinds  []recommend.EntityKind
}

func (f *fakeTrigger) Fire(source string, kinds ...recommend.EntityKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fires = append(f.fires, fireCall{source: source, kinds: kinds})
}

func (f *fakeTrigger) calls() []fireCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fireCall(nil), f.fires...)
}

type fixedBreaker string

func (b fixedBreaker) State() string { return string(b) }

// testEnv bundles a handler with its fakes.
type testEnv struct {
	products  *fakeRecommender
	suppliers *fakeRecommender
	trigger   *fakeTrigger
	handler   *Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		products: newFakeRecommender(recommend.KindProduct,
			recommend.Detail{"id": "p2", "name": "Tote bag"},
			recommend.Detail{"id": "p1", "name": "Canvas"},
		),
		suppliers: newFakeRecommender(recommend.KindSupplier,
			recommend.Detail{"id": "s1", "company": "Loomworks"},
		),
		trigger: &fakeTrigger{},
	}

	h, err := NewHandler(HandlerDeps{
		Products:  env.products,
		Suppliers: env.suppliers,
		Trigger:   env.trigger,
		Breakers: map[recommend.EntityKind]BreakerState{
			recommend.KindProduct:  fixedBreaker("closed"),
			recommend.KindSupplier: fixedBreaker("open"),
		},
		DefaultTopK: 5,
	})
	require.NoError(t, err)
	env.handler = h
	return env
}

// router returns the full middleware stack with rate limiting disabled.
func (env *testEnv) router() http.Handler {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(env.handler, NewChiMiddleware(cfg)).SetupChi()
}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}
