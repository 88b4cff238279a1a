// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package api

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/kollabee-recommender/internal/recommend"
)

// Recommender is the engine surface the handlers use.
// *recommend.Engine satisfies it.
type Recommender interface {
	Kind() recommend.EntityKind
	Recommend(ctx context.Context, buyerID string, topK int) ([]recommend.Detail, error)
	GetStatus() recommend.TrainingStatus
	Ready() bool
}

// RetrainTrigger requests retraining. An empty kinds list means every
// engine.
type RetrainTrigger interface {
	Fire(source string, kinds ...recommend.EntityKind)
}

// BreakerState reports a circuit breaker's state by name.
type BreakerState interface {
	State() string
}

// HandlerDeps are the collaborators of a Handler.
type HandlerDeps struct {
	Products  Recommender
	Suppliers Recommender
	Trigger   RetrainTrigger

	// Breakers optionally maps each kind to its detail store breaker for
	// the status report.
	Breakers map[recommend.EntityKind]BreakerState

	// DefaultTopK is used when a request omits top_k.
	DefaultTopK int
}

// Handler serves the recommender's HTTP endpoints.
type Handler struct {
	products    Recommender
	suppliers   Recommender
	engines     []Recommender
	trigger     RetrainTrigger
	breakers    map[recommend.EntityKind]BreakerState
	defaultTopK int
	startTime   time.Time
}

// NewHandler validates deps and creates a Handler.
func NewHandler(deps HandlerDeps) (*Handler, error) {
	if deps.Products == nil || deps.Suppliers == nil {
		return nil, errors.New("api: product and supplier recommenders are required")
	}
	if deps.Trigger == nil {
		return nil, errors.New("api: retrain trigger is required")
	}
	defaultTopK := deps.DefaultTopK
	if defaultTopK <= 0 {
		defaultTopK = recommend.DefaultConfig().DefaultTopK
	}

	return &Handler{
		products:    deps.Products,
		suppliers:   deps.Suppliers,
		engines:     []Recommender{deps.Products, deps.Suppliers},
		trigger:     deps.Trigger,
		breakers:    deps.Breakers,
		defaultTopK: defaultTopK,
		startTime:   time.Now(),
	}, nil
}
