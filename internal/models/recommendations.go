// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package models

import (
	"github.com/tomtom215/kollabee-recommender/internal/recommend"
)

// ProductRecommendations is the body of GET /recommendations/{buyerID}.
// Products are ordered best first.
type ProductRecommendations struct {
	RecommendedProducts []recommend.Detail `json:"recommended_products"`
}

// SupplierRecommendations is the body of GET /recommend-suppliers/{buyerID}.
// Suppliers are ordered best first.
type SupplierRecommendations struct {
	RecommendedSuppliers []recommend.Detail `json:"recommended_suppliers"`
}

// NewRecommendations returns the body matching kind. A nil slice is
// encoded as an empty array.
func NewRecommendations(kind recommend.EntityKind, details []recommend.Detail) interface{} {
	if details == nil {
		details = []recommend.Detail{}
	}
	if kind == recommend.KindSupplier {
		return SupplierRecommendations{RecommendedSuppliers: details}
	}
	return ProductRecommendations{RecommendedProducts: details}
}

// EngineStatus is one engine's entry in the training status report.
type EngineStatus struct {
	recommend.TrainingStatus

	// DetailBreaker is the circuit breaker state of the engine's detail
	// store ("closed", "half-open" or "open"), when known.
	DetailBreaker string `json:"detail_breaker,omitempty"`
}

// RecommendStatusResponse is the data of GET /api/v1/recommend/status.
type RecommendStatusResponse struct {
	Ready   bool           `json:"ready"`
	Engines []EngineStatus `json:"engines"`
}

// TrainResponse is the data of POST /api/v1/recommend/train.
type TrainResponse struct {
	Triggered []recommend.EntityKind `json:"triggered"`
}

// HealthResponse is the data of the liveness and readiness probes.
type HealthResponse struct {
	Status  string          `json:"status"`
	Uptime  float64         `json:"uptime_seconds"`
	Engines map[string]bool `json:"engines,omitempty"`
}
