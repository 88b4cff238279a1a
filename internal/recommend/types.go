// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package recommend

import (
	"context"
	"time"
)

// EntityKind identifies which entity fills the item role of a pipeline.
type EntityKind string

const (
	// KindProduct recommends catalog products to buyers.
	KindProduct EntityKind = "product"

	// KindSupplier recommends sellers (by their user id) to buyers.
	KindSupplier EntityKind = "supplier"
)

// Valid reports whether k is a known entity kind.
func (k EntityKind) Valid() bool {
	return k == KindProduct || k == KindSupplier
}

// String returns the kind name.
func (k EntityKind) String() string {
	return string(k)
}

// InteractionRecord is one buyer-item signal with its source weight.
type InteractionRecord struct {
	// BuyerID is the buyer's user id.
	BuyerID string `json:"buyer_id"`

	// ItemID is a product id or a supplier user id, depending on the pipeline.
	ItemID string `json:"item_id"`

	// Weight is the interaction strength (order 1.0, cart 0.5, wishlist 0.3).
	Weight float64 `json:"weight"`
}

// ScoredItem is a recommended item id with its predicted affinity.
type ScoredItem struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Detail is one entity detail row as returned by the detail store.
// Rows are keyed by column name and must carry DetailIDKey.
type Detail map[string]any

// DetailIDKey is the column used to match detail rows back to recommended ids.
const DetailIDKey = "id"

// InteractionSource yields the full current interaction set for one pipeline.
// Implementations return an empty slice, not an error, when no rows exist.
type InteractionSource interface {
	FetchInteractions(ctx context.Context) ([]InteractionRecord, error)
}

// SourceFunc adapts a function to InteractionSource.
type SourceFunc func(ctx context.Context) ([]InteractionRecord, error)

// FetchInteractions calls f(ctx).
func (f SourceFunc) FetchInteractions(ctx context.Context) ([]InteractionRecord, error) {
	return f(ctx)
}

// DetailStore resolves entity ids to detail rows. Row order is not significant.
type DetailStore interface {
	LookupDetails(ctx context.Context, ids []string) ([]Detail, error)
}

// DetailFunc adapts a function to DetailStore.
type DetailFunc func(ctx context.Context, ids []string) ([]Detail, error)

// LookupDetails calls f(ctx, ids).
func (f DetailFunc) LookupDetails(ctx context.Context, ids []string) ([]Detail, error) {
	return f(ctx, ids)
}

// TrainingStatus reports the training state of one engine.
type TrainingStatus struct {
	// Kind is the entity kind served by the engine.
	Kind EntityKind `json:"kind"`

	// Ready is true once a snapshot has been published.
	Ready bool `json:"ready"`

	// IsTraining indicates whether training is currently in progress.
	IsTraining bool `json:"is_training"`

	// ModelVersion is the version of the live snapshot (0 when not ready).
	ModelVersion int64 `json:"model_version"`

	// LastTrainedAt is when the live snapshot was built.
	LastTrainedAt time.Time `json:"last_trained_at,omitempty"`

	// LastAttemptAt is when the most recent training run started.
	LastAttemptAt time.Time `json:"last_attempt_at,omitempty"`

	// LastTrainingDurationMS is how long the most recent training run took.
	LastTrainingDurationMS int64 `json:"last_training_duration_ms"`

	// LastError contains the error of the most recent run, if it failed.
	LastError string `json:"last_error,omitempty"`

	// BuyerCount, ItemCount and InteractionCount describe the live snapshot.
	BuyerCount       int `json:"buyer_count"`
	ItemCount        int `json:"item_count"`
	InteractionCount int `json:"interaction_count"`

	// TotalWeight is the summed interaction weight of the live snapshot.
	TotalWeight float64 `json:"total_weight"`

	// Rank is the number of latent factors of the live snapshot.
	Rank int `json:"rank"`

	// TrainCount and FailureCount are cumulative run counters.
	TrainCount   int64 `json:"train_count"`
	FailureCount int64 `json:"failure_count"`
}
