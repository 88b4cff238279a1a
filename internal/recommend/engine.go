// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Note: This package has no dependencies on other internal packages. The
// InteractionSource and DetailStore interfaces let the database layer plug in
// without circular imports.

// Engine is one recommendation pipeline (buyer x product or buyer x supplier).
// It is safe for concurrent use.
type Engine struct {
	kind     EntityKind
	config   *Config
	source   InteractionSource
	details  DetailStore
	registry *Registry
	logger   zerolog.Logger
	now      func() time.Time

	// Training state
	trainMu     sync.Mutex
	statusMu    sync.RWMutex
	trainStatus TrainingStatus
}

// NewEngine creates an engine for kind backed by source and details.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(kind EntityKind, source InteractionSource, details DetailStore, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
	if source == nil {
		return nil, errors.New("interaction source is required")
	}
	if details == nil {
		return nil, errors.New("detail store is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		kind:        kind,
		config:      cfg,
		source:      source,
		details:     details,
		registry:    NewRegistry(),
		logger:      logger.With().Str("component", "recommend").Str("kind", string(kind)).Logger(),
		now:         time.Now,
		trainStatus: TrainingStatus{Kind: kind},
	}, nil
}

// Kind returns the entity kind served by the engine.
func (e *Engine) Kind() EntityKind {
	return e.kind
}

// Registry returns the engine's snapshot registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Train fetches the full interaction set, builds a new snapshot and publishes
// it. On any error the live snapshot is left untouched. Returns
// ErrTrainingInProgress immediately if another run holds the engine.
func (e *Engine) Train(ctx context.Context) error {
	if !e.trainMu.TryLock() {
		return ErrTrainingInProgress
	}
	defer e.trainMu.Unlock()

	start := e.now()
	e.beginTraining(start)

	snap, err := e.buildSnapshot(ctx, start)
	if err == nil {
		// Status must never report a version that is not yet served.
		e.registry.Publish(snap)
	}
	e.finishTraining(start, snap, err)
	if err != nil {
		return err
	}

	buyers, items := snap.Interactions().Dims()
	e.logger.Info().
		Int64("version", snap.Version()).
		Int("buyers", buyers).
		Int("items", items).
		Int("interactions", snap.Interactions().NNZ()).
		Float64("total_weight", snap.Interactions().Sum()).
		Int("rank", snap.Rank()).
		Dur("duration", e.now().Sub(start)).
		Msg("model snapshot published")

	return nil
}

// buildSnapshot loads interactions and trains the next snapshot generation.
func (e *Engine) buildSnapshot(ctx context.Context, start time.Time) (*ModelSnapshot, error) {
	records, err := e.source.FetchInteractions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDataSourceFailure, e.kind, err)
	}

	e.logger.Debug().Int("records", len(records)).Msg("loaded training data")

	var version int64 = 1
	if current := e.registry.Current(); current != nil {
		version = current.Version() + 1
	}

	snap, err := TrainSnapshot(e.kind, records, e.config.MaxRank, version, start)
	if err != nil {
		return nil, fmt.Errorf("train %s model: %w", e.kind, err)
	}
	return snap, nil
}

// beginTraining marks a run as started.
func (e *Engine) beginTraining(start time.Time) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()

	e.trainStatus.IsTraining = true
	e.trainStatus.LastAttemptAt = start
}

// finishTraining records the outcome of a run.
func (e *Engine) finishTraining(start time.Time, snap *ModelSnapshot, err error) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()

	e.trainStatus.IsTraining = false
	e.trainStatus.LastTrainingDurationMS = e.now().Sub(start).Milliseconds()
	e.trainStatus.TrainCount++

	if err != nil {
		e.trainStatus.FailureCount++
		e.trainStatus.LastError = err.Error()
		return
	}

	buyers, items := snap.Interactions().Dims()
	e.trainStatus.LastError = ""
	e.trainStatus.Ready = true
	e.trainStatus.ModelVersion = snap.Version()
	e.trainStatus.LastTrainedAt = snap.TrainedAt()
	e.trainStatus.BuyerCount = buyers
	e.trainStatus.ItemCount = items
	e.trainStatus.InteractionCount = snap.Interactions().NNZ()
	e.trainStatus.TotalWeight = snap.Interactions().Sum()
	e.trainStatus.Rank = snap.Rank()
}

// GetStatus returns the current training status.
func (e *Engine) GetStatus() TrainingStatus {
	e.statusMu.RLock()
	defer e.statusMu.RUnlock()

	return e.trainStatus
}

// Ready reports whether a snapshot has been published.
func (e *Engine) Ready() bool {
	return e.registry.Ready()
}

// Recommend returns detail records for up to topK unseen items, best first.
// topK <= 0 selects the configured default; larger values are capped.
//
// A missing model or an unknown buyer produce an empty, non-nil slice and a
// nil error. Only a failing detail store is reported, wrapped in
// ErrDetailLookupFailure.
func (e *Engine) Recommend(ctx context.Context, buyerID string, topK int) ([]Detail, error) {
	snap := e.registry.Current()
	if snap == nil {
		e.logger.Debug().Err(ErrModelNotReady).Str("buyer_id", buyerID).Msg("no recommendations")
		return []Detail{}, nil
	}

	picks := Recommend(snap, buyerID, e.config.clampTopK(topK))
	if len(picks) == 0 {
		return []Detail{}, nil
	}

	ids := lo.Map(picks, func(p ScoredItem, _ int) string { return p.ID })
	rows, err := e.details.LookupDetails(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDetailLookupFailure, e.kind, err)
	}

	return orderDetails(ids, rows), nil
}

// orderDetails arranges rows in the order of ids. Ids without a row are
// skipped; rows whose id was not requested are dropped.
func orderDetails(ids []string, rows []Detail) []Detail {
	byID := make(map[string]Detail, len(rows))
	for _, row := range rows {
		if id, ok := row.ID(); ok {
			byID[id] = row
		}
	}

	out := make([]Detail, 0, len(ids))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			out = append(out, row)
		}
	}
	return out
}

// ID returns the id column of the row as a string.
func (d Detail) ID() (string, bool) {
	switch v := d[DetailIDKey].(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case nil:
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}
