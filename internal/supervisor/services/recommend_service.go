// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/kollabee-recommender/internal/metrics"
	"github.com/tomtom215/kollabee-recommender/internal/recommend"
)

// DefaultTrainInterval is used when no interval is configured.
const DefaultTrainInterval = 60 * time.Second

// RecommendEngine is the training side of a recommend.Engine.
type RecommendEngine interface {
	Kind() recommend.EntityKind
	Train(ctx context.Context) error
	GetStatus() recommend.TrainingStatus
}

// Ticker is the subset of *time.Ticker used by the training loop.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates the loop's ticker. Tests inject a manual ticker.
type TickerFactory func(d time.Duration) Ticker

type timeTicker struct{ *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.Ticker.C }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// RecommendServiceConfig holds configuration for the training loop.
type RecommendServiceConfig struct {
	// TrainInterval is the retraining period.
	// Default: 60s
	TrainInterval time.Duration

	// TrainOnStartup runs a cycle as soon as the service starts. Disable it
	// when main already ran a blocking initial cycle.
	TrainOnStartup bool
}

// RecommendService retrains one engine on a schedule and on demand.
type RecommendService struct {
	engine    RecommendEngine
	trigger   <-chan struct{}
	config    RecommendServiceConfig
	newTicker TickerFactory
	logger    zerolog.Logger
	name      string
}

// NewRecommendService creates the training service for engine. trigger may
// be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRecommendService(engine RecommendEngine, trigger <-chan struct{}, cfg RecommendServiceConfig, logger zerolog.Logger) *RecommendService {
	if cfg.TrainInterval <= 0 {
		cfg.TrainInterval = DefaultTrainInterval
	}
	kind := engine.Kind().String()
	return &RecommendService{
		engine:    engine,
		trigger:   trigger,
		config:    cfg,
		newTicker: NewTimeTicker,
		logger:    logger.With().Str("service", "recommend").Str("kind", kind).Logger(),
		name:      "recommend-" + kind,
	}
}

// WithTickerFactory replaces the ticker used by Serve.
func (s *RecommendService) WithTickerFactory(factory TickerFactory) *RecommendService {
	s.newTicker = factory
	return s
}

// Serve implements suture.Service. Cycle failures are logged and never end
// the loop; only ctx cancellation does.
func (s *RecommendService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("train_on_startup", s.config.TrainOnStartup).
		Dur("train_interval", s.config.TrainInterval).
		Msg("recommendation service starting")

	if s.config.TrainOnStartup {
		_ = s.RunOnce(ctx)
	}

	ticker := s.newTicker(s.config.TrainInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("recommendation service shutting down")
			return ctx.Err()

		case <-ticker.C():
			s.logger.Debug().Msg("scheduled training triggered")
			_ = s.RunOnce(ctx)

		case <-s.trigger:
			s.logger.Info().Msg("on-demand training triggered")
			_ = s.RunOnce(ctx)
		}
	}
}

// RunOnce runs a single training cycle and records its outcome. The cycle
// runs to completion even if ctx is cancelled meanwhile.
func (s *RecommendService) RunOnce(ctx context.Context) error {
	kind := s.engine.Kind().String()
	start := time.Now()

	err := s.engine.Train(context.WithoutCancel(ctx))
	duration := time.Since(start)

	switch {
	case err == nil:
		status := s.engine.GetStatus()
		metrics.RecordTrainSuccess(kind, duration, metrics.SnapshotShape{
			Version: status.ModelVersion,
			Buyers:  status.BuyerCount,
			Items:   status.ItemCount,
			Rank:    status.Rank,
		})
		s.logger.Info().
			Int64("version", status.ModelVersion).
			Dur("duration", duration).
			Msg("model training complete")

	case errors.Is(err, recommend.ErrTrainingInProgress):
		metrics.RecordTrainFailure(kind, metrics.ResultSkipped, duration)
		s.logger.Debug().Msg("training already in progress, cycle skipped")

	case errors.Is(err, recommend.ErrDegenerateModel):
		metrics.RecordTrainFailure(kind, metrics.ResultSkipped, duration)
		s.logger.Warn().Err(err).Msg("not enough interactions to train, keeping previous model")

	default:
		metrics.RecordTrainFailure(kind, metrics.ResultFailure, duration)
		s.logger.Warn().Err(err).Dur("duration", duration).Msg("training failed, keeping previous model")
	}

	return err
}

// String returns the service name for logging.
func (s *RecommendService) String() string {
	return s.name
}
