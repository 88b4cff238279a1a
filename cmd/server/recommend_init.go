// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/kollabee-recommender/internal/api"
	"github.com/tomtom215/kollabee-recommender/internal/config"
	"github.com/tomtom215/kollabee-recommender/internal/database"
	"github.com/tomtom215/kollabee-recommender/internal/recommend"
	"github.com/tomtom215/kollabee-recommender/internal/supervisor"
	"github.com/tomtom215/kollabee-recommender/internal/supervisor/services"
)

// RecommendComponents holds the engines, their detail stores and the
// services that retrain them.
type RecommendComponents struct {
	Products        *recommend.Engine
	Suppliers       *recommend.Engine
	ProductDetails  *database.DetailStore
	SupplierDetails *database.DetailStore
	Trigger         *services.RetrainTrigger
	Services        []*services.RecommendService
}

// initRecommend builds the product and supplier engines over db and one
// retraining service per engine.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, db *database.DB, logger zerolog.Logger) (*RecommendComponents, error) {
	weights := database.WeightsFromConfig(&cfg.Recommend)
	engineCfg := cfg.Recommend.EngineConfig()

	rc := &RecommendComponents{
		ProductDetails:  database.NewProductDetailStore(db, &cfg.DetailBreaker),
		SupplierDetails: database.NewSupplierDetailStore(db, cfg.Recommend.SupplierOmitColumns, &cfg.DetailBreaker),
		Trigger:         services.NewRetrainTrigger(recommend.KindProduct, recommend.KindSupplier),
	}

	var err error
	rc.Products, err = recommend.NewEngine(recommend.KindProduct,
		database.NewProductSource(db, weights), detailsFor(recommend.KindProduct, rc.ProductDetails, &cfg.Recommend), engineCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create product engine: %w", err)
	}
	rc.Suppliers, err = recommend.NewEngine(recommend.KindSupplier,
		database.NewSupplierSource(db, weights), detailsFor(recommend.KindSupplier, rc.SupplierDetails, &cfg.Recommend), engineCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create supplier engine: %w", err)
	}

	// The initial cycle runs synchronously in trainInitial, so the services
	// start with the interval.
	svcCfg := services.RecommendServiceConfig{
		TrainInterval:  cfg.Recommend.TrainInterval,
		TrainOnStartup: false,
	}
	for _, engine := range rc.Engines() {
		rc.Services = append(rc.Services,
			services.NewRecommendService(engine, rc.Trigger.Channel(engine.Kind()), svcCfg, logger))
	}

	logger.Info().
		Dur("train_interval", cfg.Recommend.TrainInterval).
		Int("max_rank", engineCfg.MaxRank).
		Int("default_top_k", engineCfg.DefaultTopK).
		Int("max_top_k", engineCfg.MaxTopK).
		Float64("order_weight", weights.Order).
		Float64("cart_weight", weights.Cart).
		Float64("wishlist_weight", weights.Wishlist).
		Dur("detail_cache_ttl", cfg.Recommend.DetailCacheTTL).
		Msg("recommendation engines initialized")

	return rc, nil
}

// detailsFor puts the detail cache in front of store unless it is disabled.
func detailsFor(kind recommend.EntityKind, store *database.DetailStore, cfg *config.RecommendConfig) recommend.DetailStore {
	if cfg.DetailCacheTTL <= 0 {
		return store
	}
	return database.NewCachedDetailStore(store, kind, cfg.DetailCacheSize, cfg.DetailCacheTTL)
}

// Engines returns the engines in a stable order.
func (rc *RecommendComponents) Engines() []*recommend.Engine {
	return []*recommend.Engine{rc.Products, rc.Suppliers}
}

// trainInitial runs one blocking training cycle per engine. Failures are
// logged and leave the engine without a model; the periodic service
// retries them.
func (rc *RecommendComponents) trainInitial(ctx context.Context) {
	for _, svc := range rc.Services {
		if ctx.Err() != nil {
			return
		}
		_ = svc.RunOnce(ctx)
	}
}

// AddToSupervisor registers the retraining services in the training layer.
func (rc *RecommendComponents) AddToSupervisor(tree *supervisor.SupervisorTree) {
	for _, svc := range rc.Services {
		tree.AddTrainingService(svc)
	}
}

// HandlerDeps returns the API handler dependencies for these engines.
func (rc *RecommendComponents) HandlerDeps(defaultTopK int) api.HandlerDeps {
	return api.HandlerDeps{
		Products:  rc.Products,
		Suppliers: rc.Suppliers,
		Trigger:   rc.Trigger,
		Breakers: map[recommend.EntityKind]api.BreakerState{
			recommend.KindProduct:  rc.ProductDetails,
			recommend.KindSupplier: rc.SupplierDetails,
		},
		DefaultTopK: defaultTopK,
	}
}
