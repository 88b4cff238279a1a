// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

/*
Package services provides suture.Service wrappers for the recommender's
long-running components.

Each wrapper implements suture.Service and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

Recommendation training (RecommendService):
  - One service per engine (product, supplier)
  - Retrains on a fixed interval and whenever its trigger fires
  - A failed cycle is logged and never stops the loop
  - A running cycle is not cancelled by shutdown

Retrain trigger (RetrainTrigger):
  - Fan-out of manual (HTTP) and event (NATS) retrain requests
  - Requests arriving while a cycle runs collapse into one follow-up cycle

HTTP server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - http.ErrServerClosed is treated as a clean stop

# Usage

	trigger := services.NewRetrainTrigger(recommend.KindProduct, recommend.KindSupplier)
	svc := services.NewRecommendService(productEngine, trigger.Channel(recommend.KindProduct),
	    services.RecommendServiceConfig{TrainInterval: time.Minute}, logger)
	tree.AddTrainingService(svc)
*/
package services
