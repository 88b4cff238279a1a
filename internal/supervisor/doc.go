// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

/*
Package supervisor runs the recommender's services under a suture v4
supervisor tree.

# Tree Layout

	kollabee-recommender (root)
	├── training-layer   RecommendService per engine
	├── events-layer     change event listener (when enabled)
	└── api-layer        HTTP server

A crashing service is restarted by its own layer supervisor with backoff;
a failing event listener never takes the HTTP API down with it.

Supervisor events (restarts, backoff, timeouts) are logged through
sutureslog, which writes to the zerolog logger via logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	tree.AddTrainingService(productService)
	tree.AddEventsService(listener)
	tree.AddAPIService(httpService)
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
