// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

/*
Package api serves the recommender over HTTP using the Chi router.

Routes:

	GET  /recommendations/{buyerID}?top_k=N     product recommendations
	GET  /recommend-suppliers/{buyerID}?top_k=N supplier recommendations
	GET  /health/live                           liveness probe
	GET  /health/ready                          ready once every engine has a model
	GET  /api/v1/recommend/status               per-engine training status
	POST /api/v1/recommend/train?kind=K         request an immediate retrain
	GET  /metrics                               Prometheus metrics

Recommendation responses keep the flat wire shape existing clients consume:

	{"recommended_products": [{"id": "...", ...}, ...]}

Every other response, and every error, uses the models.APIResponse envelope.
A buyer without a model or without history receives an empty list with
status 200. Only a failing detail store surfaces as an error
(503 DETAIL_LOOKUP_FAILED).

Middleware stack (outermost first): request id, real IP, access log,
panic recovery, CORS. Data routes add rate limiting, security headers,
Prometheus instrumentation and gzip compression.
*/
package api
