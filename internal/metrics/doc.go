// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

/*
Package metrics defines the service's Prometheus metrics.

Metrics are registered on the default registry with promauto and exposed at
/metrics by the API router.

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests

Training (label kind = product | supplier):
  - recommend_train_duration_seconds{kind}
  - recommend_train_runs_total{kind, result}   result = success | failure | skipped
  - recommend_last_success_timestamp_seconds{kind}
  - recommend_model_version{kind}
  - recommend_snapshot_buyers{kind}, recommend_snapshot_items{kind}
  - recommend_snapshot_rank{kind}

Serving:
  - recommend_requests_total{kind, outcome}    outcome = served | empty | error
  - recommend_items_returned{kind}

Data source and detail store:
  - db_query_duration_seconds{operation, table}
  - db_query_errors_total{operation, table}
  - detail_lookup_duration_seconds{kind}
  - circuit_breaker_state{name}                0=closed, 1=half-open, 2=open

Retrain triggers:
  - recommend_retrain_triggers_total{source}   source = timer | event | api
*/
package metrics
