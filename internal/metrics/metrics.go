// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Training Metrics
	TrainDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_train_duration_seconds",
			Help:    "Duration of recommendation model training runs in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"kind"},
	)

	TrainRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_train_runs_total",
			Help: "Total number of training runs by result",
		},
		[]string{"kind", "result"},
	)

	TrainLastSuccess = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recommend_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last published model snapshot",
		},
		[]string{"kind"},
	)

	ModelVersion = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recommend_model_version",
			Help: "Version of the live model snapshot",
		},
		[]string{"kind"},
	)

	SnapshotBuyers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recommend_snapshot_buyers",
			Help: "Number of buyers in the live model snapshot",
		},
		[]string{"kind"},
	)

	SnapshotItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recommend_snapshot_items",
			Help: "Number of items in the live model snapshot",
		},
		[]string{"kind"},
	)

	SnapshotRank = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recommend_snapshot_rank",
			Help: "Number of latent factors of the live model snapshot",
		},
		[]string{"kind"},
	)

	RetrainTriggers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_retrain_triggers_total",
			Help: "Total number of retrain triggers by source",
		},
		[]string{"source"},
	)

	// Serving Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"kind", "outcome"},
	)

	RecommendItemsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_items_returned",
			Help:    "Number of items returned per recommendation request",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
		[]string{"kind"},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of marketplace database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of marketplace database query errors",
		},
		[]string{"operation", "table"},
	)

	DetailLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "detail_lookup_duration_seconds",
			Help:    "Duration of detail lookups for recommended ids in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	DetailCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "detail_cache_lookups_total",
			Help: "Total number of detail cache lookups by result (hit/miss)",
		},
		[]string{"kind", "result"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// Training run results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultSkipped = "skipped"
)

// Recommendation request outcomes.
const (
	OutcomeServed = "served"
	OutcomeEmpty  = "empty"
	OutcomeError  = "error"
)

// RecordDBQuery records a database query.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records an API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SnapshotShape describes a published model snapshot.
type SnapshotShape struct {
	Version int64
	Buyers  int
	Items   int
	Rank    int
}

// RecordTrainSuccess records a published snapshot.
func RecordTrainSuccess(kind string, duration time.Duration, shape SnapshotShape) {
	TrainDuration.WithLabelValues(kind).Observe(duration.Seconds())
	TrainRuns.WithLabelValues(kind, ResultSuccess).Inc()
	TrainLastSuccess.WithLabelValues(kind).SetToCurrentTime()
	ModelVersion.WithLabelValues(kind).Set(float64(shape.Version))
	SnapshotBuyers.WithLabelValues(kind).Set(float64(shape.Buyers))
	SnapshotItems.WithLabelValues(kind).Set(float64(shape.Items))
	SnapshotRank.WithLabelValues(kind).Set(float64(shape.Rank))
}

// RecordTrainFailure records a failed or skipped training run.
func RecordTrainFailure(kind, result string, duration time.Duration) {
	TrainDuration.WithLabelValues(kind).Observe(duration.Seconds())
	TrainRuns.WithLabelValues(kind, result).Inc()
}

// RecordRetrainTrigger counts a retrain trigger from source.
func RecordRetrainTrigger(source string) {
	RetrainTriggers.WithLabelValues(source).Inc()
}

// RecordRecommendation records one served recommendation request.
func RecordRecommendation(kind string, returned int, err error) {
	switch {
	case err != nil:
		RecommendRequests.WithLabelValues(kind, OutcomeError).Inc()
		return
	case returned == 0:
		RecommendRequests.WithLabelValues(kind, OutcomeEmpty).Inc()
	default:
		RecommendRequests.WithLabelValues(kind, OutcomeServed).Inc()
	}
	RecommendItemsReturned.WithLabelValues(kind).Observe(float64(returned))
}

// RecordDetailLookup records the latency of a detail lookup.
func RecordDetailLookup(kind string, duration time.Duration) {
	DetailLookupDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordDetailCache counts per-id detail cache hits and misses.
func RecordDetailCache(kind string, hits, misses int) {
	if hits > 0 {
		DetailCacheLookups.WithLabelValues(kind, "hit").Add(float64(hits))
	}
	if misses > 0 {
		DetailCacheLookups.WithLabelValues(kind, "miss").Add(float64(misses))
	}
}

// Circuit breaker state values.
const (
	BreakerClosed   = 0
	BreakerHalfOpen = 1
	BreakerOpen     = 2
)

// RecordCircuitBreakerTransition updates the breaker state gauge.
func RecordCircuitBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}
