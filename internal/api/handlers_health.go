// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/kollabee-recommender/internal/models"
)

// HealthLive handles GET /health/live. The process is alive whenever it can
// answer.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, models.NewSuccessResponse(models.HealthResponse{
		Status: "alive",
		Uptime: time.Since(h.startTime).Seconds(),
	}))
}

// HealthReady handles GET /health/ready. The service is ready once every
// engine has published a model; until then it answers 503 MODEL_NOT_READY.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	engines := make(map[string]bool, len(h.engines))
	ready := true
	for _, e := range h.engines {
		ok := e.Ready()
		engines[e.Kind().String()] = ok
		ready = ready && ok
	}

	if !ready {
		details := make(map[string]interface{}, len(engines))
		for k, v := range engines {
			details[k] = v
		}
		respondJSON(w, http.StatusServiceUnavailable,
			models.NewErrorResponse("MODEL_NOT_READY", "Recommendation models are still training", details))
		return
	}

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(models.HealthResponse{
		Status:  "ready",
		Uptime:  time.Since(h.startTime).Seconds(),
		Engines: engines,
	}))
}
