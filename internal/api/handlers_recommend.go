// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/kollabee-recommender/internal/logging"
	"github.com/tomtom215/kollabee-recommender/internal/metrics"
	"github.com/tomtom215/kollabee-recommender/internal/models"
	"github.com/tomtom215/kollabee-recommender/internal/recommend"
	"github.com/tomtom215/kollabee-recommender/internal/supervisor/services"
)

// recommendationsRequest holds the validated parameters of a
// recommendation request. Counts above the engine maximum are capped by
// the engine, not rejected.
type recommendationsRequest struct {
	BuyerID string `json:"buyer_id" validate:"required,max=128"`
	TopK    int    `json:"top_k" validate:"min=1"`
}

// trainRequest holds the optional kind filter of a retrain request.
type trainRequest struct {
	Kind string `json:"kind" validate:"omitempty,oneof=product supplier"`
}

// ProductRecommendations handles GET /recommendations/{buyerID}.
func (h *Handler) ProductRecommendations(w http.ResponseWriter, r *http.Request) {
	h.serveRecommendations(w, r, h.products)
}

// SupplierRecommendations handles GET /recommend-suppliers/{buyerID}.
func (h *Handler) SupplierRecommendations(w http.ResponseWriter, r *http.Request) {
	h.serveRecommendations(w, r, h.suppliers)
}

func (h *Handler) serveRecommendations(w http.ResponseWriter, r *http.Request, engine Recommender) {
	topK, err := getIntParam(r, "top_k", h.defaultTopK)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	req := recommendationsRequest{
		BuyerID: chi.URLParam(r, "buyerID"),
		TopK:    topK,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	kind := engine.Kind()
	details, err := engine.Recommend(r.Context(), req.BuyerID, req.TopK)
	metrics.RecordRecommendation(kind.String(), len(details), err)
	if err != nil {
		if errors.Is(err, recommend.ErrDetailLookupFailure) {
			respondError(w, http.StatusServiceUnavailable, "DETAIL_LOOKUP_FAILED",
				"Recommendation details are temporarily unavailable", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute recommendations", err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("kind", kind.String()).
		Str("buyer_id", sanitizeLogValue(req.BuyerID)).
		Int("top_k", req.TopK).
		Int("returned", len(details)).
		Msg("recommendations served")

	writeJSON(w, http.StatusOK, models.NewRecommendations(kind, details))
}

// RecommendStatus handles GET /api/v1/recommend/status.
func (h *Handler) RecommendStatus(w http.ResponseWriter, _ *http.Request) {
	resp := models.RecommendStatusResponse{
		Ready:   true,
		Engines: make([]models.EngineStatus, 0, len(h.engines)),
	}
	for _, e := range h.engines {
		status := models.EngineStatus{TrainingStatus: e.GetStatus()}
		if b, ok := h.breakers[e.Kind()]; ok && b != nil {
			status.DetailBreaker = b.State()
		}
		resp.Ready = resp.Ready && status.Ready
		resp.Engines = append(resp.Engines, status)
	}

	respondJSON(w, http.StatusOK, models.NewSuccessResponse(resp))
}

// TriggerTraining handles POST /api/v1/recommend/train. The optional kind
// query parameter limits the retrain to one engine. Requests are queued,
// so the response is 202 even while a cycle is running.
func (h *Handler) TriggerTraining(w http.ResponseWriter, r *http.Request) {
	req := trainRequest{Kind: r.URL.Query().Get("kind")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	var kinds []recommend.EntityKind
	if req.Kind != "" {
		kinds = []recommend.EntityKind{recommend.EntityKind(req.Kind)}
	}
	h.trigger.Fire(services.TriggerManual, kinds...)

	triggered := kinds
	if len(triggered) == 0 {
		triggered = make([]recommend.EntityKind, 0, len(h.engines))
		for _, e := range h.engines {
			triggered = append(triggered, e.Kind())
		}
	}

	logging.Ctx(r.Context()).Info().
		Interface("kinds", triggered).
		Msg("manual retrain requested")

	respondJSON(w, http.StatusAccepted, models.NewSuccessResponse(models.TrainResponse{Triggered: triggered}))
}
