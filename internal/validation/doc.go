// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

// Package validation wraps go-playground/validator v10 with a shared,
// lazily built validator instance and error translation into the API's
// VALIDATION_ERROR envelope.
//
// Field names in messages come from the json (or koanf) tag of the field, so
// a failed query parameter reads "top_k must be at most 100" rather than
// "TopK must be at most 100".
//
// Custom tags:
//   - dsn: a database URL with a supported scheme (postgres, postgresql,
//     sqlite, duckdb)
//   - nats_url: a NATS server URL (nats, tls, ws, wss)
//
// Example:
//
//	type recommendQuery struct {
//	    TopK int `json:"top_k" validate:"min=1,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	}
package validation
