// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope used by operational endpoints and by every
// error response.
//
// Status is "success" with Data populated, or "error" with Error populated.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"triggered": ["product", "supplier"]},
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries the response timestamp and, when measured, how long the
// request took to serve.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is a machine-readable error code with a human-readable message.
//
// Codes used by the recommender:
//   - VALIDATION_ERROR: invalid path or query parameter
//   - DETAIL_LOOKUP_FAILED: the detail store could not be read
//   - MODEL_NOT_READY: readiness probe before the first snapshot
//   - RATE_LIMIT_EXCEEDED: too many requests from one client
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewSuccessResponse wraps data in a success envelope stamped with the
// current time.
func NewSuccessResponse(data interface{}) *APIResponse {
	return &APIResponse{
		Status:   StatusSuccess,
		Data:     data,
		Metadata: Metadata{Timestamp: time.Now().UTC()},
	}
}

// NewErrorResponse builds an error envelope stamped with the current time.
func NewErrorResponse(code, message string, details map[string]interface{}) *APIResponse {
	return &APIResponse{
		Status:   StatusError,
		Metadata: Metadata{Timestamp: time.Now().UTC()},
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}
