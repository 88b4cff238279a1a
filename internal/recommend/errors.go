// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package recommend

import "errors"

var (
	// ErrModelNotReady is reported when no snapshot has been published yet.
	ErrModelNotReady = errors.New("recommendation model not ready")

	// ErrUnknownIdentity is returned by IdentitySpace.Encode for ids that were
	// not present when the space was fitted.
	ErrUnknownIdentity = errors.New("unknown identity")

	// ErrDegenerateModel is returned when the interaction matrix cannot support
	// a rank-1 factorization (fewer than 2 buyers or items, or zero total weight).
	ErrDegenerateModel = errors.New("degenerate interaction matrix")

	// ErrDataSourceFailure wraps failures fetching interactions during training.
	ErrDataSourceFailure = errors.New("interaction data source failure")

	// ErrDetailLookupFailure wraps failures resolving recommended ids to detail records.
	ErrDetailLookupFailure = errors.New("detail lookup failure")

	// ErrTrainingInProgress is returned when Train is called while another
	// training run holds the engine.
	ErrTrainingInProgress = errors.New("training already in progress")
)
