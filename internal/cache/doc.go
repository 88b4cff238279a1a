// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

// Package cache provides a bounded, thread-safe LRU cache with per-entry
// expiry. The recommender uses it to keep recently served detail rows out of
// the marketplace database.
package cache
