// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package recommend

import "go.uber.org/atomic"

// Registry holds the live snapshot of one engine. Reads are wait-free and a
// publish is a single pointer swap.
type Registry struct {
	current atomic.Pointer[ModelSnapshot]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Publish makes s the live snapshot and returns the one it replaced.
func (r *Registry) Publish(s *ModelSnapshot) *ModelSnapshot {
	return r.current.Swap(s)
}

// Current returns the live snapshot, or nil before the first publish.
func (r *Registry) Current() *ModelSnapshot {
	return r.current.Load()
}

// Ready reports whether a snapshot has been published.
func (r *Registry) Ready() bool {
	return r.current.Load() != nil
}
