// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package services

import (
	"github.com/tomtom215/kollabee-recommender/internal/metrics"
	"github.com/tomtom215/kollabee-recommender/internal/recommend"
)

// Trigger sources.
const (
	TriggerManual = "manual"
	TriggerEvent  = "event"
)

// RetrainTrigger fans retrain requests out to per-engine channels.
//
// Each channel holds at most one pending request and Fire never blocks, so
// any number of requests made while a cycle runs result in exactly one
// follow-up cycle.
type RetrainTrigger struct {
	channels map[recommend.EntityKind]chan struct{}
	order    []recommend.EntityKind
}

// NewRetrainTrigger creates a trigger with one channel per kind.
func NewRetrainTrigger(kinds ...recommend.EntityKind) *RetrainTrigger {
	t := &RetrainTrigger{channels: make(map[recommend.EntityKind]chan struct{}, len(kinds))}
	for _, kind := range kinds {
		if _, dup := t.channels[kind]; dup {
			continue
		}
		t.channels[kind] = make(chan struct{}, 1)
		t.order = append(t.order, kind)
	}
	return t
}

// Channel returns the receive side for kind, or nil for an unknown kind.
// A nil channel never fires.
func (t *RetrainTrigger) Channel(kind recommend.EntityKind) <-chan struct{} {
	return t.channels[kind]
}

// Fire requests a retrain of kinds, or of every kind when none are given.
// Unknown kinds are ignored.
func (t *RetrainTrigger) Fire(source string, kinds ...recommend.EntityKind) {
	if len(kinds) == 0 {
		kinds = t.order
	}
	metrics.RecordRetrainTrigger(source)

	for _, kind := range kinds {
		ch, ok := t.channels[kind]
		if !ok {
			continue
		}
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Kinds returns the kinds served by the trigger in registration order.
func (t *RetrainTrigger) Kinds() []recommend.EntityKind {
	return append([]recommend.EntityKind(nil), t.order...)
}
