// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

// Package events turns marketplace change notifications into retrain
// triggers.
//
// The marketplace publishes a small JSON message on a NATS subject whenever
// an order, cart or wishlist changes:
//
//	{"entity": "order_item", "action": "created", "id": "oi_123"}
//
// Listener consumes those messages through a Watermill subscriber and fires
// the retrain trigger of every engine whose interactions the entity feeds.
// Retraining itself stays in the engines' own loops; a burst of events is
// coalesced there into a single follow-up cycle.
//
// An empty payload retrains every engine. Malformed payloads and unknown
// entities are logged and acknowledged so they are never redelivered.
package events
