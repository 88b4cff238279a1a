// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package events

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/goccy/go-json"

	"github.com/tomtom215/kollabee-recommender/internal/recommend"
)

// ErrUnknownEntity is returned for change events about entities that feed
// no engine.
var ErrUnknownEntity = errors.New("unknown entity")

// ChangeEvent is a marketplace change notification.
type ChangeEvent struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action,omitempty"`
	ID         string    `json:"id,omitempty"`
	OccurredAt time.Time `json:"occurred_at,omitempty"`
}

// allKinds is the target set of an empty payload.
var allKinds = []recommend.EntityKind{recommend.KindProduct, recommend.KindSupplier}

// entityKinds maps changed entities to the engines that read them.
var entityKinds = map[string][]recommend.EntityKind{
	"order":         allKinds,
	"order_item":    allKinds,
	"cart":          {recommend.KindProduct},
	"cart_item":     {recommend.KindProduct},
	"wishlist":      {recommend.KindProduct},
	"wishlist_item": {recommend.KindProduct},
	"buyer":         allKinds,
	"product":       {recommend.KindSupplier},
	"seller":        {recommend.KindSupplier},
}

// DecodeChangeEvent parses a message payload.
func DecodeChangeEvent(payload []byte) (*ChangeEvent, error) {
	var event ChangeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("decode change event: %w", err)
	}
	return &event, nil
}

// AffectedKinds returns the engines that must retrain after a change to
// entity. Names are matched case-insensitively; "OrderItem", "order-item"
// and "order_item" are the same entity.
func AffectedKinds(entity string) ([]recommend.EntityKind, error) {
	kinds, ok := entityKinds[normalizeEntity(entity)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	return kinds, nil
}

// KindsForPayload decodes payload and resolves the affected engines.
func KindsForPayload(payload []byte) ([]recommend.EntityKind, error) {
	if len(strings.TrimSpace(string(payload))) == 0 {
		return allKinds, nil
	}
	event, err := DecodeChangeEvent(payload)
	if err != nil {
		return nil, err
	}
	return AffectedKinds(event.Entity)
}

func normalizeEntity(entity string) string {
	var b strings.Builder
	var prev rune
	for _, orig := range strings.TrimSpace(entity) {
		r := orig
		switch {
		case r == '-' || r == ' ':
			r = '_'
		case unicode.IsUpper(r):
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		prev = orig
	}
	return b.String()
}
