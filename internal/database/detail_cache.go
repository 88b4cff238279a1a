// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package database

import (
	"context"
	"time"

	"github.com/tomtom215/kollabee-recommender/internal/cache"
	"github.com/tomtom215/kollabee-recommender/internal/metrics"
	"github.com/tomtom215/kollabee-recommender/internal/recommend"
)

// CachedDetailStore serves detail rows from a per-id TTL cache and fetches
// only the missing ids from the wrapped store. Ids without a row are not
// cached, so a row inserted later is found on the next lookup.
type CachedDetailStore struct {
	inner recommend.DetailStore
	kind  recommend.EntityKind
	rows  *cache.LRU[recommend.Detail]
}

// NewCachedDetailStore wraps inner with a cache of capacity rows kept for ttl.
func NewCachedDetailStore(inner recommend.DetailStore, kind recommend.EntityKind, capacity int, ttl time.Duration) *CachedDetailStore {
	return &CachedDetailStore{
		inner: inner,
		kind:  kind,
		rows:  cache.NewLRU[recommend.Detail](capacity, ttl),
	}
}

// LookupDetails returns cached rows for ids and fetches the rest. Errors from
// the wrapped store are returned unchanged and nothing is cached.
func (s *CachedDetailStore) LookupDetails(ctx context.Context, ids []string) ([]recommend.Detail, error) {
	if len(ids) == 0 {
		return []recommend.Detail{}, nil
	}

	out := make([]recommend.Detail, 0, len(ids))
	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		if row, ok := s.rows.Get(id); ok {
			out = append(out, row)
		} else {
			missing = append(missing, id)
		}
	}
	metrics.RecordDetailCache(s.kind.String(), len(out), len(missing))

	if len(missing) == 0 {
		return out, nil
	}

	fetched, err := s.inner.LookupDetails(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, row := range fetched {
		if id, ok := row.ID(); ok {
			s.rows.Add(id, row)
		}
	}
	return append(out, fetched...), nil
}

// Len returns the number of cached rows.
func (s *CachedDetailStore) Len() int {
	return s.rows.Len()
}
