// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package recommend

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// IdentitySpace is an ordered bijection between distinct ids and the dense
// indices 0..n-1. Ranks follow sorted lexical order of the ids, so identical
// id sets always produce identical spaces. A space is immutable and lives for
// exactly one snapshot.
type IdentitySpace struct {
	ids   []string
	index map[string]int
}

// FitIdentities builds an IdentitySpace from ids. Duplicates are collapsed.
func FitIdentities(ids []string) *IdentitySpace {
	distinct := lo.Uniq(ids)
	slices.Sort(distinct)

	index := make(map[string]int, len(distinct))
	for i, id := range distinct {
		index[id] = i
	}

	return &IdentitySpace{ids: distinct, index: index}
}

// Len returns the number of identities in the space.
func (s *IdentitySpace) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// Encode returns the index assigned to id, or ErrUnknownIdentity.
func (s *IdentitySpace) Encode(id string) (int, error) {
	if s != nil {
		if i, ok := s.index[id]; ok {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownIdentity, id)
}

// Contains reports whether id was present at fit time.
func (s *IdentitySpace) Contains(id string) bool {
	_, err := s.Encode(id)
	return err == nil
}

// Decode maps indices back to ids, preserving order.
// It panics on indices outside [0, Len()).
func (s *IdentitySpace) Decode(indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = s.ids[idx]
	}
	return out
}

// IDs returns a copy of the ids in rank order.
func (s *IdentitySpace) IDs() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.ids)
}
