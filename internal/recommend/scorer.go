// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package recommend

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Recommend returns up to topK items for buyerID, best first.
//
// Items the buyer already interacted with are never returned. A nil snapshot,
// an unknown buyer or a non-positive topK yield an empty result. Equal scores
// rank the higher item index first.
func Recommend(snap *ModelSnapshot, buyerID string, topK int) []ScoredItem {
	if snap == nil || topK <= 0 {
		return nil
	}
	buyer, err := snap.buyers.Encode(buyerID)
	if err != nil {
		return nil
	}

	scores := scoreItems(snap, buyer)
	picks := topIndices(scores, topK)
	if len(picks) == 0 {
		return nil
	}

	ids := snap.items.Decode(picks)
	out := make([]ScoredItem, len(picks))
	for i, idx := range picks {
		out[i] = ScoredItem{ID: ids[i], Score: scores[idx]}
	}
	return out
}

// scoreItems computes item . buyer for every item and masks the buyer's
// interacted items with -Inf.
func scoreItems(snap *ModelSnapshot, buyer int) []float64 {
	n := snap.items.Len()
	buyerVec := snap.buyerFactors.RowView(buyer)

	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		scores[i] = mat.Dot(snap.itemFactors.RowView(i), buyerVec)
	}

	cols, weights := snap.interactions.Row(buyer)
	for j, c := range cols {
		if weights[j] != 0 {
			scores[c] = math.Inf(-1)
		}
	}
	return scores
}

// topIndices returns up to k indices ordered by descending score, ties broken
// by descending index, with masked (-Inf) entries removed.
func topIndices(scores []float64, k int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int {
		if c := cmp.Compare(scores[b], scores[a]); c != 0 {
			return c
		}
		return cmp.Compare(b, a)
	})

	if k < len(idx) {
		idx = idx[:k]
	}
	return slices.DeleteFunc(idx, func(i int) bool {
		return math.IsInf(scores[i], -1)
	})
}
