// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// scenarioRecords: A bought 1 and carted 2, B bought 2 and 3, C bought 4.
func scenarioRecords() []InteractionRecord {
	return []InteractionRecord{
		{BuyerID: "A", ItemID: "1", Weight: 1.0},
		{BuyerID: "A", ItemID: "2", Weight: 0.5},
		{BuyerID: "B", ItemID: "2", Weight: 1.0},
		{BuyerID: "B", ItemID: "3", Weight: 1.0},
		{BuyerID: "C", ItemID: "4", Weight: 1.0},
	}
}

func trainScenario(t *testing.T) *ModelSnapshot {
	t.Helper()

	snap, err := TrainSnapshot(KindProduct, scenarioRecords(), DefaultMaxRank, 1, time.Now())
	require.NoError(t, err)
	return snap
}

func ids(items []ScoredItem) []string {
	return lo.Map(items, func(s ScoredItem, _ int) string { return s.ID })
}

func TestRecommend_ExcludesInteractedItems(t *testing.T) {
	t.Parallel()

	snap := trainScenario(t)
	assert.GreaterOrEqual(t, snap.Rank(), 1)

	got := Recommend(snap, "A", 2)
	require.Len(t, got, 2)
	for _, id := range ids(got) {
		assert.Contains(t, []string{"3", "4", "5"}, id)
	}
	assert.GreaterOrEqual(t, got[0].Score, got[1].Score)
}

func TestRecommend_NeverReturnsSeenItems(t *testing.T) {
	t.Parallel()

	snap := trainScenario(t)
	seen := map[string][]string{
		"A": {"1", "2"},
		"B": {"2", "3"},
		"C": {"4"},
	}

	for buyer, items := range seen {
		got := ids(Recommend(snap, buyer, 100))
		assert.Len(t, got, 4-len(items), "buyer %s", buyer)
		for _, id := range items {
			assert.NotContains(t, got, id, "buyer %s", buyer)
		}
	}
}

func TestRecommend_EmptyResults(t *testing.T) {
	t.Parallel()

	snap := trainScenario(t)

	assert.Empty(t, Recommend(nil, "A", 5), "nil snapshot")
	assert.Empty(t, Recommend(snap, "nobody", 5), "unknown buyer")
	assert.Empty(t, Recommend(snap, "A", 0), "zero topK")
	assert.Empty(t, Recommend(snap, "A", -3), "negative topK")
}

func TestRecommend_TopKBounds(t *testing.T) {
	t.Parallel()

	snap := trainScenario(t)

	assert.Len(t, Recommend(snap, "C", 1), 1)
	assert.Len(t, Recommend(snap, "C", 1000), 3)
}

func TestRecommend_TieBreakPrefersHigherIndex(t *testing.T) {
	t.Parallel()

	snap := &ModelSnapshot{
		kind:         KindProduct,
		buyers:       FitIdentities([]string{"buyer"}),
		items:        FitIdentities([]string{"a", "b", "c"}),
		interactions: &InteractionMatrix{rows: 1, cols: 3, indptr: []int{0, 0}},
		buyerFactors: mat.NewDense(1, 1, []float64{1}),
		itemFactors:  mat.NewDense(3, 1, []float64{1, 1, 1}),
		rank:         1,
	}

	assert.Equal(t, []string{"c", "b"}, ids(Recommend(snap, "buyer", 2)))
}

func TestTopIndices(t *testing.T) {
	t.Parallel()

	inf := math.Inf(-1)
	tests := []struct {
		name   string
		scores []float64
		k      int
		want   []int
	}{
		{"descending", []float64{0.1, 0.9, 0.5}, 3, []int{1, 2, 0}},
		{"truncated", []float64{0.1, 0.9, 0.5}, 1, []int{1}},
		{"masked removed", []float64{inf, 0.2, inf}, 3, []int{1}},
		{"all masked", []float64{inf, inf}, 2, []int{}},
		{"empty", nil, 5, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ElementsMatch(t, tt.want, topIndices(tt.scores, tt.k))
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, topIndices(tt.scores, tt.k))
			}
		})
	}
}
