// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMatrix(t *testing.T, records []InteractionRecord) (*InteractionMatrix, *IdentitySpace, *IdentitySpace) {
	t.Helper()

	buyers := FitIdentities(buyerIDs(records))
	items := FitIdentities(itemIDs(records))
	m, err := BuildInteractionMatrix(records, buyers, items)
	require.NoError(t, err)
	return m, buyers, items
}

func buyerIDs(records []InteractionRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.BuyerID
	}
	return out
}

func itemIDs(records []InteractionRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ItemID
	}
	return out
}

func TestBuildInteractionMatrix_SumsDuplicates(t *testing.T) {
	t.Parallel()

	m, buyers, items := buildMatrix(t, []InteractionRecord{
		{BuyerID: "b1", ItemID: "p1", Weight: 1.0},
		{BuyerID: "b1", ItemID: "p1", Weight: 0.5},
		{BuyerID: "b2", ItemID: "p2", Weight: 0.3},
	})

	r, _ := buyers.Encode("b1")
	c, _ := items.Encode("p1")
	assert.InDelta(t, 1.5, m.At(r, c), 1e-12)
	assert.Equal(t, 2, m.NNZ())
	assert.InDelta(t, 1.8, m.Sum(), 1e-12)

	rows, cols := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
}

func TestBuildInteractionMatrix_AbsentCellsAreZero(t *testing.T) {
	t.Parallel()

	m, buyers, items := buildMatrix(t, []InteractionRecord{
		{BuyerID: "b1", ItemID: "p1", Weight: 1.0},
		{BuyerID: "b2", ItemID: "p2", Weight: 1.0},
	})

	r, _ := buyers.Encode("b1")
	c, _ := items.Encode("p2")
	assert.Zero(t, m.At(r, c))
}

func TestBuildInteractionMatrix_Empty(t *testing.T) {
	t.Parallel()

	m, _, _ := buildMatrix(t, nil)

	rows, cols := m.Dims()
	assert.Zero(t, rows)
	assert.Zero(t, cols)
	assert.Zero(t, m.NNZ())
	assert.Zero(t, m.Sum())
}

func TestBuildInteractionMatrix_RejectsUnknownIDs(t *testing.T) {
	t.Parallel()

	buyers := FitIdentities([]string{"b1"})
	items := FitIdentities([]string{"p1"})

	_, err := BuildInteractionMatrix([]InteractionRecord{{BuyerID: "b2", ItemID: "p1", Weight: 1}}, buyers, items)
	assert.ErrorIs(t, err, ErrUnknownIdentity)

	_, err = BuildInteractionMatrix([]InteractionRecord{{BuyerID: "b1", ItemID: "p9", Weight: 1}}, buyers, items)
	assert.ErrorIs(t, err, ErrUnknownIdentity)
}

func TestInteractionMatrix_RowAndDense(t *testing.T) {
	t.Parallel()

	m, _, _ := buildMatrix(t, []InteractionRecord{
		{BuyerID: "a", ItemID: "3", Weight: 0.3},
		{BuyerID: "a", ItemID: "1", Weight: 1.0},
		{BuyerID: "b", ItemID: "2", Weight: 0.5},
	})

	cols, weights := m.Row(0)
	assert.Equal(t, []int{0, 2}, cols)
	assert.Equal(t, []float64{1.0, 0.3}, weights)

	d := m.Dense()
	assert.Equal(t, 1.0, d.At(0, 0))
	assert.Equal(t, 0.0, d.At(0, 1))
	assert.Equal(t, 0.3, d.At(0, 2))
	assert.Equal(t, 0.5, d.At(1, 1))
}
