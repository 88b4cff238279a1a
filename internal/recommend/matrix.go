// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package recommend

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"
)

// InteractionMatrix is a read-only buyer x item weight matrix in compressed
// sparse row form. Column indices are ascending within each row.
type InteractionMatrix struct {
	rows, cols int
	indptr     []int
	indices    []int
	values     []float64
	sum        float64
}

// BuildInteractionMatrix encodes each record against the given spaces and
// accumulates its weight. Repeated (buyer, item) pairs add up. Records whose
// ids are missing from a space are rejected with ErrUnknownIdentity.
func BuildInteractionMatrix(records []InteractionRecord, buyers, items *IdentitySpace) (*InteractionMatrix, error) {
	rows, cols := buyers.Len(), items.Len()
	cells := make([]map[int]float64, rows)

	for _, rec := range records {
		r, err := buyers.Encode(rec.BuyerID)
		if err != nil {
			return nil, fmt.Errorf("encode buyer: %w", err)
		}
		c, err := items.Encode(rec.ItemID)
		if err != nil {
			return nil, fmt.Errorf("encode item: %w", err)
		}
		if cells[r] == nil {
			cells[r] = make(map[int]float64)
		}
		cells[r][c] += rec.Weight
	}

	m := &InteractionMatrix{
		rows:   rows,
		cols:   cols,
		indptr: make([]int, rows+1),
	}
	for r, row := range cells {
		keys := lo.Keys(row)
		slices.Sort(keys)
		for _, c := range keys {
			m.indices = append(m.indices, c)
			m.values = append(m.values, row[c])
			m.sum += row[c]
		}
		m.indptr[r+1] = len(m.indices)
	}

	return m, nil
}

// Dims returns the number of buyers (rows) and items (columns).
func (m *InteractionMatrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// NNZ returns the number of stored (buyer, item) cells.
func (m *InteractionMatrix) NNZ() int {
	return len(m.values)
}

// Sum returns the total interaction weight.
func (m *InteractionMatrix) Sum() float64 {
	return m.sum
}

// Row returns the item indices and weights stored for buyer r.
// The returned slices alias the matrix and must not be modified.
func (m *InteractionMatrix) Row(r int) (cols []int, weights []float64) {
	start, end := m.indptr[r], m.indptr[r+1]
	return m.indices[start:end], m.values[start:end]
}

// At returns the weight at (r, c), or 0 when no interaction was recorded.
func (m *InteractionMatrix) At(r, c int) float64 {
	cols, weights := m.Row(r)
	if i, ok := slices.BinarySearch(cols, c); ok {
		return weights[i]
	}
	return 0
}

// Dense expands the matrix. Both dimensions must be non-zero.
func (m *InteractionMatrix) Dense() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for r := 0; r < m.rows; r++ {
		cols, weights := m.Row(r)
		for i, c := range cols {
			d.Set(r, c, weights[i])
		}
	}
	return d
}
