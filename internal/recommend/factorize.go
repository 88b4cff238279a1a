// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package recommend

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultMaxRank caps the number of latent factors.
const DefaultMaxRank = 20

// Factors holds the result of a truncated SVD.
type Factors struct {
	// Buyers is |buyers| x k and equals U_k * Sigma_k.
	Buyers *mat.Dense

	// Items is |items| x k and equals V_k.
	Items *mat.Dense

	// SingularValues are the k leading singular values, descending.
	SingularValues []float64

	// Rank is k.
	Rank int
}

// TargetRank returns min(maxRank, min(rows, cols) - 1). A result below 1
// means the matrix cannot be factorized.
func TargetRank(rows, cols, maxRank int) int {
	return min(maxRank, min(rows, cols)-1)
}

// Factorize computes the rank-k truncated SVD of m, with k from TargetRank.
//
// The product Buyers[b] . Items[i] is the rank-k reconstruction of cell
// (b, i). Each component is sign-normalized so that its largest-magnitude
// buyer loading is positive; this makes repeated runs on identical input
// produce identical factors without changing any score.
func Factorize(m *InteractionMatrix, maxRank int) (*Factors, error) {
	rows, cols := m.Dims()
	k := TargetRank(rows, cols, maxRank)
	if k < 1 {
		return nil, fmt.Errorf("%w: %dx%d matrix supports rank %d", ErrDegenerateModel, rows, cols, k)
	}
	if m.Sum() == 0 {
		return nil, fmt.Errorf("%w: total interaction weight is zero", ErrDegenerateModel)
	}

	var svd mat.SVD
	if ok := svd.Factorize(m.Dense(), mat.SVDThin); !ok {
		return nil, errors.New("svd factorization failed to converge")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	buyers := mat.NewDense(rows, k, nil)
	items := mat.NewDense(cols, k, nil)
	for j := 0; j < k; j++ {
		sign := componentSign(&u, j)
		for i := 0; i < rows; i++ {
			buyers.Set(i, j, sign*u.At(i, j)*values[j])
		}
		for i := 0; i < cols; i++ {
			items.Set(i, j, sign*v.At(i, j))
		}
	}

	return &Factors{
		Buyers:         buyers,
		Items:          items,
		SingularValues: values[:k],
		Rank:           k,
	}, nil
}

// componentSign returns the sign that makes the largest-magnitude entry of
// column j of u positive.
func componentSign(u *mat.Dense, j int) float64 {
	rows, _ := u.Dims()
	best, sign := 0.0, 1.0
	for i := 0; i < rows; i++ {
		x := u.At(i, j)
		if a := math.Abs(x); a > best {
			best = a
			sign = math.Copysign(1, x)
		}
	}
	return sign
}
