// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package recommend

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"
)

// ModelSnapshot is one fully trained model generation. All fields are set at
// construction and never change afterwards.
type ModelSnapshot struct {
	kind         EntityKind
	buyers       *IdentitySpace
	items        *IdentitySpace
	interactions *InteractionMatrix
	buyerFactors *mat.Dense
	itemFactors  *mat.Dense
	rank         int
	version      int64
	trainedAt    time.Time
}

// TrainSnapshot runs the full pipeline on records: fit both identity spaces,
// build the interaction matrix and factorize it. It returns ErrDegenerateModel
// when the data cannot support a rank-1 model.
func TrainSnapshot(kind EntityKind, records []InteractionRecord, maxRank int, version int64, trainedAt time.Time) (*ModelSnapshot, error) {
	buyers := FitIdentities(lo.Map(records, func(r InteractionRecord, _ int) string { return r.BuyerID }))
	items := FitIdentities(lo.Map(records, func(r InteractionRecord, _ int) string { return r.ItemID }))

	matrix, err := BuildInteractionMatrix(records, buyers, items)
	if err != nil {
		return nil, fmt.Errorf("build interaction matrix: %w", err)
	}

	factors, err := Factorize(matrix, maxRank)
	if err != nil {
		return nil, err
	}

	return &ModelSnapshot{
		kind:         kind,
		buyers:       buyers,
		items:        items,
		interactions: matrix,
		buyerFactors: factors.Buyers,
		itemFactors:  factors.Items,
		rank:         factors.Rank,
		version:      version,
		trainedAt:    trainedAt,
	}, nil
}

// Kind returns the entity kind the snapshot recommends.
func (s *ModelSnapshot) Kind() EntityKind { return s.kind }

// Buyers returns the buyer identity space.
func (s *ModelSnapshot) Buyers() *IdentitySpace { return s.buyers }

// Items returns the item identity space.
func (s *ModelSnapshot) Items() *IdentitySpace { return s.items }

// Interactions returns the interaction matrix the model was fitted on.
func (s *ModelSnapshot) Interactions() *InteractionMatrix { return s.interactions }

// BuyerFactors returns the |buyers| x k factor matrix.
func (s *ModelSnapshot) BuyerFactors() mat.Matrix { return s.buyerFactors }

// ItemFactors returns the |items| x k factor matrix.
func (s *ModelSnapshot) ItemFactors() mat.Matrix { return s.itemFactors }

// Rank returns the number of latent factors.
func (s *ModelSnapshot) Rank() int { return s.rank }

// Version returns the engine-assigned generation number.
func (s *ModelSnapshot) Version() int64 { return s.version }

// TrainedAt returns when the training run that built the snapshot started.
func (s *ModelSnapshot) TrainedAt() time.Time { return s.trainedAt }
