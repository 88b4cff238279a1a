// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"

	"github.com/tomtom215/kollabee-recommender/internal/config"
	"github.com/tomtom215/kollabee-recommender/internal/metrics"
	"github.com/tomtom215/kollabee-recommender/internal/recommend"
)

// Weights are the per-source interaction strengths.
type Weights struct {
	Order    float64
	Cart     float64
	Wishlist float64
}

// WeightsFromConfig reads the source weights from the recommend settings.
func WeightsFromConfig(cfg *config.RecommendConfig) Weights {
	return Weights{
		Order:    cfg.OrderWeight,
		Cart:     cfg.CartWeight,
		Wishlist: cfg.WishlistWeight,
	}
}

// interactionSource runs a fixed set of weighted queries.
type interactionSource struct {
	db      *DB
	kind    recommend.EntityKind
	queries []interactionQuery
	logger  zerolog.Logger
}

// ProductSource yields buyer-product interactions from orders, carts and
// wishlists.
type ProductSource struct {
	interactionSource
}

// NewProductSource creates the product interaction source.
func NewProductSource(db *DB, weights Weights) *ProductSource {
	return &ProductSource{interactionSource{
		db:   db,
		kind: recommend.KindProduct,
		queries: []interactionQuery{
			{source: "orders", table: "OrderItem", sql: orderProductsSQL, weight: weights.Order},
			{source: "cart", table: "CartItem", sql: cartProductsSQL, weight: weights.Cart},
			{source: "wishlist", table: "WishlistItem", sql: wishlistProductsSQL, weight: weights.Wishlist},
		},
		logger: db.logger.With().Str("source", "product_interactions").Logger(),
	}}
}

// SupplierSource yields buyer-supplier interactions from ordered products.
// Suppliers are identified by the user id of the selling seller.
type SupplierSource struct {
	interactionSource
}

// NewSupplierSource creates the supplier interaction source.
func NewSupplierSource(db *DB, weights Weights) *SupplierSource {
	return &SupplierSource{interactionSource{
		db:   db,
		kind: recommend.KindSupplier,
		queries: []interactionQuery{
			{source: "orders", table: "OrderItem", sql: orderSuppliersSQL, weight: weights.Order},
		},
		logger: db.logger.With().Str("source", "supplier_interactions").Logger(),
	}}
}

// FetchInteractions runs every source query and concatenates the weighted
// records. Sources with a zero weight are skipped. Rows with an empty buyer
// or item id are dropped.
func (s *interactionSource) FetchInteractions(ctx context.Context) ([]recommend.InteractionRecord, error) {
	var records []recommend.InteractionRecord
	counts := zerolog.Dict()

	for _, q := range s.queries {
		if q.weight == 0 {
			continue
		}

		rows, err := s.db.fetchPairs(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("fetch %s %s interactions: %w", s.kind, q.source, err)
		}
		if len(rows) == 0 {
			s.logger.Warn().Str("signal", q.source).Msg("No interactions found")
		}

		kept := 0
		for _, row := range rows {
			if row.BuyerID == "" || row.ItemID == "" {
				continue
			}
			records = append(records, recommend.InteractionRecord{
				BuyerID: row.BuyerID,
				ItemID:  row.ItemID,
				Weight:  q.weight,
			})
			kept++
		}
		counts = counts.Int(q.source, kept)
	}

	s.logger.Info().
		Dict("counts", counts).
		Int("total", len(records)).
		Msg("Fetched interactions")

	if records == nil {
		records = []recommend.InteractionRecord{}
	}
	return records, nil
}

// fetchPairs runs one interaction query with retries on transient errors.
func (db *DB) fetchPairs(ctx context.Context, q interactionQuery) ([]pairRow, error) {
	operation := func() ([]pairRow, error) {
		var rows []pairRow
		start := time.Now()
		err := db.gorm.WithContext(ctx).Raw(q.sql).Scan(&rows).Error
		metrics.RecordDBQuery("select", q.table, time.Since(start), err)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		return rows, nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(db.newBackOff()),
		backoff.WithMaxTries(max(db.cfg.QueryRetries, 1)),
		backoff.WithNotify(func(err error, next time.Duration) {
			db.logger.Warn().Err(err).
				Str("signal", q.source).
				Dur("retry_in", next).
				Msg("Interaction query failed, retrying")
		}),
	)
}

func (db *DB) newBackOff() *backoff.ExponentialBackOff {
	exp := backoff.NewExponentialBackOff()
	if db.cfg.RetryInitialInterval > 0 {
		exp.InitialInterval = db.cfg.RetryInitialInterval
	}
	return exp
}
