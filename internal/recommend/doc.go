// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

// Package recommend implements the latent-factor recommendation engine that
// suggests products and suppliers to marketplace buyers.
//
// # Architecture
//
// A single generic pipeline is instantiated once per entity kind
// (KindProduct, KindSupplier):
//
//   - IdentitySpace: sorted bijection between opaque ids and matrix indices
//   - InteractionMatrix: compressed sparse buyer x item weights, duplicates summed
//   - Factorize: rank-k truncated SVD (gonum) producing buyer and item factors
//   - Recommend: dot-product scoring with masking of already-seen items
//   - Registry: atomic holder of the live ModelSnapshot
//
// Interaction weights come from the data source: completed order = 1.0,
// cart = 0.5, wishlist = 0.3. A buyer who both carted and ordered an item
// accrues 1.5 for that cell.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.KindProduct, source, details, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	if err := engine.Train(ctx); err != nil {
//	    logger.Warn().Err(err).Msg("initial training failed")
//	}
//	details, err := engine.Recommend(ctx, buyerID, 5)
//
// # Thread Safety
//
// Snapshots are immutable once built. Train builds a complete new snapshot
// and publishes it with one atomic pointer swap, so a concurrent Recommend
// call keeps scoring against whichever snapshot it loaded and never sees a
// mix of old identities and new factors. Only one Train runs at a time per
// engine.
//
// # Error Handling
//
// Training problems (ErrDataSourceFailure, ErrDegenerateModel) are returned
// to the scheduler, which logs them and keeps the previous snapshot.
// Recommend absorbs ErrModelNotReady and ErrUnknownIdentity as empty results;
// only ErrDetailLookupFailure reaches the caller.
package recommend
