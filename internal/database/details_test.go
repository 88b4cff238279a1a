// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package database

import (
	"context"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/kollabee-recommender/internal/recommend"
)

func detailIDs(details []recommend.Detail) []string {
	ids := make([]string, 0, len(details))
	for _, d := range details {
		ids = append(ids, asString(d[recommend.DetailIDKey]))
	}
	return ids
}

func TestProductDetailStore_LookupDetails(t *testing.T) {
	db := openSeededSQLite(t, true)
	store := NewProductDetailStore(db, testBreakerConfig())

	details, err := store.LookupDetails(context.Background(), []string{"p3", "p1", "missing"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"p1", "p3"}, detailIDs(details))
	for _, d := range details {
		assert.Contains(t, d, "name")
		assert.Contains(t, d, "price")
		assert.Contains(t, d, "sellerId")
	}
}

func TestSupplierDetailStore_OmitsColumns(t *testing.T) {
	db := openSeededSQLite(t, true)
	store := NewSupplierDetailStore(db, []string{"password"}, testBreakerConfig())

	details, err := store.LookupDetails(context.Background(), []string{"u-s1", "u-s2"})
	require.NoError(t, err)
	require.Len(t, details, 2)

	for _, d := range details {
		assert.NotContains(t, d, "password")
		assert.Contains(t, d, "email")
	}
}

func TestDetailStore_EmptyIDs(t *testing.T) {
	db := openSeededSQLite(t, true)
	store := NewProductDetailStore(db, testBreakerConfig())

	details, err := store.LookupDetails(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, details)
	assert.Empty(t, details)
}

func TestDetailStore_IDsAreBound(t *testing.T) {
	db := openSeededSQLite(t, true)
	store := NewProductDetailStore(db, testBreakerConfig())

	details, err := store.LookupDetails(context.Background(), []string{"x' OR '1'='1", `p1") OR ("1"="1`})
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestDetailStore_BreakerOpensAfterFailures(t *testing.T) {
	db := openSeededSQLite(t, true)
	store := NewProductDetailStore(db, testBreakerConfig())
	require.NoError(t, db.Close())

	for i := 0; i < 2; i++ {
		_, err := store.LookupDetails(context.Background(), []string{"p1"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
	}

	_, err := store.LookupDetails(context.Background(), []string{"p1"})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, gobreaker.StateOpen.String(), store.State())
}

func TestDetailStore_CanceledContextDoesNotTrip(t *testing.T) {
	db := openSeededSQLite(t, true)
	store := NewProductDetailStore(db, testBreakerConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 3; i++ {
		_, _ = store.LookupDetails(ctx, []string{"p1"})
	}

	assert.Equal(t, gobreaker.StateClosed.String(), store.State())
}
