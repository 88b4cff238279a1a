// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tomtom215/kollabee-recommender/internal/config"
)

// marketplaceSchema is the subset of the marketplace schema read by this
// package. It is valid for both SQLite and PostgreSQL.
var marketplaceSchema = []string{
	`CREATE TABLE "User" (id TEXT PRIMARY KEY, email TEXT, name TEXT, password TEXT)`,
	`CREATE TABLE "Buyer" (id TEXT PRIMARY KEY, "userId" TEXT NOT NULL)`,
	`CREATE TABLE "Seller" (id TEXT PRIMARY KEY, "userId" TEXT NOT NULL, "businessName" TEXT)`,
	`CREATE TABLE "Product" (id TEXT PRIMARY KEY, name TEXT, price INTEGER, "sellerId" TEXT)`,
	`CREATE TABLE "Order" (id TEXT PRIMARY KEY, "buyerId" TEXT)`,
	`CREATE TABLE "OrderItem" (id TEXT PRIMARY KEY, "orderId" TEXT NOT NULL, "productId" TEXT NOT NULL)`,
	`CREATE TABLE "Cart" (id TEXT PRIMARY KEY, "buyerId" TEXT NOT NULL)`,
	`CREATE TABLE "CartItem" (id TEXT PRIMARY KEY, "cartId" TEXT NOT NULL, "productId" TEXT NOT NULL)`,
	`CREATE TABLE "Wishlist" (id TEXT PRIMARY KEY, "buyerId" TEXT NOT NULL)`,
	`CREATE TABLE "WishlistItem" (id TEXT PRIMARY KEY, "wishlistId" TEXT NOT NULL, "productId" TEXT NOT NULL)`,
}

// marketplaceSeed gives three buyers and two sellers. Order o3 has no buyer
// and product p4 has no seller.
var marketplaceSeed = []string{
	`INSERT INTO "User" (id, email, name, password) VALUES
		('u-b1', 'b1@example.com', 'Buyer One', 'secret'),
		('u-b2', 'b2@example.com', 'Buyer Two', 'secret'),
		('u-b3', 'b3@example.com', 'Buyer Three', 'secret'),
		('u-s1', 's1@example.com', 'Seller One', 'secret'),
		('u-s2', 's2@example.com', 'Seller Two', 'secret')`,
	`INSERT INTO "Buyer" (id, "userId") VALUES ('b1', 'u-b1'), ('b2', 'u-b2'), ('b3', 'u-b3')`,
	`INSERT INTO "Seller" (id, "userId", "businessName") VALUES ('s1', 'u-s1', 'Acme'), ('s2', 'u-s2', 'Globex')`,
	`INSERT INTO "Product" (id, name, price, "sellerId") VALUES
		('p1', 'Widget', 100, 's1'),
		('p2', 'Gadget', 250, 's1'),
		('p3', 'Doohickey', 75, 's2'),
		('p4', 'Orphan', 10, NULL)`,
	`INSERT INTO "Order" (id, "buyerId") VALUES ('o1', 'b1'), ('o2', 'b2'), ('o3', NULL)`,
	`INSERT INTO "OrderItem" (id, "orderId", "productId") VALUES
		('oi1', 'o1', 'p1'),
		('oi2', 'o1', 'p3'),
		('oi3', 'o2', 'p2'),
		('oi4', 'o3', 'p1'),
		('oi5', 'o2', 'p4')`,
	`INSERT INTO "Cart" (id, "buyerId") VALUES ('c1', 'b3')`,
	`INSERT INTO "CartItem" (id, "cartId", "productId") VALUES ('ci1', 'c1', 'p2')`,
	`INSERT INTO "Wishlist" (id, "buyerId") VALUES ('w1', 'b1')`,
	`INSERT INTO "WishlistItem" (id, "wishlistId", "productId") VALUES ('wi1', 'w1', 'p4')`,
}

var testWeights = Weights{Order: 1.0, Cart: 0.5, Wishlist: 0.3}

func testDatabaseConfig(url string) *config.DatabaseConfig {
	return &config.DatabaseConfig{
		URL:                  url,
		MaxOpenConns:         1,
		MaxIdleConns:         1,
		QueryRetries:         2,
		RetryInitialInterval: time.Millisecond,
	}
}

func testBreakerConfig() *config.DetailBreakerConfig {
	return &config.DetailBreakerConfig{
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		MaxHalfOpen:      1,
	}
}

// seedDatabase creates and fills the marketplace tables.
func seedDatabase(t *testing.T, db *DB, withRows bool) {
	t.Helper()
	statements := marketplaceSchema
	if withRows {
		statements = append(append([]string{}, marketplaceSchema...), marketplaceSeed...)
	}
	for _, stmt := range statements {
		require.NoError(t, db.Gorm().Exec(stmt).Error, stmt)
	}
}

// openSeededSQLite opens a private in-memory SQLite database.
func openSeededSQLite(t *testing.T, withRows bool) *DB {
	t.Helper()
	db, err := Open(context.Background(), testDatabaseConfig("sqlite://:memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	seedDatabase(t, db, withRows)
	return db
}

// asString normalizes driver values of text columns.
func asString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return ""
	}
}
