// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package database

// Interaction queries over the marketplace schema. Identifiers are quoted
// because the schema uses mixed-case table and column names. Every query
// yields buyer_id and item_id, where buyer_id is the buyer's user id.
const (
	orderProductsSQL = `SELECT b."userId" AS buyer_id, oi."productId" AS item_id
FROM "OrderItem" oi
JOIN "Order" o ON oi."orderId" = o.id
JOIN "Buyer" b ON o."buyerId" = b.id
WHERE o."buyerId" IS NOT NULL`

	cartProductsSQL = `SELECT b."userId" AS buyer_id, ci."productId" AS item_id
FROM "CartItem" ci
JOIN "Cart" c ON ci."cartId" = c.id
JOIN "Buyer" b ON c."buyerId" = b.id`

	wishlistProductsSQL = `SELECT b."userId" AS buyer_id, wi."productId" AS item_id
FROM "WishlistItem" wi
JOIN "Wishlist" w ON wi."wishlistId" = w.id
JOIN "Buyer" b ON w."buyerId" = b.id`

	orderSuppliersSQL = `SELECT b."userId" AS buyer_id, s."userId" AS item_id
FROM "OrderItem" oi
JOIN "Order" o ON oi."orderId" = o.id
JOIN "Buyer" b ON o."buyerId" = b.id
JOIN "Product" p ON oi."productId" = p.id
JOIN "Seller" s ON p."sellerId" = s.id
WHERE o."buyerId" IS NOT NULL AND p."sellerId" IS NOT NULL`
)

// Detail tables.
const (
	productTable = "Product"
	userTable    = "User"
)

// interactionQuery is one weighted interaction source.
type interactionQuery struct {
	// source names the signal in logs ("orders", "cart", "wishlist").
	source string

	// table labels query metrics.
	table string

	sql    string
	weight float64
}

// pairRow is one buyer-item pair returned by an interaction query.
type pairRow struct {
	BuyerID string `gorm:"column:buyer_id"`
	ItemID  string `gorm:"column:item_id"`
}
