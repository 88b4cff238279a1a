// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

/*
Package models defines the HTTP payloads of the recommender.

Two families of payloads live here:

  - Recommendation bodies: ProductRecommendations and SupplierRecommendations
    keep the flat wire shape marketplace clients already consume
    ({"recommended_products": [...]} and {"recommended_suppliers": [...]}).
  - Operational bodies: health, training status and retrain responses are
    wrapped in the APIResponse envelope, as are all errors.

Error envelope:

	{
	  "status": "error",
	  "data": null,
	  "metadata": {"timestamp": "2026-01-01T12:00:00Z"},
	  "error": {"code": "DETAIL_LOOKUP_FAILED", "message": "..."}
	}
*/
package models
