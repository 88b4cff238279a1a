// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package recommend

import "fmt"

// Config contains the tunables of one engine.
type Config struct {
	// MaxRank caps the number of latent factors of the truncated SVD.
	// Default: 20
	MaxRank int `json:"max_rank"`

	// DefaultTopK is used by Recommend callers that pass topK <= 0.
	// Default: 5
	DefaultTopK int `json:"default_top_k"`

	// MaxTopK bounds the number of recommendations per request.
	// Default: 100
	MaxTopK int `json:"max_top_k"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxRank:     DefaultMaxRank,
		DefaultTopK: 5,
		MaxTopK:     100,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.MaxRank < 1 {
		return fmt.Errorf("max_rank must be positive, got %d", c.MaxRank)
	}
	if c.DefaultTopK < 1 {
		return fmt.Errorf("default_top_k must be positive, got %d", c.DefaultTopK)
	}
	if c.MaxTopK < c.DefaultTopK {
		return fmt.Errorf("max_top_k (%d) must be at least default_top_k (%d)", c.MaxTopK, c.DefaultTopK)
	}
	return nil
}

// clampTopK applies the default and upper bound to a requested count.
func (c *Config) clampTopK(topK int) int {
	if topK <= 0 {
		return c.DefaultTopK
	}
	return min(topK, c.MaxTopK)
}
