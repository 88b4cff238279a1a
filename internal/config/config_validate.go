// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/tomtom215/kollabee-recommender/internal/validation"
)

// Rate limit bounds.
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// minTrainInterval keeps the retrain loop from spinning.
const minTrainInterval = time.Second

// Validate checks field constraints, then cross-field rules per section.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateEvents(); err != nil {
		return err
	}

	return c.validateSecurity()
}

// validateRecommend checks the engine settings.
func (c *Config) validateRecommend() error {
	if c.Recommend.TrainInterval < minTrainInterval {
		return fmt.Errorf("TRAIN_INTERVAL must be at least %v, got %v", minTrainInterval, c.Recommend.TrainInterval)
	}
	if err := c.Recommend.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	if c.Recommend.OrderWeight+c.Recommend.CartWeight+c.Recommend.WishlistWeight == 0 {
		return errors.New("at least one of ORDER_WEIGHT, CART_WEIGHT, WISHLIST_WEIGHT must be positive")
	}
	if c.Recommend.DetailCacheTTL > 0 && c.Recommend.DetailCacheSize < 1 {
		return fmt.Errorf("DETAIL_CACHE_SIZE must be positive when DETAIL_CACHE_TTL is set, got %d", c.Recommend.DetailCacheSize)
	}
	return nil
}

// validateEvents checks the retrain trigger subscription (only if enabled).
func (c *Config) validateEvents() error {
	if !c.Events.Enabled {
		return nil
	}
	if c.Events.NATSURL == "" {
		return errors.New("NATS_URL is required when EVENTS_ENABLED=true")
	}
	if c.Events.Topic == "" {
		return errors.New("EVENTS_TOPIC is required when EVENTS_ENABLED=true")
	}
	return nil
}

// validateSecurity validates rate limiting bounds.
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	return slices.Contains(c.Security.CORSOrigins, "*")
}
