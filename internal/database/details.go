// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/kollabee-recommender/internal/config"
	"github.com/tomtom215/kollabee-recommender/internal/metrics"
	"github.com/tomtom215/kollabee-recommender/internal/recommend"
)

// DetailStore resolves entity ids to full rows of one table.
type DetailStore struct {
	db      *DB
	kind    recommend.EntityKind
	table   string
	omit    []string
	breaker *gobreaker.CircuitBreaker[[]recommend.Detail]
	logger  zerolog.Logger
}

// NewProductDetailStore returns rows of the Product table.
func NewProductDetailStore(db *DB, breakerCfg *config.DetailBreakerConfig) *DetailStore {
	return newDetailStore(db, recommend.KindProduct, productTable, nil, breakerCfg)
}

// NewSupplierDetailStore returns rows of the User table for supplier user
// ids, without the omitted columns.
func NewSupplierDetailStore(db *DB, omit []string, breakerCfg *config.DetailBreakerConfig) *DetailStore {
	return newDetailStore(db, recommend.KindSupplier, userTable, omit, breakerCfg)
}

func newDetailStore(db *DB, kind recommend.EntityKind, table string, omit []string, breakerCfg *config.DetailBreakerConfig) *DetailStore {
	logger := db.logger.With().Str("table", table).Logger()
	return &DetailStore{
		db:      db,
		kind:    kind,
		table:   table,
		omit:    omit,
		breaker: newBreaker[[]recommend.Detail](kind.String()+"_details", breakerCfg, logger),
		logger:  logger,
	}
}

// LookupDetails fetches the rows whose id is in ids. Row order follows the
// database, missing ids are simply absent.
func (s *DetailStore) LookupDetails(ctx context.Context, ids []string) ([]recommend.Detail, error) {
	if len(ids) == 0 {
		return []recommend.Detail{}, nil
	}

	start := time.Now()
	details, err := s.breaker.Execute(func() ([]recommend.Detail, error) {
		return s.query(ctx, ids)
	})
	metrics.RecordDetailLookup(s.kind.String(), time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("lookup %s details: %w", s.kind, err)
	}

	if len(details) < len(ids) {
		s.logger.Debug().
			Int("requested", len(ids)).
			Int("found", len(details)).
			Msg("Some recommended ids have no detail row")
	}
	return details, nil
}

func (s *DetailStore) query(ctx context.Context, ids []string) ([]recommend.Detail, error) {
	var rows []map[string]interface{}

	start := time.Now()
	err := s.db.gorm.WithContext(ctx).
		Table(s.table).
		Where("id IN ?", ids).
		Find(&rows).Error
	metrics.RecordDBQuery("select", s.table, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row map[string]interface{}, _ int) recommend.Detail {
		if len(s.omit) > 0 {
			row = lo.OmitByKeys(row, s.omit)
		}
		return recommend.Detail(row)
	}), nil
}

// State reports the breaker state, for status endpoints.
func (s *DetailStore) State() string {
	return s.breaker.State().String()
}
