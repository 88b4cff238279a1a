// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tomtom215/kollabee-recommender/internal/config"
	"github.com/tomtom215/kollabee-recommender/internal/logging"
)

// Driver names, matching the DATABASE_URL schemes.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverDuckDB   = "duckdb"
)

// slowQueryThreshold marks queries logged at warn level.
const slowQueryThreshold = 2 * time.Second

// ErrUnsupportedScheme is returned for a DATABASE_URL with an unknown scheme.
var ErrUnsupportedScheme = errors.New("unsupported database url scheme")

// DB is a read-only handle on the marketplace database.
type DB struct {
	gorm   *gorm.DB
	conn   *sql.DB
	driver string
	cfg    *config.DatabaseConfig
	logger zerolog.Logger
}

// Open connects to the database named by cfg.URL and verifies the connection.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	if cfg == nil {
		return nil, errors.New("database config is nil")
	}

	driver, dsn, err := parseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	logger := logging.WithComponent("database").With().Str("driver", driver).Logger()
	gormCfg := &gorm.Config{
		Logger:                 newGormLogger(logger, slowQueryThreshold),
		SkipDefaultTransaction: true,
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverDuckDB:
		// DuckDB speaks the PostgreSQL dialect for everything this package
		// issues, including $n placeholders and quoted identifiers.
		conn, openErr := sql.Open("duckdb", dsn)
		if openErr != nil {
			return nil, fmt.Errorf("failed to open duckdb: %w", openErr)
		}
		dialector = postgres.New(postgres.Config{Conn: conn})
	}

	gdb, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	conn, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get connection pool: %w", err)
	}

	db := &DB{
		gorm:   gdb,
		conn:   conn,
		driver: driver,
		cfg:    cfg,
		logger: logger,
	}
	db.configureConnectionPool()

	if err := db.Ping(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	db.logger.Info().
		Int("max_open_conns", cfg.MaxOpenConns).
		Int("max_idle_conns", cfg.MaxIdleConns).
		Msg("Database connection established")

	return db, nil
}

// parseURL maps a DATABASE_URL to a driver name and driver-specific DSN.
func parseURL(raw string) (driver, dsn string, err error) {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, raw)
	}

	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return DriverPostgres, raw, nil
	case "sqlite", "sqlite3":
		if rest == "" {
			rest = ":memory:"
		}
		return DriverSQLite, rest, nil
	case "duckdb":
		// An empty path opens an in-memory database.
		return DriverDuckDB, rest, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

// configureConnectionPool applies the configured pool limits. Zero values
// keep the database/sql defaults.
func (db *DB) configureConnectionPool() {
	if db.cfg.MaxOpenConns > 0 {
		db.conn.SetMaxOpenConns(db.cfg.MaxOpenConns)
	}
	if db.cfg.MaxIdleConns > 0 {
		db.conn.SetMaxIdleConns(db.cfg.MaxIdleConns)
	}
	if db.cfg.ConnMaxLifetime > 0 {
		db.conn.SetConnMaxLifetime(db.cfg.ConnMaxLifetime)
	}
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Driver returns the driver name selected from the URL scheme.
func (db *DB) Driver() string {
	return db.driver
}

// Gorm returns the underlying GORM handle.
func (db *DB) Gorm() *gorm.DB {
	return db.gorm
}

// Close closes the connection pool.
func (db *DB) Close() error {
	if db == nil || db.conn == nil {
		return nil
	}
	return db.conn.Close()
}
