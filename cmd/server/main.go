// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/kollabee-recommender/internal/api"
	"github.com/tomtom215/kollabee-recommender/internal/config"
	"github.com/tomtom215/kollabee-recommender/internal/database"
	"github.com/tomtom215/kollabee-recommender/internal/logging"
	"github.com/tomtom215/kollabee-recommender/internal/supervisor"
	"github.com/tomtom215/kollabee-recommender/internal/supervisor/services"
)

// httpIdleTimeout bounds keep-alive connections.
const httpIdleTimeout = 60 * time.Second

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Kollabee recommender with supervisor tree")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins in production")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	db, err := database.Open(ctx, &cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Str("driver", db.Driver()).Msg("Database connected")

	rc, err := initRecommend(cfg, db, logging.WithComponent("recommend"))
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize recommendation engines")
		return
	}

	if cfg.Recommend.TrainOnStartup {
		logging.Info().Msg("Training initial models")
		rc.trainInitial(ctx)
	}

	eventsComponents, err := initEvents(cfg, rc.Trigger, logging.WithComponent("events"))
	if err != nil {
		// Periodic and manual retraining still work without events.
		logging.Error().Err(err).Msg("Failed to initialize event-driven retraining, continuing without it")
	}
	defer eventsComponents.Close()

	handler, err := api.NewHandler(rc.HandlerDeps(cfg.Recommend.DefaultTopK))
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create API handler")
		return
	}
	router := api.NewRouter(handler, api.NewChiMiddlewareFromSecurity(&cfg.Security))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       httpIdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return
	}

	rc.AddToSupervisor(tree)
	eventsComponents.AddToSupervisor(tree)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The tree stops on cancellation or when the root supervisor gives up.
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}
	cancel()

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
