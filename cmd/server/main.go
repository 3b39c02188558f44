// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

// Package main is the entry point for the EcoRewards server.
//
// EcoRewards is a gamified sustainability platform: users answer a short
// onboarding questionnaire, receive personalized eco-challenge
// recommendations, build daily streaks, earn badges, and redeem the
// points they accumulate.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered Koanf v2 (defaults, YAML file, env vars)
//  2. Logging: zerolog, configured from the loaded settings
//  3. Catalog: the question/challenge/redemption content
//  4. Recommendation engine: weight-matrix scoring over the catalog
//  5. Profile store: in-memory per-user state
//  6. HTTP API: chi router under /api/v1
//  7. Supervisor tree: suture restarts the HTTP server if it crashes
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables with the ECOREWARDS_ prefix
//   - Config file (config.yaml)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//
// # Example Usage
//
// Development with console logs:
//
//	export ECOREWARDS_LOGGING_LEVEL=debug
//	export ECOREWARDS_LOGGING_FORMAT=console
//	./ecorewards
//
// Production with a custom catalog:
//
//	export ECOREWARDS_SERVER_ENVIRONMENT=production
//	export ECOREWARDS_CATALOG_CHALLENGES_FILE=/etc/ecorewards/challenges.json
//	./ecorewards
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/ecorewards/internal/api"
	"github.com/tomtom215/ecorewards/internal/catalog"
	"github.com/tomtom215/ecorewards/internal/config"
	"github.com/tomtom215/ecorewards/internal/logging"
	"github.com/tomtom215/ecorewards/internal/metrics"
	"github.com/tomtom215/ecorewards/internal/profile"
	"github.com/tomtom215/ecorewards/internal/recommend"
	"github.com/tomtom215/ecorewards/internal/supervisor"
	"github.com/tomtom215/ecorewards/internal/supervisor/services"
)

// version is overridden at build time:
//
//	go build -ldflags "-X main.version=v1.2.0" ./cmd/server
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting EcoRewards")

	cat, err := catalog.Load(catalog.Config{
		QuestionsFile:   cfg.Catalog.QuestionsFile,
		ChallengesFile:  cfg.Catalog.ChallengesFile,
		RedemptionsFile: cfg.Catalog.RedemptionsFile,
	}, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load content catalog")
	}
	logging.Info().
		Int("questions", len(cat.Questions())).
		Int("challenges", len(cat.Challenges())).
		Int("redemptions", len(cat.Redemptions())).
		Msg("Content catalog loaded")

	engine, err := recommend.NewEngine(nil, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	store := profile.NewStore(cat, engine, logging.Logger())

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startTime := time.Now()
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				metrics.AppUptime.Set(time.Since(startTime).Seconds())
			}
		}
	}()

	router := api.NewRouter(cfg, store, cat, engine, version)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Bridge zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	tree := supervisor.NewTree(slogLogger, supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
