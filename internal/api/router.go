// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/ecorewards/internal/catalog"
	"github.com/tomtom215/ecorewards/internal/config"
	"github.com/tomtom215/ecorewards/internal/middleware"
	"github.com/tomtom215/ecorewards/internal/profile"
	"github.com/tomtom215/ecorewards/internal/recommend"
)

// perfWindowSize bounds the in-memory latency window; at 100 req/min this
// covers roughly the last 10 minutes of traffic.
const perfWindowSize = 1000

// slowRequestThreshold flags handlers that should never block; everything
// here is in-memory, so anything past this is worth a log line.
const slowRequestThreshold = 250 * time.Millisecond

// Router assembles the chi routing tree and its middleware stack.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	perf          *middleware.PerformanceMonitor
}

// NewRouter wires the handler set and middleware from configuration.
func NewRouter(cfg *config.Config, store *profile.Store, cat *catalog.Catalog, engine *recommend.Engine, version string) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled

	return &Router{
		handler:       NewHandler(store, cat, engine, version),
		chiMiddleware: NewChiMiddleware(mwConfig),
		perf:          middleware.NewPerformanceMonitor(perfWindowSize, slowRequestThreshold),
	}
}

// Handler returns the shared handler set (used by tests and the supervisor).
func (router *Router) Handler() *Handler {
	return router.handler
}

// SetupChi configures all HTTP routes using the chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order. RequestID runs
	// first so every later log line carries the ID; CORS must be global to
	// answer OPTIONS preflight.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.Compression)
	r.Use(router.perf.Middleware)

	// Health endpoints: permissive rate limit so monitoring can poll freely.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealthChecks())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Core API endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		// Catalog reads
		r.Get("/questions", router.handler.Questions)
		r.Get("/challenges", router.handler.Challenges)
		r.Get("/challenges/personalized", router.handler.PersonalizedChallenges)
		r.Get("/challenges/{id}", router.handler.ChallengeByID)

		// Profile
		r.Get("/user/profile", router.handler.Profile)
		r.Put("/user/profile", router.handler.UpdateProfile)
		r.Get("/user/stats", router.handler.UserStats)

		// Wallet reads
		r.Get("/wallet", router.handler.Wallet)
		r.Get("/wallet/transactions", router.handler.Transactions)
		r.Get("/wallet/redemptions", router.handler.Redemptions)

		// State-mutating operations get the tighter write profile.
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitWriteOps())
			r.Post("/onboarding", router.handler.SubmitOnboarding)
			r.Post("/challenges/{id}/start", router.handler.StartChallenge)
			r.Post("/challenges/{id}/complete", router.handler.CompleteChallenge)
			r.Post("/wallet/redeem", router.handler.Redeem)
		})
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Service banner
	r.Get("/", router.handler.Root)

	return r
}
