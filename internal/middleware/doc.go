// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

// Package middleware provides HTTP middleware shared by the API router:
// request ID assignment and propagation, Prometheus instrumentation,
// gzip response compression, and an in-memory performance monitor for
// slow-request logging and latency percentiles.
//
// All middleware uses the standard func(http.Handler) http.Handler shape
// so it composes with chi's Use chain. Ordering matters: RequestID runs
// first so downstream logging carries the ID, and PrometheusMetrics runs
// inside the router so the chi route pattern is available for the
// endpoint label.
package middleware
