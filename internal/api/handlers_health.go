// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package api

import (
	"net/http"
	"time"
)

// Health reports overall service health: catalog shape, engine dimensions,
// and uptime. The service holds all state in memory, so health degrades only
// when the catalog and the weight matrix disagree.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	questions := len(h.catalog.Questions())
	challenges := len(h.catalog.Challenges())

	status := "healthy"
	if h.engine.NumQuestions() != questions || h.engine.NumChallenges() != challenges {
		status = "degraded"
	}

	engineMetrics := h.engine.GetMetrics()

	respondSuccess(w, http.StatusOK, start, map[string]interface{}{
		"status":     status,
		"version":    h.version,
		"uptime":     time.Since(h.startTime).Seconds(),
		"questions":  questions,
		"challenges": challenges,
		"engine": map[string]interface{}{
			"requests": engineMetrics.Requests,
			"errors":   engineMetrics.Errors,
		},
	})
}

// HealthLive is the liveness probe: 200 whenever the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondSuccess(w, http.StatusOK, start, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady is the readiness probe. Returns 503 until the catalog and the
// engine agree on dimensions, which would only fail with a bad catalog
// override.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ready := h.engine.NumQuestions() == len(h.catalog.Questions()) &&
		h.engine.NumChallenges() == len(h.catalog.Challenges())

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondSuccess(w, statusCode, start, map[string]interface{}{
		"status": status,
		"ready":  ready,
	})
}
