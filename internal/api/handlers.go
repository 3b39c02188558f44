// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/ecorewards/internal/catalog"
	"github.com/tomtom215/ecorewards/internal/profile"
	"github.com/tomtom215/ecorewards/internal/recommend"
)

// Handler carries the shared dependencies of all HTTP handlers.
type Handler struct {
	store     *profile.Store
	catalog   *catalog.Catalog
	engine    *recommend.Engine
	version   string
	startTime time.Time
}

// NewHandler creates the handler set backing the API routes.
func NewHandler(store *profile.Store, cat *catalog.Catalog, engine *recommend.Engine, version string) *Handler {
	return &Handler{
		store:     store,
		catalog:   cat,
		engine:    engine,
		version:   version,
		startTime: time.Now(),
	}
}

// Root serves the service banner at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondSuccess(w, http.StatusOK, start, map[string]interface{}{
		"name":    "EcoRewards API",
		"version": h.version,
		"message": "Gamified sustainability challenges with streak tracking, badges, and a points wallet",
		"api":     "/api/v1",
	})
}
