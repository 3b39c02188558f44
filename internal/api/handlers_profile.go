// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/ecorewards/internal/logging"
	"github.com/tomtom215/ecorewards/internal/models"
)

// Profile returns the full profile snapshot for the acting user. Reading an
// unknown user materializes a fresh default profile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondSuccess(w, http.StatusOK, start, h.store.Profile(userID(r)))
}

// UpdateProfile merges the supplied identity fields into the profile.
// Omitted fields keep their current values.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	user := userID(r)

	var upd models.ProfileUpdate
	if err := decodeJSONBody(w, r, &upd); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be valid JSON", err)
		return
	}

	if apiErr := validateRequest(&upd); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	updated := h.store.UpdateProfile(user, upd)

	logging.Ctx(r.Context()).Info().
		Str("user_id", sanitizeLogValue(user)).
		Bool("name_changed", upd.Name != nil).
		Bool("avatar_changed", upd.AvatarTheme != nil).
		Msg("Profile updated")

	respondSuccess(w, http.StatusOK, start, updated)
}

// UserStats returns the progress counters and earned badges.
func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondSuccess(w, http.StatusOK, start, h.store.Stats(userID(r)))
}
