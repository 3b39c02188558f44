// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/ecorewards/internal/logging"
	"github.com/tomtom215/ecorewards/internal/metrics"
	"github.com/tomtom215/ecorewards/internal/models"
	"github.com/tomtom215/ecorewards/internal/profile"
)

// Questions returns the onboarding question catalog in id order.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondSuccess(w, http.StatusOK, start, h.catalog.Questions())
}

// SubmitOnboarding stores the user's answers and computes the recommendation
// snapshot. Answers replace any previous set wholesale; a single invalid
// entry rejects the whole submission and leaves prior state untouched.
func (h *Handler) SubmitOnboarding(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	user := userID(r)

	var req models.OnboardingRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		metrics.RecordOnboarding(false)
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be valid JSON with an answers object", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordOnboarding(false)
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if err := h.store.SubmitOnboarding(user, req.Answers); err != nil {
		metrics.RecordOnboarding(false)
		if profile.IsValidation(err) {
			respondError(w, http.StatusUnprocessableEntity, "INVALID_ANSWER", err.Error(), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store onboarding answers", err)
		return
	}

	metrics.RecordOnboarding(true)
	metrics.RecordRecommendation(nil)

	recs, err := h.store.Recommendations(user)
	if err != nil {
		// Cannot happen right after a successful submission, but do not
		// leave the client without a body if it somehow does.
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read recommendations", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("user_id", sanitizeLogValue(user)).
		Int("answers", len(req.Answers)).
		Int("recommendations", len(recs)).
		Msg("Onboarding answers stored")

	respondSuccess(w, http.StatusOK, start, map[string]interface{}{
		"onboarded":       true,
		"recommendations": recs,
	})
}
