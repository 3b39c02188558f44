// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/ecorewards/internal/logging"
	"github.com/tomtom215/ecorewards/internal/metrics"
	"github.com/tomtom215/ecorewards/internal/models"
	"github.com/tomtom215/ecorewards/internal/profile"
)

// Challenges returns the full challenge catalog in id order, each entry
// overlaid with the caller's activity state. Reasons stay empty here; only
// the personalized listing carries them.
func (h *Handler) Challenges(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	user := userID(r)

	activeIDs := h.store.ActiveChallengeIDs(user)
	active := make(map[int]bool, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = true
	}

	list := h.catalog.Challenges()
	out := make([]models.PersonalizedChallenge, 0, len(list))
	for _, ch := range list {
		pc := models.PersonalizedChallenge{Challenge: ch, Reasons: []string{}}
		if active[ch.ID] {
			if habit, ok := h.store.Habit(user, ch.ID); ok {
				pc.IsActive = true
				pc.CurrentStreak = habit.Streak
			}
		}
		out = append(out, pc)
	}

	respondSuccess(w, http.StatusOK, start, out)
}

// decorated overlays the caller's activity state on a catalog challenge. A
// nil reasons slice serializes as an empty list.
func (h *Handler) decorated(user string, ch models.Challenge, reasons []string) models.PersonalizedChallenge {
	if reasons == nil {
		reasons = []string{}
	}
	pc := models.PersonalizedChallenge{Challenge: ch, Reasons: reasons}
	if habit, ok := h.store.Habit(user, ch.ID); ok {
		pc.IsActive = true
		pc.CurrentStreak = habit.Streak
	}
	return pc
}

// PersonalizedChallenges returns the catalog decorated with the user's
// recommendation reasons and activity state. Requires completed onboarding.
//
// The list preserves catalog order; the per-challenge reasons carry the
// personalization. Clients that want a ranked view sort on their side.
func (h *Handler) PersonalizedChallenges(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	user := userID(r)

	recs, err := h.store.Recommendations(user)
	if err != nil {
		if errors.Is(err, profile.ErrOnboardingRequired) {
			respondError(w, http.StatusConflict, "ONBOARDING_REQUIRED",
				"Complete onboarding before requesting personalized challenges", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load recommendations", err)
		return
	}

	personalized := make([]models.PersonalizedChallenge, 0, len(recs))
	for _, rec := range recs {
		ch, ok := h.catalog.Challenge(rec.ChallengeID)
		if !ok {
			// Snapshot taken against a different catalog; skip rather than 500.
			logging.Ctx(r.Context()).Warn().
				Int("challenge_id", rec.ChallengeID).
				Msg("Recommendation references unknown challenge")
			continue
		}

		personalized = append(personalized, h.decorated(user, ch, rec.Reasons))
	}

	respondSuccess(w, http.StatusOK, start, personalized)
}

// ChallengeByID returns a single catalog challenge with the caller's
// activity state overlaid.
func (h *Handler) ChallengeByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	user := userID(r)

	id, err := challengeIDParam(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	ch, ok := h.catalog.Challenge(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Challenge not found", nil)
		return
	}

	respondSuccess(w, http.StatusOK, start, h.decorated(user, ch, nil))
}

// StartChallenge makes a challenge an active habit for the user. Starting an
// already-active challenge is a no-op that returns the current streak.
func (h *Handler) StartChallenge(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	user := userID(r)

	id, err := challengeIDParam(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	habit, err := h.store.StartChallenge(user, id)
	if err != nil {
		if errors.Is(err, profile.ErrUnknownChallenge) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Challenge not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start challenge", err)
		return
	}

	metrics.RecordChallengeStarted(id)
	logging.Ctx(r.Context()).Info().
		Str("user_id", sanitizeLogValue(user)).
		Int("challenge_id", id).
		Msg("Challenge started")

	respondSuccess(w, http.StatusOK, start, map[string]interface{}{
		"challengeId": id,
		"habit":       habit,
	})
}

// CompleteChallenge records a completion: advances or resets the streak,
// credits the wallet, and awards a milestone badge when the streak hits one.
// Completing a challenge that was never started starts it implicitly.
func (h *Handler) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	user := userID(r)

	id, err := challengeIDParam(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	result, err := h.store.CompleteChallenge(user, id)
	if err != nil {
		if errors.Is(err, profile.ErrUnknownChallenge) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Challenge not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to complete challenge", err)
		return
	}

	metrics.RecordChallengeCompleted(id, result.Streak, result.Reward)
	if result.BadgeEarned != nil {
		metrics.RecordBadgeAwarded(result.Streak)
	}

	logging.Ctx(r.Context()).Info().
		Str("user_id", sanitizeLogValue(user)).
		Int("challenge_id", id).
		Int("streak", result.Streak).
		Int("reward", result.Reward).
		Bool("badge_earned", result.BadgeEarned != nil).
		Msg("Challenge completed")

	respondSuccess(w, http.StatusOK, start, result)
}
