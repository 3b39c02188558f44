// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/ecorewards/internal/logging"
	"github.com/tomtom215/ecorewards/internal/metrics"
	"github.com/tomtom215/ecorewards/internal/models"
	"github.com/tomtom215/ecorewards/internal/profile"
)

// Wallet returns the current balance and lifetime impact.
func (h *Handler) Wallet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondSuccess(w, http.StatusOK, start, h.store.Wallet(userID(r)))
}

// Transactions returns the wallet ledger, newest entries last. The ledger
// only records redemptions; completions credit the balance without an entry.
// The list is always present, never null.
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondSuccess(w, http.StatusOK, start, h.store.Transactions(userID(r)))
}

// Redemptions returns the fixed catalog of rewards points can be spent on.
func (h *Handler) Redemptions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondSuccess(w, http.StatusOK, start, h.catalog.Redemptions())
}

// Redeem spends points from the wallet and appends a ledger entry with a
// negative amount. The balance check and the deduction are atomic; an
// insufficient balance leaves the wallet untouched.
func (h *Handler) Redeem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	user := userID(r)

	var req models.RedeemRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		metrics.RecordRedemption("invalid", 0)
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be valid JSON", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordRedemption("invalid", 0)
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	tx, err := h.store.RedeemReward(user, req.Amount, req.Description)
	if err != nil {
		if profile.IsValidation(err) {
			metrics.RecordRedemption("invalid", 0)
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		if errors.Is(err, profile.ErrInsufficientBalance) {
			metrics.RecordRedemption("insufficient_balance", 0)
			respondError(w, http.StatusBadRequest, "INSUFFICIENT_BALANCE",
				"Wallet balance is lower than the requested amount", nil)
			return
		}
		metrics.RecordRedemption("invalid", 0)
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to redeem reward", err)
		return
	}

	metrics.RecordRedemption("success", req.Amount)
	logging.Ctx(r.Context()).Info().
		Str("user_id", sanitizeLogValue(user)).
		Int("amount", req.Amount).
		Msg("Reward redeemed")

	respondSuccess(w, http.StatusOK, start, map[string]interface{}{
		"transaction": tx,
		"wallet":      h.store.Wallet(user),
	})
}
