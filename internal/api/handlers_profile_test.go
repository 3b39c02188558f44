// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ecorewards/internal/models"
)

func TestProfileDefaults(t *testing.T) {
	t.Parallel()

	_, h := newTestRouter(t)

	rec, env := doJSON(t, h, http.MethodGet, "/api/v1/user/profile", nil, "new-user")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var p models.UserProfile
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatalf("decoding profile: %v", err)
	}
	if p.Name != "Eco Explorer" {
		t.Errorf("name = %q, want default Eco Explorer", p.Name)
	}
	if p.Onboarded {
		t.Error("onboarded = true for fresh profile")
	}
	if p.Transactions == nil {
		t.Error("transactions = null, want empty list")
	}
}

func TestUpdateProfileMerges(t *testing.T) {
	t.Parallel()

	_, h := newTestRouter(t)

	rec, env := doJSON(t, h, http.MethodPut, "/api/v1/user/profile", map[string]interface{}{
		"name": "Ivy",
	}, "ivy")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var p models.UserProfile
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatalf("decoding profile: %v", err)
	}
	if p.Name != "Ivy" {
		t.Errorf("name = %q, want Ivy", p.Name)
	}

	// Second update touches only the avatar; the name must survive.
	_, env = doJSON(t, h, http.MethodPut, "/api/v1/user/profile", map[string]interface{}{
		"avatarTheme": "forest",
	}, "ivy")
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatalf("decoding profile: %v", err)
	}
	if p.Name != "Ivy" || p.AvatarTheme != "forest" {
		t.Errorf("profile = %q/%q, want Ivy/forest", p.Name, p.AvatarTheme)
	}
}

func TestUpdateProfileRejectsBadPayload(t *testing.T) {
	t.Parallel()

	_, h := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"name": `},
		{name: "name too long", body: `{"name": "` + strings.Repeat("x", 200) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/v1/user/profile", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestUserStats(t *testing.T) {
	t.Parallel()

	_, h := newTestRouter(t)

	doJSON(t, h, http.MethodPost, "/api/v1/challenges/4/complete", nil, "judy")

	rec, env := doJSON(t, h, http.MethodGet, "/api/v1/user/stats", nil, "judy")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var stats models.Stats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if stats.TotalCompleted != 1 {
		t.Errorf("totalCompleted = %d, want 1", stats.TotalCompleted)
	}
	if stats.CurrentStreak != 1 || stats.LongestStreak != 1 {
		t.Errorf("streaks = %d/%d, want 1/1", stats.CurrentStreak, stats.LongestStreak)
	}
	if len(stats.Badges) != 1 {
		t.Errorf("len(badges) = %d, want 1", len(stats.Badges))
	}
}

func TestUserIsolationViaHeader(t *testing.T) {
	t.Parallel()

	_, h := newTestRouter(t)

	doJSON(t, h, http.MethodPost, "/api/v1/challenges/1/complete", nil, "kate")

	_, env := doJSON(t, h, http.MethodGet, "/api/v1/wallet", nil, "liam")
	var wallet models.Wallet
	if err := json.Unmarshal(env.Data, &wallet); err != nil {
		t.Fatalf("decoding wallet: %v", err)
	}
	if wallet.Balance != 0 {
		t.Errorf("liam's balance = %d, want 0 (kate completed the challenge)", wallet.Balance)
	}
}

func TestMissingUserHeaderFallsBackToDefault(t *testing.T) {
	t.Parallel()

	router, h := newTestRouter(t)

	doJSON(t, h, http.MethodPost, "/api/v1/challenges/1/complete", nil, "")

	if w := router.handler.store.Wallet(defaultUserID); w.Balance == 0 {
		t.Error("default user wallet not credited when X-User-ID is absent")
	}
}
