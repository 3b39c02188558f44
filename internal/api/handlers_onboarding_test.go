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

func TestQuestionsReturnsCatalog(t *testing.T) {
	t.Parallel()

	_, h := newTestRouter(t)

	rec, env := doJSON(t, h, http.MethodGet, "/api/v1/questions", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var questions []models.Question
	if err := json.Unmarshal(env.Data, &questions); err != nil {
		t.Fatalf("decoding questions: %v", err)
	}
	if len(questions) != 10 {
		t.Fatalf("len(questions) = %d, want 10", len(questions))
	}
	if questions[0].ID != 1 {
		t.Errorf("questions[0].ID = %d, want 1", questions[0].ID)
	}
	if questions[1].ShortForm != "Car owner" {
		t.Errorf("questions[1].ShortForm = %q, want Car owner", questions[1].ShortForm)
	}
}

func TestSubmitOnboardingReturnsRecommendations(t *testing.T) {
	t.Parallel()

	_, h := newTestRouter(t)

	body := map[string]interface{}{
		"answers": map[string]int{"1": 1, "2": -1, "6": 1},
	}
	rec, env := doJSON(t, h, http.MethodPost, "/api/v1/onboarding", body, "alice")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var data struct {
		Onboarded       bool                             `json:"onboarded"`
		Recommendations []models.ChallengeRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding data: %v", err)
	}

	if !data.Onboarded {
		t.Error("onboarded = false, want true")
	}
	if len(data.Recommendations) != 14 {
		t.Fatalf("len(recommendations) = %d, want 14", len(data.Recommendations))
	}
	// Output preserves catalog order regardless of score.
	for i, rec := range data.Recommendations {
		if rec.ChallengeID != i+1 {
			t.Fatalf("recommendations[%d].ChallengeID = %d, want %d", i, rec.ChallengeID, i+1)
		}
	}
	if got := data.Recommendations[5].Reasons[0]; got != "Car owner" {
		t.Errorf("recommendations[5].Reasons[0] = %q, want Car owner", got)
	}
}

func TestSubmitOnboardingRejectsBadPayloads(t *testing.T) {
	t.Parallel()

	_, h := newTestRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed JSON",
			body:       `{"answers": {`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "missing answers",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "empty answers",
			body:       `{"answers": {}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "non-numeric question id",
			body:       `{"answers": {"abc": 1}}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_ANSWER",
		},
		{
			name:       "answer out of range",
			body:       `{"answers": {"1": 5}}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_ANSWER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-User-ID", "bob")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			var env envelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decoding envelope: %v", err)
			}
			if env.Status != "error" {
				t.Errorf("envelope status = %q, want error", env.Status)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestSubmitOnboardingRejectionLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	router, h := newTestRouter(t)

	// Bad submission first; personalized challenges must stay locked.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding", strings.NewReader(`{"answers": {"1": 7}}`))
	req.Header.Set("X-User-ID", "carol")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if p := router.handler.store.Profile("carol"); p.Onboarded {
		t.Error("profile onboarded after rejected submission")
	}

	rec, _ := doJSON(t, h, http.MethodGet, "/api/v1/challenges/personalized", nil, "carol")
	if rec.Code != http.StatusConflict {
		t.Errorf("personalized status = %d, want 409 after rejected onboarding", rec.Code)
	}
}

func TestSubmitOnboardingReplacesPreviousAnswers(t *testing.T) {
	t.Parallel()

	router, h := newTestRouter(t)

	doJSON(t, h, http.MethodPost, "/api/v1/onboarding", map[string]interface{}{
		"answers": map[string]int{"1": 1, "2": 1, "3": 1},
	}, "dave")
	doJSON(t, h, http.MethodPost, "/api/v1/onboarding", map[string]interface{}{
		"answers": map[string]int{"4": -1},
	}, "dave")

	p := router.handler.store.Profile("dave")
	if len(p.Answers) != 1 {
		t.Fatalf("len(answers) = %d, want 1 after wholesale replace", len(p.Answers))
	}
	if p.Answers[4] != -1 {
		t.Errorf("answers[4] = %d, want -1", p.Answers[4])
	}
}
