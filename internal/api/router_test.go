// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/ecorewards/internal/catalog"
	"github.com/tomtom215/ecorewards/internal/config"
	"github.com/tomtom215/ecorewards/internal/models"
	"github.com/tomtom215/ecorewards/internal/profile"
	"github.com/tomtom215/ecorewards/internal/recommend"
)

// envelope mirrors models.APIResponse with raw data for per-test decoding.
type envelope struct {
	Status string           `json:"status"`
	Data   json.RawMessage  `json:"data"`
	Error  *models.APIError `json:"error"`
}

// newTestRouter builds a router over the default catalog with an isolated
// in-memory store.
func newTestRouter(t *testing.T) (*Router, http.Handler) {
	t.Helper()

	cfg := &config.Config{
		Security: config.SecurityConfig{
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
	}

	cat := catalog.Default()
	engine, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	store := profile.NewStore(cat, engine, zerolog.Nop())

	router := NewRouter(cfg, store, cat, engine, "test")
	return router, router.SetupChi()
}

// doJSON performs a request with an optional JSON body and decodes the
// response envelope.
func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}, user string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decoding response envelope from %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

// onboard submits a fixed answer set so personalized endpoints unlock.
func onboard(t *testing.T, h http.Handler, user string) {
	t.Helper()

	body := map[string]interface{}{
		"answers": map[string]int{"1": 1, "2": -1, "6": 1},
	}
	rec, _ := doJSON(t, h, http.MethodPost, "/api/v1/onboarding", body, user)
	if rec.Code != http.StatusOK {
		t.Fatalf("onboarding returned %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouteSurface(t *testing.T) {
	t.Parallel()

	_, h := newTestRouter(t)
	onboard(t, h, "surface-user")

	tests := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		wantStatus int
	}{
		{name: "root banner", method: http.MethodGet, path: "/", wantStatus: http.StatusOK},
		{name: "health", method: http.MethodGet, path: "/api/v1/health", wantStatus: http.StatusOK},
		{name: "liveness", method: http.MethodGet, path: "/api/v1/health/live", wantStatus: http.StatusOK},
		{name: "readiness", method: http.MethodGet, path: "/api/v1/health/ready", wantStatus: http.StatusOK},
		{name: "questions", method: http.MethodGet, path: "/api/v1/questions", wantStatus: http.StatusOK},
		{name: "challenges", method: http.MethodGet, path: "/api/v1/challenges", wantStatus: http.StatusOK},
		{name: "challenge by id", method: http.MethodGet, path: "/api/v1/challenges/1", wantStatus: http.StatusOK},
		{name: "personalized", method: http.MethodGet, path: "/api/v1/challenges/personalized", wantStatus: http.StatusOK},
		{name: "profile", method: http.MethodGet, path: "/api/v1/user/profile", wantStatus: http.StatusOK},
		{name: "stats", method: http.MethodGet, path: "/api/v1/user/stats", wantStatus: http.StatusOK},
		{name: "wallet", method: http.MethodGet, path: "/api/v1/wallet", wantStatus: http.StatusOK},
		{name: "transactions", method: http.MethodGet, path: "/api/v1/wallet/transactions", wantStatus: http.StatusOK},
		{name: "redemptions", method: http.MethodGet, path: "/api/v1/wallet/redemptions", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/nope", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodDelete, path: "/api/v1/questions", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("X-User-ID", "surface-user")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("%s %s = %d, want %d (body %s)", tt.method, tt.path, rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestResponseEnvelopeShape(t *testing.T) {
	t.Parallel()

	_, h := newTestRouter(t)

	rec, env := doJSON(t, h, http.MethodGet, "/api/v1/questions", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if env.Status != "success" {
		t.Errorf("envelope status = %q, want success", env.Status)
	}
	if env.Error != nil {
		t.Errorf("envelope error = %+v, want nil", env.Error)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("ETag header missing")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestSecurityHeadersOnAPIRoutes(t *testing.T) {
	t.Parallel()

	_, h := newTestRouter(t)

	rec, _ := doJSON(t, h, http.MethodGet, "/api/v1/challenges", nil, "")
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	_, h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/challenges", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
