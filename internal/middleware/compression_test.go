// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const compressiblePayload = `{"status":"success","data":{"message":"EcoRewards API - gamified sustainability challenges with streak tracking, badges, and a points wallet"}}`

func TestCompressionGzipsResponse(t *testing.T) {
	t.Parallel()

	handler := Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(compressiblePayload))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/challenges", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}

	gz, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader() error: %v", err)
	}
	defer gz.Close()

	body, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("reading gzip body: %v", err)
	}
	if string(body) != compressiblePayload {
		t.Errorf("decompressed body = %q, want original payload", string(body))
	}
}

func TestCompressionSkippedWithoutAcceptEncoding(t *testing.T) {
	t.Parallel()

	handler := Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(compressiblePayload))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/challenges", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "" {
		t.Errorf("Content-Encoding = %q, want empty", got)
	}
	if !strings.Contains(rec.Body.String(), "EcoRewards") {
		t.Error("body should be plain text when client does not accept gzip")
	}
}

func TestCompressionSkipsMetricsEndpoint(t *testing.T) {
	t.Parallel()

	handler := Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("app_uptime_seconds 42"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Encoding"); got != "" {
		t.Errorf("Content-Encoding = %q, want empty for /metrics", got)
	}
}

func TestCompressionPreservesStatusCode(t *testing.T) {
	t.Parallel()

	handler := Compression(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"error"}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/challenges/99", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
