// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPerformanceMonitorRecordsRequests(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(100, 0)

	for i := 0; i < 5; i++ {
		pm.RecordRequest(&RequestMetrics{
			Path:       "/api/v1/challenges",
			Method:     http.MethodGet,
			DurationMS: int64(10 * (i + 1)),
			StatusCode: http.StatusOK,
			Timestamp:  time.Now(),
		})
	}

	stats := pm.GetStats()
	if len(stats) != 1 {
		t.Fatalf("GetStats() = %d endpoints, want 1", len(stats))
	}

	s := stats[0]
	if s.Path != "GET /api/v1/challenges" {
		t.Errorf("Path = %q, want GET /api/v1/challenges", s.Path)
	}
	if s.RequestCount != 5 {
		t.Errorf("RequestCount = %d, want 5", s.RequestCount)
	}
	if s.MinDuration != 10 || s.MaxDuration != 50 {
		t.Errorf("Min/Max = %d/%d, want 10/50", s.MinDuration, s.MaxDuration)
	}
	if s.AvgDuration != 30 {
		t.Errorf("AvgDuration = %v, want 30", s.AvgDuration)
	}
	if s.P50Duration != 30 {
		t.Errorf("P50Duration = %d, want 30", s.P50Duration)
	}
}

func TestPerformanceMonitorSlidingWindow(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(3, 0)

	for i := 0; i < 10; i++ {
		pm.RecordRequest(&RequestMetrics{
			Path:       "/api/v1/questions",
			Method:     http.MethodGet,
			DurationMS: int64(i),
			StatusCode: http.StatusOK,
		})
	}

	stats := pm.GetStats()
	if len(stats) != 1 {
		t.Fatalf("GetStats() = %d endpoints, want 1", len(stats))
	}
	if stats[0].RequestCount != 3 {
		t.Errorf("RequestCount = %d, want window size 3", stats[0].RequestCount)
	}
	// Oldest entries evicted; only durations 7, 8, 9 remain.
	if stats[0].MinDuration != 7 {
		t.Errorf("MinDuration = %d, want 7", stats[0].MinDuration)
	}
}

func TestPerformanceMonitorStatsSortedByCount(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(100, 0)

	for i := 0; i < 3; i++ {
		pm.RecordRequest(&RequestMetrics{Path: "/api/v1/challenges", Method: http.MethodGet, DurationMS: 5})
	}
	pm.RecordRequest(&RequestMetrics{Path: "/api/v1/questions", Method: http.MethodGet, DurationMS: 5})

	stats := pm.GetStats()
	if len(stats) != 2 {
		t.Fatalf("GetStats() = %d endpoints, want 2", len(stats))
	}
	if stats[0].Path != "GET /api/v1/challenges" {
		t.Errorf("stats[0].Path = %q, want busiest endpoint first", stats[0].Path)
	}
}

func TestPerformanceMonitorMiddleware(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(10, time.Second)

	handler := pm.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wallet/redeem", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	stats := pm.GetStats()
	if len(stats) != 1 {
		t.Fatalf("GetStats() = %d endpoints, want 1", len(stats))
	}
	if stats[0].Path != "POST /api/v1/wallet/redeem" {
		t.Errorf("Path = %q, want POST /api/v1/wallet/redeem", stats[0].Path)
	}
}

func TestPercentileEmpty(t *testing.T) {
	t.Parallel()

	if got := percentile(nil, 0.95); got != 0 {
		t.Errorf("percentile(nil) = %d, want 0", got)
	}
}
