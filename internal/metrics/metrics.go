// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the EcoRewards API:
// - API endpoint latency and throughput
// - Recommendation engine activity
// - Challenge, badge, and wallet activity

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Engine Metrics
	RecommendationsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_generated_total",
			Help: "Total number of recommendation sets computed",
		},
	)

	RecommendationErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_errors_total",
			Help: "Total number of recommendation engine failures",
		},
	)

	OnboardingSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_submissions_total",
			Help: "Total number of onboarding answer submissions",
		},
		[]string{"result"}, // "accepted", "rejected"
	)

	// Challenge Activity Metrics
	ChallengesStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "challenges_started_total",
			Help: "Total number of challenges started",
		},
		[]string{"challenge_id"},
	)

	ChallengesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "challenges_completed_total",
			Help: "Total number of challenge completions",
		},
		[]string{"challenge_id"},
	)

	BadgesAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "badges_awarded_total",
			Help: "Total number of streak milestone badges awarded",
		},
		[]string{"milestone"},
	)

	StreakLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "challenge_streak_length",
			Help:    "Streak length observed at each completion",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)

	// Wallet Metrics
	PointsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "points_earned_total",
			Help: "Total number of reward points credited",
		},
	)

	PointsRedeemed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "points_redeemed_total",
			Help: "Total number of reward points redeemed",
		},
	)

	RedemptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redemptions_total",
			Help: "Total number of redemption attempts",
		},
		[]string{"result"}, // "success", "insufficient_balance", "invalid"
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records the outcome of a recommendation computation
func RecordRecommendation(err error) {
	if err != nil {
		RecommendationErrors.Inc()
		return
	}
	RecommendationsGenerated.Inc()
}

// RecordOnboarding records an onboarding submission outcome
func RecordOnboarding(accepted bool) {
	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	OnboardingSubmissions.WithLabelValues(result).Inc()
}

// RecordChallengeStarted records a challenge being started
func RecordChallengeStarted(challengeID int) {
	ChallengesStarted.WithLabelValues(strconv.Itoa(challengeID)).Inc()
}

// RecordChallengeCompleted records a challenge completion and its streak
func RecordChallengeCompleted(challengeID, streak, reward int) {
	ChallengesCompleted.WithLabelValues(strconv.Itoa(challengeID)).Inc()
	StreakLength.Observe(float64(streak))
	PointsEarned.Add(float64(reward))
}

// RecordBadgeAwarded records a streak milestone badge
func RecordBadgeAwarded(milestone int) {
	BadgesAwarded.WithLabelValues(strconv.Itoa(milestone)).Inc()
}

// RecordRedemption records a redemption attempt and its outcome
func RecordRedemption(result string, amount int) {
	RedemptionsTotal.WithLabelValues(result).Inc()
	if result == "success" {
		PointsRedeemed.Add(float64(amount))
	}
}
