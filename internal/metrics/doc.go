// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are registered with the default registry via promauto and exposed at the
/metrics endpoint in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests currently in flight (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Recommendation Metrics:
  - recommendations_generated_total: Recommendation sets computed (counter)
  - recommendation_errors_total: Engine failures (counter)
  - onboarding_submissions_total: Onboarding submissions (counter)
    Labels: result (accepted, rejected)

Challenge Metrics:
  - challenges_started_total / challenges_completed_total (counter)
    Labels: challenge_id
  - badges_awarded_total: Milestone badges awarded (counter)
    Labels: milestone
  - challenge_streak_length: Streak length at completion (histogram)

Wallet Metrics:
  - points_earned_total / points_redeemed_total (counter)
  - redemptions_total: Redemption attempts (counter)
    Labels: result (success, insufficient_balance, invalid)

# Cardinality

The challenge_id label is bounded by the challenge catalog (14 entries by default)
and milestone by the fixed streak milestones, so per-entity labels stay cheap.
User identifiers are never used as labels.

# Thread Safety

All recording functions are safe for concurrent use; the Prometheus client
library handles synchronization internally.
*/
package metrics
