// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses, with metadata
// for observability.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"balance": 150, "totalImpact": 420},
//	  "metadata": {"timestamp": "2026-09-01T12:00:00Z"}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "INSUFFICIENT_BALANCE",
//	    "message": "wallet balance is lower than the redemption amount"
//	  },
//	  "metadata": {"timestamp": "2026-09-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Handler execution time in milliseconds (omitted when zero).
//     Fractional: in-memory handlers routinely finish well under a millisecond.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS float64   `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured error details.
// Provides consistent error format across all API endpoints for better client handling.
//
// Common error codes:
//   - VALIDATION_ERROR: Malformed request payload or parameters
//   - INVALID_ANSWER: Onboarding answer outside the {-1, 0, 1} domain
//   - NOT_FOUND: Resource doesn't exist (unknown challenge id, unknown route)
//   - ONBOARDING_REQUIRED: Personalized content requested before onboarding
//   - INSUFFICIENT_BALANCE: Redemption amount exceeds wallet balance
//   - RATE_LIMIT_EXCEEDED: Too many requests
//   - INTERNAL_ERROR: Unexpected server-side failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
