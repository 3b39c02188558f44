// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

// Package api provides the HTTP surface of the EcoRewards service: the chi
// router, its middleware stack, and the handlers for onboarding, challenges,
// profile, and wallet operations.
//
// All responses share the models.APIResponse envelope with a "success" or
// "error" status. Error responses carry a stable machine-readable code
// (VALIDATION_ERROR, INVALID_ANSWER, NOT_FOUND, ONBOARDING_REQUIRED,
// INSUFFICIENT_BALANCE, RATE_LIMIT_EXCEEDED, INTERNAL_ERROR).
//
// Users are identified by the X-User-ID header; requests without one operate
// on the "default" user. There is no authentication layer - the service is
// designed to sit behind a trusted gateway that establishes identity.
package api
