// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

/*
Package models defines data structures for the EcoRewards application.

This package contains all data models used throughout the application: the
immutable content catalog types, the per-user profile aggregate, API
request/response structures, and the standard response envelope. It serves as
the single source of truth for data structure definitions.

Key Components:

  - Question / Challenge / RedemptionOption: immutable catalog content
  - UserProfile: per-user aggregate (answers, habits, stats, wallet, ledger)
  - StreakInfo / Badge / Transaction: habit progress and reward ledger
  - APIResponse: standardized API response wrapper

JSON field names on the catalog types follow the wire format the web frontend
consumes (question "shortForm", challenge "time_variable",
"currency_reward_points", "badge_image_theme"); renaming them is a breaking
API change.
*/
package models
