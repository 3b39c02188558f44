// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

// Package catalog holds the immutable content catalog: onboarding questions,
// the challenge set and the redemption options, plus the badge theme to emoji
// mapping.
//
// The catalog ships compiled-in defaults and optionally replaces a section
// from a JSON file named in the configuration. Question and challenge order
// is load-bearing: the recommendation weight matrix in internal/recommend is
// indexed by position.
package catalog
