// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

// Package services contains suture.Service adapters for components
// that do not implement the interface themselves, currently the HTTP
// server.
package services
