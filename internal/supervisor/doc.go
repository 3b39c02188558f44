// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

// Package supervisor wires application services into a suture
// supervision tree. Services that crash are restarted with a decaying
// failure budget instead of taking the process down.
//
// The tree has two levels: a root supervisor for background workers
// and an api layer that owns the HTTP server. Supervisor events are
// forwarded to slog via sutureslog.
package supervisor
