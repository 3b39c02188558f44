// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

/*
Package profile implements the per-user state store: onboarding answers, the
recommendation snapshot, active habits with streaks, progress stats, badges
and the wallet ledger.

The store is the only writer of user state. Each operation takes the store
lock, so concurrent HTTP requests observe consistent aggregates and every
operation either fully commits or leaves the profile untouched. State is
in-memory only and lost on restart.

State rules enforced here:

  - Onboarding replaces the answer set wholesale and recomputes the
    recommendation snapshot; a failed recommendation degrades to an empty
    snapshot instead of failing the submission.
  - Starting a challenge is idempotent; completion implicitly starts.
  - Streaks reset to 1 after a gap of more than seven whole days.
  - Completion credits reward points to balance and lifetime impact without
    writing a ledger entry; only redemptions append transactions.
  - The wallet balance never goes negative.
*/
package profile
