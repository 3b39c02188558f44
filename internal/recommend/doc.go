// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

/*
Package recommend implements the static challenge recommendation engine.

The engine holds a fixed challenge-by-question weight matrix. Scoring is a
single dense matrix-vector product: answers (-1 no, 0 skip, +1 yes) are
densified into a question-indexed vector and each challenge's score is the
dot product with its weight row.

Output contract, kept compatible with the clients that consume it:

  - Recommend returns one entry per challenge in original index order. The
    descending-score ranking is computed and exposed via Ranking, but the
    output list is NOT reordered by it.
  - Each entry's reasons are the challenge row's question indices sorted by
    descending signed weight. Reasons depend only on the matrix, not on the
    submitted answers.
  - Ties (equal scores, equal weights) keep ascending index order.
  - Answer keys outside the question range are ignored.

The engine is immutable after construction and safe for concurrent use.
*/
package recommend
