// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package recommend

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Note: This package has no dependencies on other internal packages to
// maintain clean separation. Callers pass question labels in; the engine
// works purely on indices and weights.

// Config holds the engine's weight matrix. Rows are challenges, columns are
// questions. Entries are raw correlation estimates; the engine normalizes
// each row so its maximum absolute value is 1.
type Config struct {
	Weights [][]float64
}

// DefaultConfig returns the built-in weight matrix (14 challenges x 10
// questions).
func DefaultConfig() *Config {
	return &Config{Weights: defaultWeights}
}

// Validate checks that the matrix is non-empty, rectangular and finite.
func (c *Config) Validate() error {
	if len(c.Weights) == 0 {
		return fmt.Errorf("weight matrix has no rows")
	}
	cols := len(c.Weights[0])
	if cols == 0 {
		return fmt.Errorf("weight matrix has no columns")
	}
	for i, row := range c.Weights {
		if len(row) != cols {
			return fmt.Errorf("weight matrix row %d has %d columns, want %d", i, len(row), cols)
		}
		for j, w := range row {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return fmt.Errorf("weight matrix entry [%d][%d] is not finite", i, j)
			}
		}
	}
	return nil
}

// Recommendation is one engine output row: a 0-based challenge index plus the
// 0-based question indices ordered by descending influence on that challenge.
type Recommendation struct {
	Challenge int
	Reasons   []int
}

// LabeledRecommendation pairs a 1-based challenge id with human-readable
// reason labels.
type LabeledRecommendation struct {
	ChallengeID int
	Reasons     []string
}

// Metrics reports engine usage counters.
type Metrics struct {
	Requests int64
	Errors   int64
}

// Engine scores challenges against an onboarding answer vector using a static
// weight matrix. It is immutable after construction and safe for concurrent
// use.
type Engine struct {
	logger zerolog.Logger

	// weights is the row-normalized matrix; reasonOrder[i] is row i's
	// question indices sorted by descending signed weight, precomputed at
	// construction since it does not depend on the answers.
	weights     [][]float64
	reasonOrder [][]int

	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine creates a recommendation engine from the given config.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	weights := normalizeRows(cfg.Weights)

	reasonOrder := make([][]int, len(weights))
	for i, row := range weights {
		order := make([]int, len(row))
		for j := range order {
			order[j] = j
		}
		// Descending signed weight; equal weights keep ascending question index.
		sort.SliceStable(order, func(a, b int) bool {
			return row[order[a]] > row[order[b]]
		})
		reasonOrder[i] = order
	}

	return &Engine{
		logger:      logger.With().Str("component", "recommend").Logger(),
		weights:     weights,
		reasonOrder: reasonOrder,
	}, nil
}

// normalizeRows scales each row so its maximum absolute value is 1. All-zero
// rows are left untouched.
func normalizeRows(raw [][]float64) [][]float64 {
	out := make([][]float64, len(raw))
	for i, row := range raw {
		maxAbs := 0.0
		for _, w := range row {
			if a := math.Abs(w); a > maxAbs {
				maxAbs = a
			}
		}
		if maxAbs == 0 {
			maxAbs = 1
		}
		scaled := make([]float64, len(row))
		for j, w := range row {
			scaled[j] = w / maxAbs
		}
		out[i] = scaled
	}
	return out
}

// NumChallenges returns the number of weight matrix rows.
func (e *Engine) NumChallenges() int {
	return len(e.weights)
}

// NumQuestions returns the number of weight matrix columns.
func (e *Engine) NumQuestions() int {
	return len(e.weights[0])
}

// Vector densifies an answer map into a question-indexed vector. Unanswered
// questions contribute 0; question ids outside the matrix are ignored.
func (e *Engine) Vector(answers map[int]int) []float64 {
	v := make([]float64, e.NumQuestions())
	for qid, answer := range answers {
		if qid < 1 || qid > len(v) {
			continue
		}
		v[qid-1] = float64(answer)
	}
	return v
}

// Scores computes the per-challenge score vector: one dot product of the
// challenge's weight row with the dense answer vector.
func (e *Engine) Scores(answers map[int]int) []float64 {
	v := e.Vector(answers)
	scores := make([]float64, len(e.weights))
	for i, row := range e.weights {
		s := 0.0
		for j, w := range row {
			s += w * v[j]
		}
		scores[i] = s
	}
	return scores
}

// Ranking returns 0-based challenge indices ordered by descending score.
// Equal scores keep ascending index order.
func (e *Engine) Ranking(answers map[int]int) []int {
	scores := e.Scores(answers)
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	return order
}

// Recommend returns one entry per challenge, in original challenge index
// order. The score ranking influences logging only, not output order; each
// entry's Reasons are the row's question indices by descending signed weight.
func (e *Engine) Recommend(answers map[int]int) []Recommendation {
	e.requestCount.Add(1)

	ranking := e.Ranking(answers)
	e.logger.Debug().Ints("ranking", ranking).Int("answers", len(answers)).Msg("Scored challenges")

	out := make([]Recommendation, len(e.weights))
	for i := range e.weights {
		reasons := make([]int, len(e.reasonOrder[i]))
		copy(reasons, e.reasonOrder[i])
		out[i] = Recommendation{Challenge: i, Reasons: reasons}
	}
	return out
}

// RecommendLabeled maps Recommend output to 1-based challenge ids and
// short-form question labels. shortForms must be indexed by question position;
// a label set shorter than the matrix is an error.
func (e *Engine) RecommendLabeled(answers map[int]int, shortForms []string) ([]LabeledRecommendation, error) {
	if len(shortForms) < e.NumQuestions() {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("got %d question labels, need %d", len(shortForms), e.NumQuestions())
	}

	recs := e.Recommend(answers)
	out := make([]LabeledRecommendation, len(recs))
	for i, rec := range recs {
		labels := make([]string, len(rec.Reasons))
		for j, q := range rec.Reasons {
			labels[j] = shortForms[q]
		}
		out[i] = LabeledRecommendation{ChallengeID: rec.Challenge + 1, Reasons: labels}
	}
	return out, nil
}

// GetMetrics returns a snapshot of the engine's usage counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		Requests: e.requestCount.Load(),
		Errors:   e.errorCount.Load(),
	}
}
