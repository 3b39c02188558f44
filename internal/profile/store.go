// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package profile

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/ecorewards/internal/catalog"
	"github.com/tomtom215/ecorewards/internal/models"
	"github.com/tomtom215/ecorewards/internal/recommend"
)

// streakMilestones are the streak values that award a badge.
var streakMilestones = map[int]bool{1: true, 5: true, 10: true, 25: true, 50: true, 100: true}

// streakResetDays is the whole-day gap after which a streak restarts at 1
// instead of incrementing.
const streakResetDays = 7

// Store holds the per-user profile aggregates. Every operation locks the
// store, so each call observes and produces a consistent aggregate; an
// operation either fully commits or leaves the profile untouched.
//
// Profiles live for the process lifetime only; there is no persistence layer.
type Store struct {
	mu       sync.Mutex
	profiles map[string]*models.UserProfile

	catalog *catalog.Catalog
	engine  *recommend.Engine
	logger  zerolog.Logger

	// now and newID are injectable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewStore creates an empty profile store backed by the given catalog and
// recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStore(cat *catalog.Catalog, engine *recommend.Engine, logger zerolog.Logger) *Store {
	return &Store{
		profiles: make(map[string]*models.UserProfile),
		catalog:  cat,
		engine:   engine,
		logger:   logger.With().Str("component", "profile").Logger(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// SetClock overrides the store's time source. Test use only.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// profileLocked returns the user's aggregate, creating a fresh one on first
// access. Caller must hold s.mu.
func (s *Store) profileLocked(userID string) *models.UserProfile {
	p, ok := s.profiles[userID]
	if !ok {
		p = &models.UserProfile{
			Name:         "Eco Explorer",
			Answers:      make(map[int]int),
			ActiveHabits: make(map[int]*models.StreakInfo),
			Stats:        models.Stats{Badges: []models.Badge{}},
			Transactions: []models.Transaction{},
		}
		s.profiles[userID] = p
	}
	return p
}

// Profile returns a deep copy of the user's aggregate. The copy is safe to
// serialize without holding the store lock.
func (s *Store) Profile(userID string) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.profileLocked(userID))
}

// UpdateProfile merges the non-nil fields of upd into the user's identity
// fields and returns the updated aggregate.
func (s *Store) UpdateProfile(userID string, upd models.ProfileUpdate) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profileLocked(userID)
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.AvatarTheme != nil {
		p.AvatarTheme = *upd.AvatarTheme
	}
	return snapshot(p)
}

// SubmitOnboarding validates and stores a full onboarding answer set, then
// recomputes the recommendation snapshot. Keys are decimal question ids;
// values must be -1 (no), 0 (skip) or 1 (yes). Any invalid entry rejects the
// whole submission without mutation. Answer ids outside the questionnaire are
// accepted and ignored by the engine.
func (s *Store) SubmitOnboarding(userID string, raw map[string]int) error {
	answers := make(map[int]int, len(raw))
	for key, value := range raw {
		qid, err := strconv.Atoi(key)
		if err != nil {
			return &ValidationError{Field: key, Message: "answer key must be an integer question id"}
		}
		if value != -1 && value != 0 && value != 1 {
			return &ValidationError{
				Field:   key,
				Message: "answer must be -1, 0, or 1, got " + strconv.Itoa(value),
			}
		}
		answers[qid] = value
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profileLocked(userID)
	p.Answers = answers
	p.Onboarded = true
	p.Recommendations = s.recommendLocked(answers)

	s.logger.Info().Str("user", userID).Int("answers", len(answers)).Msg("Onboarding submitted")
	return nil
}

// recommendLocked computes the labeled recommendation snapshot. Engine
// failures degrade to an empty snapshot rather than failing the submission.
func (s *Store) recommendLocked(answers map[int]int) []models.ChallengeRecommendation {
	shortForms := make([]string, 0, len(s.catalog.Questions()))
	for _, q := range s.catalog.Questions() {
		shortForms = append(shortForms, q.ShortForm)
	}

	recs, err := s.engine.RecommendLabeled(answers, shortForms)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Recommendation failed, storing empty snapshot")
		return []models.ChallengeRecommendation{}
	}

	out := make([]models.ChallengeRecommendation, len(recs))
	for i, rec := range recs {
		out[i] = models.ChallengeRecommendation{ChallengeID: rec.ChallengeID, Reasons: rec.Reasons}
	}
	return out
}

// Recommendations returns the stored recommendation snapshot. The snapshot
// only changes on onboarding submission, never on read.
func (s *Store) Recommendations(userID string) ([]models.ChallengeRecommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profileLocked(userID)
	if !p.Onboarded {
		return nil, ErrOnboardingRequired
	}

	out := make([]models.ChallengeRecommendation, len(p.Recommendations))
	for i, rec := range p.Recommendations {
		reasons := make([]string, len(rec.Reasons))
		copy(reasons, rec.Reasons)
		out[i] = models.ChallengeRecommendation{ChallengeID: rec.ChallengeID, Reasons: reasons}
	}
	return out, nil
}

// Habit returns the user's streak info for a challenge, or ok=false when the
// challenge was never started.
func (s *Store) Habit(userID string, challengeID int) (models.StreakInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, ok := s.profileLocked(userID).ActiveHabits[challengeID]
	if !ok {
		return models.StreakInfo{}, false
	}
	return *info, true
}

// StartChallenge marks a challenge as an active habit with a zero streak.
// Starting an already-active challenge is a no-op; the existing streak is
// kept. Returns the habit state after the call.
func (s *Store) StartChallenge(userID string, challengeID int) (models.StreakInfo, error) {
	ch, ok := s.catalog.Challenge(challengeID)
	if !ok {
		return models.StreakInfo{}, ErrUnknownChallenge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profileLocked(userID)
	info, active := p.ActiveHabits[challengeID]
	if !active {
		info = &models.StreakInfo{Streak: 0, LastCompleted: nil, TimeHorizon: ch.TimeHorizon}
		p.ActiveHabits[challengeID] = info
	}

	s.logger.Info().Str("user", userID).Int("challenge", challengeID).Bool("already_active", active).Msg("Started challenge")
	return *info, nil
}

// CompleteChallenge records a completion: advances the streak, credits the
// wallet and impact counters, updates stats and awards a milestone badge when
// due. Completing a never-started challenge implicitly starts it.
//
// Streak rule: no previous completion starts the streak at 1; a gap of more
// than streakResetDays whole days resets it to 1; anything else increments.
func (s *Store) CompleteChallenge(userID string, challengeID int) (models.CompletionResult, error) {
	ch, ok := s.catalog.Challenge(challengeID)
	if !ok {
		return models.CompletionResult{}, ErrUnknownChallenge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profileLocked(userID)
	now := s.now()

	info, active := p.ActiveHabits[challengeID]
	if !active {
		info = &models.StreakInfo{Streak: 0, LastCompleted: nil, TimeHorizon: ch.TimeHorizon}
		p.ActiveHabits[challengeID] = info
	}

	switch {
	case info.LastCompleted == nil:
		info.Streak = 1
	case wholeDays(now.Sub(*info.LastCompleted)) > streakResetDays:
		info.Streak = 1
	default:
		info.Streak++
	}
	completedAt := now
	info.LastCompleted = &completedAt

	// Reward points feed both the spendable balance and the lifetime impact
	// counter, unconditionally and uncapped. No ledger entry is written for
	// earnings; only redemptions append transactions.
	p.Wallet.Balance += ch.RewardPoints
	p.Wallet.TotalImpact += ch.RewardPoints

	p.Stats.TotalCompleted++
	p.Stats.CurrentStreak = info.Streak
	if info.Streak > p.Stats.LongestStreak {
		p.Stats.LongestStreak = info.Streak
	}

	result := models.CompletionResult{Challenge: ch, Reward: ch.RewardPoints, Streak: info.Streak}

	if streakMilestones[info.Streak] {
		badge := models.Badge{
			ID:          s.newID(),
			Title:       ch.Description + " - " + strconv.Itoa(info.Streak) + " Streak",
			Icon:        s.catalog.BadgeIcon(ch.BadgeTheme),
			EarnedAt:    now,
			ChallengeID: challengeID,
		}
		p.Stats.Badges = append(p.Stats.Badges, badge)
		result.BadgeEarned = &badge
	}

	s.logger.Info().
		Str("user", userID).
		Int("challenge", challengeID).
		Int("streak", info.Streak).
		Int("reward", ch.RewardPoints).
		Msg("Completed challenge")
	return result, nil
}

// wholeDays truncates a duration to whole days.
func wholeDays(d time.Duration) int {
	return int(d.Hours() / 24)
}

// RedeemReward spends points from the wallet and appends a ledger entry with
// the negated amount. A negative amount or a balance below the amount rejects
// the redemption without mutation.
func (s *Store) RedeemReward(userID string, amount int, description string) (models.Transaction, error) {
	if amount < 0 {
		return models.Transaction{}, &ValidationError{Field: "amount", Message: "must not be negative"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profileLocked(userID)
	if p.Wallet.Balance < amount {
		return models.Transaction{}, ErrInsufficientBalance
	}

	p.Wallet.Balance -= amount
	tx := models.Transaction{
		ID:          s.newID(),
		Type:        models.TransactionRedeemed,
		Amount:      -amount,
		Description: description,
		Date:        s.now(),
	}
	p.Transactions = append(p.Transactions, tx)

	s.logger.Info().Str("user", userID).Int("amount", amount).Str("description", description).Msg("Redeemed points")
	return tx, nil
}

// Wallet returns the user's balance and lifetime impact.
func (s *Store) Wallet(userID string) models.Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profileLocked(userID).Wallet
}

// Transactions returns the user's ledger, oldest first. Never nil.
func (s *Store) Transactions(userID string) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profileLocked(userID)
	out := make([]models.Transaction, len(p.Transactions))
	copy(out, p.Transactions)
	return out
}

// Stats returns the user's progress counters and badges.
func (s *Store) Stats(userID string) models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profileLocked(userID)
	st := p.Stats
	st.Badges = make([]models.Badge, len(p.Stats.Badges))
	copy(st.Badges, p.Stats.Badges)
	return st
}

// snapshot deep-copies an aggregate so callers can serialize it without
// holding the store lock.
func snapshot(p *models.UserProfile) models.UserProfile {
	out := *p

	out.Answers = make(map[int]int, len(p.Answers))
	for k, v := range p.Answers {
		out.Answers[k] = v
	}

	out.ActiveHabits = make(map[int]*models.StreakInfo, len(p.ActiveHabits))
	for k, v := range p.ActiveHabits {
		info := *v
		out.ActiveHabits[k] = &info
	}

	out.Recommendations = make([]models.ChallengeRecommendation, len(p.Recommendations))
	for i, rec := range p.Recommendations {
		reasons := make([]string, len(rec.Reasons))
		copy(reasons, rec.Reasons)
		out.Recommendations[i] = models.ChallengeRecommendation{ChallengeID: rec.ChallengeID, Reasons: reasons}
	}

	out.Stats.Badges = make([]models.Badge, len(p.Stats.Badges))
	copy(out.Stats.Badges, p.Stats.Badges)

	out.Transactions = make([]models.Transaction, len(p.Transactions))
	copy(out.Transactions, p.Transactions)

	return out
}

// ActiveChallengeIDs returns the user's started challenge ids in ascending
// order. Used by listing handlers to decorate catalog entries.
func (s *Store) ActiveChallengeIDs(userID string) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profileLocked(userID)
	ids := make([]int, 0, len(p.ActiveHabits))
	for id := range p.ActiveHabits {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
