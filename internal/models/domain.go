// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package models

import (
	"time"
)

// Question is a single onboarding question. The catalog loads questions once
// at startup; ids are 1-based and derived from position.
//
// ShortForm is the compact label surfaced in recommendation reasons
// (e.g. "Car owner" instead of the full question text).
type Question struct {
	ID        int    `json:"id"`
	Question  string `json:"question"`
	ShortForm string `json:"shortForm"`
}

// Challenge is a sustainability challenge from the immutable catalog.
// Ids are 1-based and derived from position.
//
// TimeHorizon describes the commitment cadence ("daily", "weekly", "monthly").
// BadgeTheme selects the icon awarded at streak milestones.
type Challenge struct {
	ID           int    `json:"id"`
	Description  string `json:"challenge"`
	Category     string `json:"category,omitempty"`
	TimeHorizon  string `json:"time_variable"`
	Impact       int    `json:"impact"`
	RewardPoints int    `json:"currency_reward_points"`
	BadgeTheme   string `json:"badge_image_theme"`
}

// RedemptionOption is a fixed reward the user can spend points on.
type RedemptionOption struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Icon        string `json:"icon"`
}

// StreakInfo tracks one active habit (a started challenge).
//
// LastCompleted is nil until the first completion. Streak stays 0 between
// start and first completion.
type StreakInfo struct {
	Streak        int        `json:"streak"`
	LastCompleted *time.Time `json:"lastCompleted"`
	TimeHorizon   string     `json:"timeHorizon"`
}

// Transaction types. Completions credit the balance without a ledger entry;
// only redemptions are recorded. "earned" remains in the taxonomy for clients
// that render both directions.
const (
	TransactionEarned   = "earned"
	TransactionRedeemed = "redeemed"
)

// Transaction is one append-only wallet ledger entry. Redemptions carry a
// negative Amount.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// Badge is a streak-milestone award.
type Badge struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earnedAt"`
	ChallengeID int       `json:"challengeId"`
}

// Stats aggregates per-user progress counters.
type Stats struct {
	CurrentStreak  int     `json:"currentStreak"`
	LongestStreak  int     `json:"longestStreak"`
	TotalCompleted int     `json:"totalCompleted"`
	Badges         []Badge `json:"badges"`
}

// Wallet holds the spendable point balance plus the lifetime impact counter.
// Balance never goes negative; TotalImpact only grows.
type Wallet struct {
	Balance     int `json:"balance"`
	TotalImpact int `json:"totalImpact"`
}

// ChallengeRecommendation is one engine output row: a 1-based challenge id
// plus the short-form labels of the questions that most influenced its score.
type ChallengeRecommendation struct {
	ChallengeID int      `json:"challengeId"`
	Reasons     []string `json:"reasons"`
}

// PersonalizedChallenge decorates a catalog challenge with the per-user
// recommendation and activity state for the personalized listing.
type PersonalizedChallenge struct {
	Challenge
	Reasons       []string `json:"reasons"`
	IsActive      bool     `json:"isActive"`
	CurrentStreak int      `json:"currentStreak"`
}

// UserProfile is the per-user mutable aggregate: identity fields, onboarding
// answers, recommendation snapshot, active habits, stats, wallet and ledger.
// All mutation goes through the profile store, never through handlers directly.
type UserProfile struct {
	Name            string                    `json:"name"`
	AvatarTheme     string                    `json:"avatarTheme"`
	Answers         map[int]int               `json:"answers"`
	Onboarded       bool                      `json:"onboarded"`
	Recommendations []ChallengeRecommendation `json:"recommendations"`
	ActiveHabits    map[int]*StreakInfo       `json:"activeHabits"`
	Stats           Stats                     `json:"stats"`
	Wallet          Wallet                    `json:"wallet"`
	Transactions    []Transaction             `json:"transactions"`
}

// ProfileUpdate carries the merge-updatable identity fields for PUT
// /api/v1/user/profile. Nil pointers leave the existing value untouched.
type ProfileUpdate struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	AvatarTheme *string `json:"avatarTheme" validate:"omitempty,max=64"`
}

// OnboardingRequest is the POST /api/v1/onboarding payload. Keys are decimal
// question ids; values must be -1, 0 or 1.
type OnboardingRequest struct {
	Answers map[string]int `json:"answers" validate:"required,min=1"`
}

// RedeemRequest is the POST /api/v1/wallet/redeem payload.
type RedeemRequest struct {
	Amount      int    `json:"amount" validate:"min=0"`
	Description string `json:"description" validate:"max=240"`
}

// CompletionResult is returned by challenge completion: the completed
// challenge, the awarded points and the streak after the completion was
// applied. BadgeEarned is set only when the completion hit a streak milestone.
type CompletionResult struct {
	Challenge   Challenge `json:"challenge"`
	Reward      int       `json:"reward"`
	Streak      int       `json:"streak"`
	BadgeEarned *Badge    `json:"badgeEarned,omitempty"`
}
