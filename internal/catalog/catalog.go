// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package catalog

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/ecorewards/internal/models"
)

// Config selects optional JSON file overrides for the built-in content.
// Empty paths keep the compiled-in defaults.
type Config struct {
	QuestionsFile   string `koanf:"questions_file"`
	ChallengesFile  string `koanf:"challenges_file"`
	RedemptionsFile string `koanf:"redemptions_file"`
}

// Catalog is the immutable content catalog: onboarding questions, challenges
// and redemption options. It is loaded once at startup and shared read-only
// between all request handlers, so no locking is needed after Load returns.
type Catalog struct {
	questions   []models.Question
	challenges  []models.Challenge
	redemptions []models.RedemptionOption
}

// Default returns a catalog backed by the compiled-in content.
func Default() *Catalog {
	return &Catalog{
		questions:   defaultQuestions,
		challenges:  defaultChallenges,
		redemptions: defaultRedemptions,
	}
}

// Load builds a catalog from the defaults plus any configured file overrides.
// Override files replace their section wholesale; ids are reassigned from
// position so a file cannot introduce gaps or duplicates.
func Load(cfg Config, logger zerolog.Logger) (*Catalog, error) {
	c := Default()

	if cfg.QuestionsFile != "" {
		qs, err := loadSection[models.Question](cfg.QuestionsFile)
		if err != nil {
			return nil, fmt.Errorf("loading questions: %w", err)
		}
		for i := range qs {
			qs[i].ID = i + 1
		}
		c.questions = qs
		logger.Info().Str("file", cfg.QuestionsFile).Int("count", len(qs)).Msg("Loaded question override")
	}

	if cfg.ChallengesFile != "" {
		chs, err := loadSection[models.Challenge](cfg.ChallengesFile)
		if err != nil {
			return nil, fmt.Errorf("loading challenges: %w", err)
		}
		for i := range chs {
			chs[i].ID = i + 1
		}
		c.challenges = chs
		logger.Info().Str("file", cfg.ChallengesFile).Int("count", len(chs)).Msg("Loaded challenge override")
	}

	if cfg.RedemptionsFile != "" {
		rs, err := loadSection[models.RedemptionOption](cfg.RedemptionsFile)
		if err != nil {
			return nil, fmt.Errorf("loading redemptions: %w", err)
		}
		for i := range rs {
			rs[i].ID = i + 1
		}
		c.redemptions = rs
		logger.Info().Str("file", cfg.RedemptionsFile).Int("count", len(rs)).Msg("Loaded redemption override")
	}

	if len(c.questions) == 0 {
		return nil, fmt.Errorf("catalog has no questions")
	}
	if len(c.challenges) == 0 {
		return nil, fmt.Errorf("catalog has no challenges")
	}

	return c, nil
}

func loadSection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s contains no entries", path)
	}
	return out, nil
}

// Questions returns the onboarding questionnaire in presentation order.
func (c *Catalog) Questions() []models.Question {
	return c.questions
}

// Challenges returns all challenges in catalog order.
func (c *Catalog) Challenges() []models.Challenge {
	return c.challenges
}

// Redemptions returns the fixed redemption options.
func (c *Catalog) Redemptions() []models.RedemptionOption {
	return c.redemptions
}

// Challenge resolves a 1-based challenge id. ok is false when the id is
// outside the catalog.
func (c *Catalog) Challenge(id int) (models.Challenge, bool) {
	if id < 1 || id > len(c.challenges) {
		return models.Challenge{}, false
	}
	return c.challenges[id-1], true
}

// Question resolves a 1-based question id.
func (c *Catalog) Question(id int) (models.Question, bool) {
	if id < 1 || id > len(c.questions) {
		return models.Question{}, false
	}
	return c.questions[id-1], true
}

// BadgeIcon returns the emoji for a badge theme, falling back to
// FallbackBadgeIcon for unknown themes.
func (c *Catalog) BadgeIcon(theme string) string {
	if icon, ok := badgeThemeIcons[theme]; ok {
		return icon
	}
	return FallbackBadgeIcon
}
