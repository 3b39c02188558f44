// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultCatalogShape(t *testing.T) {
	t.Parallel()

	c := Default()

	if got := len(c.Questions()); got != 10 {
		t.Errorf("Questions() = %d, want 10", got)
	}
	if got := len(c.Challenges()); got != 14 {
		t.Errorf("Challenges() = %d, want 14", got)
	}
	if got := len(c.Redemptions()); got != 4 {
		t.Errorf("Redemptions() = %d, want 4", got)
	}

	for i, q := range c.Questions() {
		if q.ID != i+1 {
			t.Errorf("question %d has id %d, want %d", i, q.ID, i+1)
		}
		if q.ShortForm == "" {
			t.Errorf("question %d has empty shortForm", q.ID)
		}
	}
	for i, ch := range c.Challenges() {
		if ch.ID != i+1 {
			t.Errorf("challenge %d has id %d, want %d", i, ch.ID, i+1)
		}
		if ch.RewardPoints <= 0 {
			t.Errorf("challenge %d has non-positive reward %d", ch.ID, ch.RewardPoints)
		}
		if _, ok := badgeThemeIcons[ch.BadgeTheme]; !ok {
			t.Errorf("challenge %d references unknown badge theme %q", ch.ID, ch.BadgeTheme)
		}
	}
}

func TestChallengeLookup(t *testing.T) {
	t.Parallel()

	c := Default()

	tests := []struct {
		name   string
		id     int
		wantOK bool
	}{
		{"first", 1, true},
		{"last", 14, true},
		{"zero", 0, false},
		{"negative", -3, false},
		{"past end", 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ch, ok := c.Challenge(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("Challenge(%d) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
			if ok && ch.ID != tt.id {
				t.Errorf("Challenge(%d) returned id %d", tt.id, ch.ID)
			}
		})
	}
}

func TestBadgeIcon(t *testing.T) {
	t.Parallel()

	c := Default()

	if got := c.BadgeIcon("recycling_bins"); got != "♻️" {
		t.Errorf("BadgeIcon(recycling_bins) = %q", got)
	}
	if got := c.BadgeIcon("no_such_theme"); got != FallbackBadgeIcon {
		t.Errorf("BadgeIcon fallback = %q, want %q", got, FallbackBadgeIcon)
	}
}

func TestLoadWithOverrideFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "questions.json")
	content := `[
		{"question": "Do you cycle?", "shortForm": "Cyclist"},
		{"question": "Do you garden?", "shortForm": "Gardener"}
	]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(Config{QuestionsFile: path}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	qs := c.Questions()
	if len(qs) != 2 {
		t.Fatalf("Questions() = %d entries, want 2", len(qs))
	}
	// Ids are reassigned from position regardless of file content.
	if qs[0].ID != 1 || qs[1].ID != 2 {
		t.Errorf("question ids = %d, %d; want 1, 2", qs[0].ID, qs[1].ID)
	}
	if qs[1].ShortForm != "Gardener" {
		t.Errorf("question 2 shortForm = %q", qs[1].ShortForm)
	}

	// Non-overridden sections keep defaults.
	if got := len(c.Challenges()); got != 14 {
		t.Errorf("Challenges() = %d, want 14", got)
	}
}

func TestLoadOverrideErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte(`[]`), 0o600); err != nil {
		t.Fatal(err)
	}
	malformed := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(malformed, []byte(`{not json`), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing file", Config{ChallengesFile: filepath.Join(dir, "nope.json")}},
		{"empty array", Config{ChallengesFile: empty}},
		{"malformed json", Config{QuestionsFile: malformed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Load(tt.cfg, zerolog.Nop()); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}
