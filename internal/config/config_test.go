package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "match3.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	assert.Equal(t, DefaultMatch3Config(), Parse(DefaultYAML()))
}

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultMatch3Config().Validate())
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, `
board:
  rows: 6
  cols: 7
session:
  hint_penalty: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Board.Rows)
	assert.Equal(t, 7, cfg.Board.Cols)
	assert.Equal(t, 5, cfg.Board.Colors, "unset keys keep defaults")
	assert.Equal(t, 4, cfg.Session.HintPenalty)
	assert.Equal(t, DefaultMatch3Config().Levels, cfg.Levels)
}

func TestLoadCustomLevelsReplaceDefaults(t *testing.T) {
	path := writeConfig(t, `
levels:
  - name: Only
    target_score: 10
    move_limit: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Levels, 1)
	assert.Equal(t, "Only", cfg.Levels[0].Name)
	assert.Equal(t, cfg.Board.Colors, cfg.LevelColors(cfg.Levels[0]))
}

func TestLoadCustomErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "board: [1, 2"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "board:\n  colors: 9\n"))
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMatch3Config(), cfg)
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".match3", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte("board:\n  rows: 10\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Board.Rows)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
	}{
		{"rows too small", func(c *Match3Config) { c.Board.Rows = 2 }},
		{"cols too large", func(c *Match3Config) { c.Board.Cols = 17 }},
		{"too few colors", func(c *Match3Config) { c.Board.Colors = 2 }},
		{"negative tier", func(c *Match3Config) { c.Scoring.Four = -1 }},
		{"zero passes", func(c *Match3Config) { c.Cascade.MaxPasses = 0 }},
		{"negative history", func(c *Match3Config) { c.Session.HistoryLimit = -1 }},
		{"level without target", func(c *Match3Config) { c.Levels[0].TargetScore = 0 }},
		{"level without moves", func(c *Match3Config) { c.Levels[1].MoveLimit = 0 }},
		{"level colors", func(c *Match3Config) { c.Levels[2].Colors = 7 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.expected, got)
	}
}

func TestApplyPreset(t *testing.T) {
	t.Run("easy", func(t *testing.T) {
		cfg := DefaultMatch3Config()
		ApplyPreset(&cfg, DifficultyEasy)

		assert.Equal(t, 4, cfg.Board.Colors)
		assert.Equal(t, 3, cfg.Levels[0].Colors)
		assert.Equal(t, 0, cfg.Levels[2].Colors, "inherited colors stay inherited")
		assert.Equal(t, 40, cfg.Session.HistoryLimit)
		assert.Equal(t, 0, cfg.Session.HintPenalty)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("hard", func(t *testing.T) {
		cfg := DefaultMatch3Config()
		ApplyPreset(&cfg, DifficultyHard)

		assert.Equal(t, 6, cfg.Board.Colors)
		assert.Equal(t, 6, cfg.Levels[5].Colors, "clamped at max")
		assert.Equal(t, 3, cfg.Session.HistoryLimit)
		assert.Equal(t, 5, cfg.Session.HintPenalty)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("normal", func(t *testing.T) {
		cfg := DefaultMatch3Config()
		ApplyPreset(&cfg, DifficultyNormal)
		assert.Equal(t, DefaultMatch3Config(), cfg)
	})
}
