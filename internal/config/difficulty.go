package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts a loaded config for a difficulty preset.
// Easy removes one color and doubles undo depth with free hints; hard adds a
// color, limits undo to three steps and makes hints expensive. Normal leaves
// the config as loaded.
func ApplyPreset(cfg *Match3Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Colors = clampColors(cfg.Board.Colors - 1)
		for i := range cfg.Levels {
			if cfg.Levels[i].Colors > 0 {
				cfg.Levels[i].Colors = clampColors(cfg.Levels[i].Colors - 1)
			}
		}
		cfg.Session.HistoryLimit *= 2
		cfg.Session.HintPenalty = 0
	case DifficultyHard:
		cfg.Board.Colors = clampColors(cfg.Board.Colors + 1)
		for i := range cfg.Levels {
			if cfg.Levels[i].Colors > 0 {
				cfg.Levels[i].Colors = clampColors(cfg.Levels[i].Colors + 1)
			}
		}
		if cfg.Session.HistoryLimit > 3 {
			cfg.Session.HistoryLimit = 3
		}
		cfg.Session.HintPenalty *= 5
	}
}

func clampColors(n int) int {
	if n < MinColors {
		return MinColors
	}
	if n > MaxColors {
		return MaxColors
	}
	return n
}
