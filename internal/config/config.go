// Package config provides YAML-based configuration loading and difficulty
// presets for the match-3 game.
package config

import (
	"errors"
	"fmt"
)

// Board limits accepted by Validate.
const (
	MinBoardSize = 3
	MaxBoardSize = 16
	MinColors    = 3
	MaxColors    = 6
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Cascade CascadeConfig `yaml:"cascade"`
	Session SessionConfig `yaml:"session"`
	Levels  []LevelConfig `yaml:"levels"`
}

// BoardConfig defines board dimensions and palette size.
type BoardConfig struct {
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
	Colors int `yaml:"colors"`
}

// ScoringConfig defines points per run-length tier.
type ScoringConfig struct {
	Three int `yaml:"three"`
	Four  int `yaml:"four"`
	Five  int `yaml:"five"`
	Six   int `yaml:"six_plus"`
}

// CascadeConfig bounds cascade resolution.
type CascadeConfig struct {
	MaxPasses int `yaml:"max_passes"`
}

// SessionConfig controls undo history and hints.
type SessionConfig struct {
	HistoryLimit int `yaml:"history_limit"` // 0 disables undo
	HintPenalty  int `yaml:"hint_penalty"`
}

// LevelConfig defines one campaign level.
type LevelConfig struct {
	Name        string `yaml:"name"`
	TargetScore int    `yaml:"target_score"`
	MoveLimit   int    `yaml:"move_limit"`
	Colors      int    `yaml:"colors"` // 0 means use board.colors
}

// LevelColors returns the palette size for a level, falling back to the board.
func (c Match3Config) LevelColors(l LevelConfig) int {
	if l.Colors > 0 {
		return l.Colors
	}
	return c.Board.Colors
}

// Validate checks that the configuration describes a playable game.
func (c Match3Config) Validate() error {
	if c.Board.Rows < MinBoardSize || c.Board.Rows > MaxBoardSize {
		return fmt.Errorf("%w: board.rows %d not in [%d, %d]", ErrInvalid, c.Board.Rows, MinBoardSize, MaxBoardSize)
	}
	if c.Board.Cols < MinBoardSize || c.Board.Cols > MaxBoardSize {
		return fmt.Errorf("%w: board.cols %d not in [%d, %d]", ErrInvalid, c.Board.Cols, MinBoardSize, MaxBoardSize)
	}
	if c.Board.Colors < MinColors || c.Board.Colors > MaxColors {
		return fmt.Errorf("%w: board.colors %d not in [%d, %d]", ErrInvalid, c.Board.Colors, MinColors, MaxColors)
	}
	if c.Scoring.Three < 0 || c.Scoring.Four < 0 || c.Scoring.Five < 0 || c.Scoring.Six < 0 {
		return fmt.Errorf("%w: scoring tiers must not be negative", ErrInvalid)
	}
	if c.Cascade.MaxPasses < 1 {
		return fmt.Errorf("%w: cascade.max_passes must be at least 1", ErrInvalid)
	}
	if c.Session.HistoryLimit < 0 || c.Session.HintPenalty < 0 {
		return fmt.Errorf("%w: session values must not be negative", ErrInvalid)
	}
	for i, l := range c.Levels {
		if l.TargetScore <= 0 {
			return fmt.Errorf("%w: level %d target_score must be positive", ErrInvalid, i+1)
		}
		if l.MoveLimit <= 0 {
			return fmt.Errorf("%w: level %d move_limit must be positive", ErrInvalid, i+1)
		}
		if l.Colors != 0 && (l.Colors < MinColors || l.Colors > MaxColors) {
			return fmt.Errorf("%w: level %d colors %d not in [%d, %d]", ErrInvalid, i+1, l.Colors, MinColors, MaxColors)
		}
	}
	return nil
}
