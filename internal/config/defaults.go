package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration. It mirrors
// defaults/match3.yaml and is used when that cannot be parsed.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Rows:   8,
			Cols:   8,
			Colors: 5,
		},
		Scoring: ScoringConfig{
			Three: 3,
			Four:  5,
			Five:  9,
			Six:   15,
		},
		Cascade: CascadeConfig{
			MaxPasses: 100,
		},
		Session: SessionConfig{
			HistoryLimit: 20,
			HintPenalty:  1,
		},
		Levels: []LevelConfig{
			{Name: "First Steps", TargetScore: 60, MoveLimit: 20, Colors: 4},
			{Name: "Warming Up", TargetScore: 100, MoveLimit: 20, Colors: 4},
			{Name: "Five Colors", TargetScore: 120, MoveLimit: 25},
			{Name: "Steady Hands", TargetScore: 160, MoveLimit: 25},
			{Name: "Chain Builder", TargetScore: 200, MoveLimit: 25},
			{Name: "Rainbow", TargetScore: 150, MoveLimit: 30, Colors: 6},
			{Name: "Tight Budget", TargetScore: 180, MoveLimit: 20},
			{Name: "Marathon", TargetScore: 400, MoveLimit: 45, Colors: 6},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `match3 config`.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
