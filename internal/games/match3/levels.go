package match3

import (
	"sync"

	"github.com/vovakirdan/tui-match3/internal/config"
)

// Level is one campaign stage: reach TargetScore within MoveLimit swaps.
type Level struct {
	ID          int // 1-based
	Name        string
	TargetScore int
	MoveLimit   int
	Colors      int
}

// settings hold the configuration used by registry factories. They are set
// once by the CLI before any game is created.
var settings = struct {
	sync.RWMutex
	cfg        config.Match3Config
	startLevel int
}{cfg: config.DefaultMatch3Config()}

// SetConfig replaces the configuration used by newly created games.
func SetConfig(cfg config.Match3Config) {
	settings.Lock()
	defer settings.Unlock()
	settings.cfg = cfg
}

// Config returns the configuration used by newly created games.
func Config() config.Match3Config {
	settings.RLock()
	defer settings.RUnlock()
	return settings.cfg
}

// SetStartLevel sets the campaign level (1-based) for newly created games.
// 0 means start from the first level.
func SetStartLevel(level int) {
	settings.Lock()
	defer settings.Unlock()
	settings.startLevel = level
}

// StartLevel returns the currently selected start level.
func StartLevel() int {
	settings.RLock()
	defer settings.RUnlock()
	return settings.startLevel
}

// LevelsFromConfig builds the campaign from a config's level list.
func LevelsFromConfig(cfg config.Match3Config) []Level {
	levels := make([]Level, len(cfg.Levels))
	for i, l := range cfg.Levels {
		levels[i] = Level{
			ID:          i + 1,
			Name:        l.Name,
			TargetScore: l.TargetScore,
			MoveLimit:   l.MoveLimit,
			Colors:      cfg.LevelColors(l),
		}
	}
	return levels
}

// Levels returns the campaign for the current configuration.
func Levels() []Level {
	return LevelsFromConfig(Config())
}

