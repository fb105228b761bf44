package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

func setupSim(t *testing.T) {
	t.Helper()
	gameCfg = config.DefaultMatch3Config()
	logger = log.New(io.Discard)
	flagLevel = 0
	flagSimMoves = 30
}

func TestSimulateCampaignEnds(t *testing.T) {
	setupSim(t)

	res := simulateGame(match3.ModeCampaign, 3)

	if res.Final.State != match3.StateGameOver && res.Final.State != match3.StateWin {
		t.Errorf("final state = %v, expected the campaign to end", res.Final.State)
	}
	if res.Level < 1 {
		t.Errorf("Level = %d", res.Level)
	}
	if res.Moves == 0 {
		t.Error("autoplay made no moves")
	}
	if res.Capped != 0 {
		t.Errorf("cascade capped %d times", res.Capped)
	}
}

func TestSimulateEndlessMoveBudget(t *testing.T) {
	setupSim(t)

	res := simulateGame(match3.ModeEndless, 11)

	if res.Moves != flagSimMoves {
		t.Errorf("Moves = %d, expected %d", res.Moves, flagSimMoves)
	}
	if res.Score < 3*flagSimMoves {
		t.Errorf("Score = %d, every swap should score at least 3", res.Score)
	}
	if res.Board == "" {
		t.Error("final board should be rendered")
	}
}

func TestSimulateDeterministic(t *testing.T) {
	setupSim(t)

	a := simulateGame(match3.ModeEndless, 99)
	b := simulateGame(match3.ModeEndless, 99)

	if a.Score != b.Score || a.Board != b.Board {
		t.Errorf("same seed diverged: %d vs %d", a.Score, b.Score)
	}
}
