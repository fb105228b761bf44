package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

func TestScoreboardShowsScores(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(storage.ScoreEntry{GameID: match3.CampaignID, Player: "bob", Score: 4242, Moves: 17, Level: 3})
	require.NoError(t, err)

	m := NewScoreboardModel(store, 120, 30)
	view := m.View()

	assert.Contains(t, view, "4242")
	assert.Contains(t, view, "bob")
	assert.Contains(t, view, "Games: 1")
}

func TestScoreboardSwitchesModes(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(storage.ScoreEntry{GameID: match3.EndlessID, Score: 99, Moves: 40})
	require.NoError(t, err)

	m := NewScoreboardModel(store, 120, 30)
	require.Equal(t, match3.CampaignID, m.games[m.gameCursor].ID)
	assert.Contains(t, m.View(), "No scores recorded yet")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)

	assert.Equal(t, match3.EndlessID, m.games[m.gameCursor].ID)
	assert.Len(t, m.scores, 1)
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(ScoreboardModel)

	assert.True(t, m.IsGoingBack())
	assert.False(t, m.IsQuitting())
	assert.NotNil(t, cmd)
}
