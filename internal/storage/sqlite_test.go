package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist in nested directory")
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.match3/scores.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".match3", "scores.db"))
	assert.NoError(t, err)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []ScoreEntry{
		{GameID: "match3", Score: 100, Moves: 20, Level: 2},
		{GameID: "match3", Score: 50, Moves: 10, Level: 1},
		{GameID: "match3", Score: 200, Moves: 25, Level: 3, Won: true, Player: "ada"},
		{GameID: "match3_endless", Score: 500, Moves: 80},
	} {
		_, err := store.SaveScore(e)
		require.NoError(t, err)
	}

	scores, err := store.TopScores("match3", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, []int{200, 100, 50}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
	assert.Equal(t, "ada", scores[0].Player)
	assert.True(t, scores[0].Won)
	assert.Equal(t, 25, scores[0].Moves)
	assert.Equal(t, 3, scores[0].Level)
	assert.False(t, scores[0].CreatedAt.IsZero(), "created_at should be parsed")

	for _, s := range scores {
		_, err := uuid.Parse(s.SessionID)
		assert.NoError(t, err, "generated session id should be a uuid")
	}
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(ScoreEntry{GameID: "match3", Score: 90, Moves: 30})
	require.NoError(t, err)
	_, err = store.SaveScore(ScoreEntry{GameID: "match3", Score: 90, Moves: 12})
	require.NoError(t, err)

	scores, err := store.TopScores("match3", 10)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, 12, scores[0].Moves, "fewer moves ranks first on equal score")
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		_, err := store.SaveScore(ScoreEntry{GameID: "test", Score: i * 10})
		require.NoError(t, err)
	}

	scores, err := store.TopScores("test", 5)
	require.NoError(t, err)
	require.Len(t, scores, 5)
	assert.Equal(t, 190, scores[0].Score)

	scores, err = store.TopScores("test", 0)
	require.NoError(t, err)
	assert.Len(t, scores, 10, "non-positive limit defaults to 10")

	all, err := store.AllScores("test")
	require.NoError(t, err)
	assert.Len(t, all, 20)
}

func TestStoreSaveScoreValidation(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(ScoreEntry{Score: 10})
	assert.Error(t, err, "missing game id")

	_, err = store.SaveScore(ScoreEntry{GameID: "match3", SessionID: "not-a-uuid", Score: 10})
	assert.Error(t, err, "malformed session id")
}

func TestStoreSessionScores(t *testing.T) {
	store := openTestStore(t)
	session := NewSessionID()

	_, err := store.SaveScore(ScoreEntry{SessionID: session, GameID: "match3", Score: 10})
	require.NoError(t, err)
	_, err = store.SaveScore(ScoreEntry{SessionID: session, GameID: "match3", Score: 30})
	require.NoError(t, err)
	_, err = store.SaveScore(ScoreEntry{GameID: "match3", Score: 99})
	require.NoError(t, err)

	scores, err := store.SessionScores(session)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, 10, scores[0].Score, "oldest first")
	assert.Equal(t, 30, scores[1].Score)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("match3")
	require.NoError(t, err)
	assert.Equal(t, 0, high, "no scores yet")

	for _, score := range []int{30, 120, 75} {
		_, err := store.SaveScore(ScoreEntry{GameID: "match3", Score: score})
		require.NoError(t, err)
	}

	high, err = store.HighScore("match3")
	require.NoError(t, err)
	assert.Equal(t, 120, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(ScoreEntry{GameID: "match3", Score: 10})
	require.NoError(t, err)
	_, err = store.SaveScore(ScoreEntry{GameID: "match3_endless", Score: 20})
	require.NoError(t, err)

	require.NoError(t, store.ClearScores("match3"))

	scores, err := store.AllScores("match3")
	require.NoError(t, err)
	assert.Empty(t, scores)

	other, err := store.AllScores("match3_endless")
	require.NoError(t, err)
	assert.Len(t, other, 1, "other games untouched")
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("match3")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	for _, e := range []ScoreEntry{
		{GameID: "match3", Score: 100, Moves: 10, Won: true},
		{GameID: "match3", Score: 50, Moves: 30},
		{GameID: "match3_endless", Score: 700, Moves: 90},
	} {
		_, err := store.SaveScore(e)
		require.NoError(t, err)
	}

	stats, err := store.GetGameStats("match3")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 100, stats.HighScore)
	assert.InDelta(t, 75.0, stats.AvgScore, 0.001)
	assert.InDelta(t, 20.0, stats.AvgMoves, 0.001)
	assert.Equal(t, int64(150), stats.TotalScore)
	assert.False(t, stats.LastPlayed.IsZero())

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 700, all["match3_endless"].HighScore)
}
