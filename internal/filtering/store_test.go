package filtering_test

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/mvoss/gameshelf/internal/database"
	"github.com/mvoss/gameshelf/internal/filtering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (filtering.FilterStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return filtering.New(db), db, dbTeardown
}

func addGame(t *testing.T, db *sql.DB, name string, minP, maxP, minM, maxM int) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.Exec(
		"INSERT INTO games (id, name, min_players, max_players, min_minutes, max_minutes) VALUES (?, ?, ?, ?, ?, ?)",
		id, name, minP, maxP, minM, maxM,
	)
	require.NoError(t, err)
	return id
}

func addScore(t *testing.T, db *sql.DB, gameID string, value float64) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO scores (id, game_id, player_id, value) VALUES (?, ?, 'p1', ?)",
		uuid.NewString(), gameID, value,
	)
	require.NoError(t, err)
}

func TestFilterGamesNoCriteriaReturnsEverything(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	addGame(t, db, "Barrage", 1, 4, 60, 120)
	addGame(t, db, "azul", 2, 4, 30, 45)

	games, err := store.FilterGames(filtering.Filter{})
	require.NoError(t, err)
	require.Len(t, games, 2)

	// Ordered by name, case-insensitive.
	assert.Equal(t, "azul", games[0].Name)
	assert.Equal(t, "Barrage", games[1].Name)
}

func TestFilterGamesByPlayerCount(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	addGame(t, db, "Duo", 2, 2, 10, 20)
	addGame(t, db, "Party", 4, 10, 30, 60)

	games, err := store.FilterGames(filtering.Filter{PlayerCount: 4})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Party", games[0].Name)
}

func TestFilterGamesByMaxDuration(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	addGame(t, db, "Quick", 2, 4, 15, 30)
	addGame(t, db, "Epic", 2, 4, 120, 240)

	games, err := store.FilterGames(filtering.Filter{MaxDuration: 30})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Quick", games[0].Name)
}

func TestFilterGamesCombinedIsIntersection(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	addGame(t, db, "QuickDuo", 2, 2, 10, 20)
	addGame(t, db, "QuickParty", 3, 6, 15, 30)
	addGame(t, db, "LongParty", 3, 6, 90, 180)

	games, err := store.FilterGames(filtering.Filter{PlayerCount: 4, MaxDuration: 30})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "QuickParty", games[0].Name)
}

func TestFilterGamesByMinAvgScore(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	good := addGame(t, db, "Good", 2, 4, 30, 60)
	bad := addGame(t, db, "Bad", 2, 4, 30, 60)
	addGame(t, db, "Unscored", 2, 4, 30, 60)

	addScore(t, db, good, 8)
	addScore(t, db, good, 9)
	addScore(t, db, bad, 3)

	games, err := store.FilterGames(filtering.Filter{MinAvgScore: 7})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Good", games[0].Name)
	assert.InDelta(t, 8.5, games[0].MeanScore, 0.001)
}

func TestFilterGamesUnscoredMeanCoalescesToZero(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	addGame(t, db, "Unscored", 2, 4, 30, 60)

	// With no score filter the game shows up with a mean of 0.
	games, err := store.FilterGames(filtering.Filter{})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, 0.0, games[0].MeanScore)

	// Any positive threshold excludes it.
	games, err = store.FilterGames(filtering.Filter{MinAvgScore: 0.5})
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestFilterGamesEmptyResultIsNotAnError(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	addGame(t, db, "Duo", 2, 2, 10, 20)

	games, err := store.FilterGames(filtering.Filter{PlayerCount: 9})
	require.NoError(t, err)
	assert.Empty(t, games)
}
