package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvoss/gameshelf/internal/catalog"
	"github.com/mvoss/gameshelf/internal/competition"
	"github.com/mvoss/gameshelf/internal/database"
	"github.com/mvoss/gameshelf/internal/filtering"
	"github.com/mvoss/gameshelf/internal/metrics"
	"github.com/mvoss/gameshelf/internal/notifier"
	"github.com/mvoss/gameshelf/internal/scoring"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer initializes a new server against an in-memory database.
func setupTestServer(t *testing.T, notif notifier.Notifier) (*Server, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)

	server := NewServer(
		catalog.New(db),
		scoring.New(db),
		filtering.New(db),
		competition.New(db),
		metricsSvc,
		metricsHandler,
		notif,
	)

	teardown := func() {
		if dbTeardown != nil {
			dbTeardown()
		}
	}
	return server, teardown
}

func doJSON(t *testing.T, server *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheckHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	rr := doJSON(t, server, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK!", rr.Body.String())
}

func TestCreateAndListPlayers(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	rr := doJSON(t, server, "POST", "/players", map[string]string{"name": "Alice"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created catalog.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "Alice", created.Name)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.Stars)

	rr = doJSON(t, server, "GET", "/players", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var players []catalog.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, created.ID, players[0].ID)
}

func TestCreatePlayerValidationAndConflict(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	rr := doJSON(t, server, "POST", "/players", map[string]string{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, server, "POST", "/players", map[string]string{"name": "Alice"})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, server, "POST", "/players", map[string]string{"name": "Alice"})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRenamePlayerNotFound(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	rr := doJSON(t, server, "PUT", "/players/nope", map[string]string{"name": "Bob"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeletePlayer(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	rr := doJSON(t, server, "POST", "/players", map[string]string{"name": "Alice"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created catalog.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = doJSON(t, server, "DELETE", "/players/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, server, "DELETE", "/players/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGameCRUD(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	fields := catalog.GameFields{Name: "Catan", MinPlayers: 3, MaxPlayers: 4, MinMinutes: 60, MaxMinutes: 90, Status: "owned"}
	rr := doJSON(t, server, "POST", "/games", fields)
	require.Equal(t, http.StatusCreated, rr.Code)
	var game catalog.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))

	fields.Status = "sold"
	rr = doJSON(t, server, "PUT", "/games/"+game.ID, fields)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, server, "GET", "/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var games []catalog.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "sold", games[0].Status)

	rr = doJSON(t, server, "DELETE", "/games/"+game.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRecordScoreAndRankings(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	rr := doJSON(t, server, "POST", "/players", map[string]string{"name": "Alice"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var player catalog.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))

	rr = doJSON(t, server, "POST", "/games", catalog.GameFields{Name: "Catan"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var game catalog.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))

	rr = doJSON(t, server, "POST", "/scores", map[string]any{"game_id": game.ID, "player_id": player.ID, "value": 8.0})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, server, "GET", "/rankings?order=DESC&limit=5", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var ranks []scoring.GameRank
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ranks))
	require.Len(t, ranks, 1)
	assert.Equal(t, "Catan", ranks[0].GameName)
	require.NotNil(t, ranks[0].MeanScore)
	assert.Equal(t, 8.0, *ranks[0].MeanScore)
}

func TestRecordScoreValidation(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	rr := doJSON(t, server, "POST", "/scores", map[string]any{"game_id": "", "player_id": "p1", "value": 5.0})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRankingsRejectsUnknownOrder(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	rr := doJSON(t, server, "GET", "/rankings?order=SIDEWAYS", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFilterGamesHandler(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	rr := doJSON(t, server, "POST", "/games", catalog.GameFields{Name: "Catan", MinPlayers: 3, MaxPlayers: 4, MaxMinutes: 90})
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = doJSON(t, server, "POST", "/games", catalog.GameFields{Name: "Chess", MinPlayers: 2, MaxPlayers: 2, MaxMinutes: 60})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, server, "GET", "/games/filter?players=2", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var games []filtering.GameSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "Chess", games[0].Name)

	rr = doJSON(t, server, "GET", "/games/filter?players=two", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func createCompetition(t *testing.T, server *Server, memberIDs []string) competition.Competition {
	t.Helper()
	rr := doJSON(t, server, "POST", "/competitions", map[string]any{
		"name":       "Summer League",
		"objective":  10,
		"member_ids": memberIDs,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	var comp competition.Competition
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comp))
	return comp
}

func TestCompetitionLifecycle(t *testing.T) {
	mock := notifier.NewMock()
	server, teardown := setupTestServer(t, mock)
	defer teardown()

	rr := doJSON(t, server, "POST", "/players", map[string]string{"name": "Alice"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var alice catalog.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &alice))

	comp := createCompetition(t, server, []string{alice.ID})

	rr = doJSON(t, server, "PUT", "/competitions/"+comp.ID+"/wins", map[string]any{
		"wins": map[string]int{alice.ID: 4},
	})
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, server, "GET", "/competitions/"+comp.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var progress competition.Progress
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &progress))
	require.Len(t, progress.Members, 1)
	assert.Equal(t, 4, progress.Members[0].Wins)

	rr = doJSON(t, server, "POST", "/competitions/"+comp.ID+"/settle", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var result competition.SettlementResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Len(t, result.Awards, 1)
	assert.Equal(t, 4, result.Awards[0].Stars)

	// Settlement announced exactly once.
	require.Len(t, mock.SettlementCalls, 1)
	assert.Equal(t, comp.ID, mock.SettlementCalls[0].CompetitionID)

	// Stars were paid out to the player.
	rr = doJSON(t, server, "GET", "/players", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var players []catalog.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, 4, players[0].Stars)

	// A second settle must fail and must not notify again.
	rr = doJSON(t, server, "POST", "/competitions/"+comp.ID+"/settle", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Len(t, mock.SettlementCalls, 1)
}

func TestSettleNotificationFailureIsNotFatal(t *testing.T) {
	mock := notifier.NewMock()
	mock.SendSettlementNotificationFunc = func(result *competition.SettlementResult, players []catalog.Player, dryRun bool) error {
		return assert.AnError
	}
	server, teardown := setupTestServer(t, mock)
	defer teardown()

	comp := createCompetition(t, server, nil)

	rr := doJSON(t, server, "POST", "/competitions/"+comp.ID+"/settle", nil)
	assert.Equal(t, http.StatusOK, rr.Code, "settlement succeeds even when the notifier errors")
}

func TestSettleDryRunIsPassedToNotifier(t *testing.T) {
	mock := notifier.NewMock()
	var sawDryRun bool
	mock.SendSettlementNotificationFunc = func(result *competition.SettlementResult, players []catalog.Player, dryRun bool) error {
		sawDryRun = dryRun
		return nil
	}
	server, teardown := setupTestServer(t, mock)
	defer teardown()

	comp := createCompetition(t, server, nil)

	rr := doJSON(t, server, "POST", "/competitions/"+comp.ID+"/settle?dry_run=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, sawDryRun)
}

func TestListCompetitions(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	createCompetition(t, server, nil)

	rr := doJSON(t, server, "GET", "/competitions", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var comps []competition.Progress
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comps))
	assert.Len(t, comps, 1)
}

func TestAnnounceLeaderboard(t *testing.T) {
	mock := notifier.NewMock()
	server, teardown := setupTestServer(t, mock)
	defer teardown()

	rr := doJSON(t, server, "POST", "/players", map[string]string{"name": "Alice"})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, server, "POST", "/leaderboard/announce", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	require.Len(t, mock.LeaderboardCalls, 1)
	require.Len(t, mock.LeaderboardCalls[0], 1)
	assert.Equal(t, "Alice", mock.LeaderboardCalls[0][0].Name)
}

func TestAnnounceLeaderboardDryRunIsPassedToNotifier(t *testing.T) {
	mock := notifier.NewMock()
	var sawDryRun bool
	mock.SendStarsLeaderboardFunc = func(players []catalog.Player, dryRun bool) error {
		sawDryRun = dryRun
		return nil
	}
	server, teardown := setupTestServer(t, mock)
	defer teardown()

	rr := doJSON(t, server, "POST", "/leaderboard/announce?dry_run=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, sawDryRun)
}

func TestAnnounceLeaderboardNotifierFailure(t *testing.T) {
	mock := notifier.NewMock()
	mock.SendStarsLeaderboardFunc = func(players []catalog.Player, dryRun bool) error {
		return assert.AnError
	}
	server, teardown := setupTestServer(t, mock)
	defer teardown()

	rr := doJSON(t, server, "POST", "/leaderboard/announce", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code, "the announcement is the whole request, so a send failure fails it")
}

func TestMetricsEndpoint(t *testing.T) {
	server, teardown := setupTestServer(t, notifier.NewMock())
	defer teardown()

	rr := doJSON(t, server, "GET", "/metrics", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}
