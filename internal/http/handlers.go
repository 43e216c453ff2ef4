package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mvoss/gameshelf/internal/catalog"
	"github.com/mvoss/gameshelf/internal/errs"
	"github.com/mvoss/gameshelf/internal/filtering"
	"github.com/mvoss/gameshelf/internal/scoring"
)

// respondJSON writes v as a JSON response body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// respondError maps store errors onto HTTP status codes.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "error", err)
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

// decodeBody decodes a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errs.Validationf("invalid JSON body: %v", err)
	}
	return nil
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loggerFromContext(r).Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Catalog.ListPlayers()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) CreatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		player, err := s.Catalog.CreatePlayer(body.Name)
		if err != nil {
			respondError(w, err)
			return
		}
		log.Info("Created player", "id", player.ID, "name", player.Name)
		respondJSON(w, http.StatusCreated, player)
	}
}

func (s *Server) RenamePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		if err := s.Catalog.RenamePlayer(r.PathValue("id"), body.Name); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Catalog.DeletePlayer(r.PathValue("id")); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// AnnounceLeaderboardHandler posts the current stars standings through the
// notifier. Unlike the settlement side effect, the notification is the whole
// point here, so a send failure fails the request.
func (s *Server) AnnounceLeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)

		players, err := s.Catalog.ListPlayers()
		if err != nil {
			respondError(w, err)
			return
		}
		if err := s.Notifier.SendStarsLeaderboard(players, isDryRun); err != nil {
			log.Error("Failed to send stars leaderboard", "error", err)
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Leaderboard announced.")
	}
}

func (s *Server) ListGamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := s.Catalog.ListGames()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, games)
	}
}

func (s *Server) CreateGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields catalog.GameFields
		if err := decodeBody(r, &fields); err != nil {
			respondError(w, err)
			return
		}
		game, err := s.Catalog.CreateGame(fields)
		if err != nil {
			respondError(w, err)
			return
		}
		log.Info("Created game", "id", game.ID, "name", game.Name)
		respondJSON(w, http.StatusCreated, game)
	}
}

func (s *Server) UpdateGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields catalog.GameFields
		if err := decodeBody(r, &fields); err != nil {
			respondError(w, err)
			return
		}
		if err := s.Catalog.UpdateGame(r.PathValue("id"), fields); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) DeleteGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Catalog.DeleteGame(r.PathValue("id")); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) FilterGamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f filtering.Filter
		q := r.URL.Query()
		if v := q.Get("players"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				respondError(w, errs.Validationf("invalid 'players' parameter: %q", v))
				return
			}
			f.PlayerCount = n
		}
		if v := q.Get("max_duration"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				respondError(w, errs.Validationf("invalid 'max_duration' parameter: %q", v))
				return
			}
			f.MaxDuration = n
		}
		if v := q.Get("min_avg_score"); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				respondError(w, errs.Validationf("invalid 'min_avg_score' parameter: %q", v))
				return
			}
			f.MinAvgScore = n
		}

		games, err := s.Filters.FilterGames(f)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, games)
	}
}

func (s *Server) RecordScoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			GameID   string  `json:"game_id"`
			PlayerID string  `json:"player_id"`
			Value    float64 `json:"value"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		score, err := s.Scores.RecordScore(body.GameID, body.PlayerID, body.Value)
		if err != nil {
			respondError(w, err)
			return
		}
		s.Metrics.IncScoresRecorded()
		respondJSON(w, http.StatusCreated, score)
	}
}

func (s *Server) RankingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		order := scoring.Descending
		if v := q.Get("order"); v != "" {
			order = scoring.Order(v)
		}
		limit := 0
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				respondError(w, errs.Validationf("invalid 'limit' parameter: %q", v))
				return
			}
			limit = n
		}

		ranks, err := s.Scores.RankGames(order, limit, q.Get("player_id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, ranks)
	}
}

func (s *Server) ListCompetitionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comps, err := s.Competitions.ListOpen()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, comps)
	}
}

func (s *Server) CreateCompetitionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name      string   `json:"name"`
			Objective int      `json:"objective"`
			MemberIDs []string `json:"member_ids"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		comp, err := s.Competitions.Create(body.Name, body.Objective, body.MemberIDs)
		if err != nil {
			respondError(w, err)
			return
		}
		s.Metrics.IncCompetitionsCreated()
		log.Info("Created competition", "id", comp.ID, "name", comp.Name, "objective", comp.Objective, "members", len(body.MemberIDs))
		respondJSON(w, http.StatusCreated, comp)
	}
}

func (s *Server) CompetitionProgressHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		progress, err := s.Competitions.GetProgress(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, progress)
	}
}

func (s *Server) RecordWinsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Wins map[string]int `json:"wins"`
		}
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
		if err := s.Competitions.RecordWins(r.PathValue("id"), body.Wins); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) SettleCompetitionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)

		result, err := s.Competitions.Settle(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}

		totalStars := 0
		for _, a := range result.Awards {
			totalStars += a.Stars
		}
		s.Metrics.IncCompetitionsSettled()
		s.Metrics.AddStarsAwarded(totalStars)
		log.Info("Settled competition", "id", result.CompetitionID, "name", result.CompetitionName, "stars_awarded", totalStars)

		// Notification failures are logged but never fail the settlement:
		// the stars are already paid out.
		players, err := s.Catalog.ListPlayers()
		if err != nil {
			log.Error("Failed to load players for settlement notification", "error", err)
			players = nil
		}
		if err := s.Notifier.SendSettlementNotification(result, players, isDryRun); err != nil {
			log.Error("Failed to send settlement notification", "competitionID", result.CompetitionID, "error", err)
		}

		respondJSON(w, http.StatusOK, result)
	}
}
