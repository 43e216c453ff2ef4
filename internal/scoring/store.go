package scoring

import (
	"database/sql"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mvoss/gameshelf/internal/errs"
)

// New creates a new ScoreStore.
func New(db *sql.DB) ScoreStore {
	return &store{
		db: db,
	}
}

// RecordScore inserts one observation. There is no upsert: scoring the same
// game twice simply accumulates rows.
func (s *store) RecordScore(gameID, playerID string, value float64) (Score, error) {
	if gameID == "" || playerID == "" {
		return Score{}, errs.Validationf("game and player are both required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sc := Score{ID: uuid.NewString(), GameID: gameID, PlayerID: playerID, Value: value}
	_, err := s.db.Exec(
		"INSERT INTO scores (id, game_id, player_id, value) VALUES (?, ?, ?, ?)",
		sc.ID, sc.GameID, sc.PlayerID, sc.Value,
	)
	if err != nil {
		log.Error("Failed to insert score", "error", err, "gameID", gameID, "playerID", playerID)
		return Score{}, errs.Store("record score", err)
	}
	log.Info("Recorded score", "gameID", gameID, "playerID", playerID, "value", value)
	return sc, nil
}

// RankGames returns up to limit games ordered by mean score.
//
// Without a player filter every game appears; games with no scores carry a
// nil mean and sort last in both directions (pinned here, since SQLite's
// default NULL placement flips with the direction). With a player filter
// only games that player has scored are ranked. Ties break on name.
func (s *store) RankGames(order Order, limit int, playerID string) ([]GameRank, error) {
	if order != Ascending && order != Descending {
		return nil, errs.Validationf("order must be ASC or DESC")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		rows *sql.Rows
		err  error
	)
	if playerID == "" {
		query := `
			SELECT g.name, AVG(s.value) AS mean_score
			FROM games g
			LEFT JOIN scores s ON s.game_id = g.id
			GROUP BY g.id
			ORDER BY mean_score IS NULL, mean_score ` + string(order) + `, g.name COLLATE NOCASE
			LIMIT ?`
		rows, err = s.db.Query(query, limit)
	} else {
		query := `
			SELECT g.name, AVG(s.value) AS mean_score
			FROM games g
			JOIN scores s ON s.game_id = g.id
			WHERE s.player_id = ?
			GROUP BY g.id
			ORDER BY mean_score ` + string(order) + `, g.name COLLATE NOCASE
			LIMIT ?`
		rows, err = s.db.Query(query, playerID, limit)
	}
	if err != nil {
		log.Error("Failed to query game ranking", "error", err, "order", order)
		return nil, errs.Store("rank games", err)
	}
	defer rows.Close()

	var ranks []GameRank
	for rows.Next() {
		var r GameRank
		var mean sql.NullFloat64
		if err := rows.Scan(&r.GameName, &mean); err != nil {
			log.Error("Failed to scan ranking row", "error", err)
			continue
		}
		if mean.Valid {
			r.MeanScore = &mean.Float64
		}
		ranks = append(ranks, r)
	}
	return ranks, nil
}
