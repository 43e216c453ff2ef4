package filtering

import (
	"database/sql"

	"github.com/charmbracelet/log"
	"github.com/mvoss/gameshelf/internal/errs"
)

// New creates a new FilterStore.
func New(db *sql.DB) FilterStore {
	return &store{
		db: db,
	}
}

// FilterGames returns games matching every active criterion, ordered by
// name. An empty result is a normal outcome.
func (s *store) FilterGames(f Filter) ([]GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT g.name, g.min_players, g.max_players, g.min_minutes, g.max_minutes,
		       COALESCE(ROUND(AVG(s.value), 2), 0) AS mean_score
		FROM games g
		LEFT JOIN scores s ON s.game_id = g.id`

	var args []any
	where := ""
	if f.PlayerCount > 0 {
		where += " WHERE g.min_players <= ? AND g.max_players >= ?"
		args = append(args, f.PlayerCount, f.PlayerCount)
	}
	if f.MaxDuration > 0 {
		if where == "" {
			where += " WHERE"
		} else {
			where += " AND"
		}
		where += " g.max_minutes <= ?"
		args = append(args, f.MaxDuration)
	}
	query += where + " GROUP BY g.id"
	if f.MinAvgScore > 0 {
		query += " HAVING mean_score >= ?"
		args = append(args, f.MinAvgScore)
	}
	query += " ORDER BY g.name COLLATE NOCASE"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to run filter query", "error", err)
		return nil, errs.Store("filter games", err)
	}
	defer rows.Close()

	var summaries []GameSummary
	for rows.Next() {
		var g GameSummary
		var minPlayers, maxPlayers, minMinutes, maxMinutes sql.NullInt64
		if err := rows.Scan(&g.Name, &minPlayers, &maxPlayers, &minMinutes, &maxMinutes, &g.MeanScore); err != nil {
			log.Error("Failed to scan filter row", "error", err)
			continue
		}
		g.MinPlayers = int(minPlayers.Int64)
		g.MaxPlayers = int(maxPlayers.Int64)
		g.MinMinutes = int(minMinutes.Int64)
		g.MaxMinutes = int(maxMinutes.Int64)
		summaries = append(summaries, g)
	}
	return summaries, nil
}
