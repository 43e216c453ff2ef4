package filtering

import (
	"database/sql"
	"sync"
)

// store handles the filter query.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Filter combines up to three independent criteria. A zero value disables
// the corresponding criterion.
type Filter struct {
	PlayerCount int     `json:"player_count"`
	MaxDuration int     `json:"max_duration"`
	MinAvgScore float64 `json:"min_avg_score"`
}

// GameSummary is one matching game. MeanScore is coalesced to 0 for games
// without scores, which is also why such games never pass a positive
// MinAvgScore threshold.
type GameSummary struct {
	Name       string  `json:"name"`
	MinPlayers int     `json:"min_players"`
	MaxPlayers int     `json:"max_players"`
	MinMinutes int     `json:"min_minutes"`
	MaxMinutes int     `json:"max_minutes"`
	MeanScore  float64 `json:"mean_score"`
}
