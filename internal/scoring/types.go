package scoring

import (
	"database/sql"
	"sync"
)

// store handles all database operations for scores.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Order is the ranking direction.
type Order string

const (
	Ascending  Order = "ASC"
	Descending Order = "DESC"
)

// DefaultLimit is the number of rows a ranking returns when the caller does
// not ask for a specific cut-off.
const DefaultLimit = 10

// Score is one immutable observation. Repeated submissions for the same
// (game, player) pair all count towards the mean.
type Score struct {
	ID       string  `json:"id"`
	GameID   string  `json:"game_id"`
	PlayerID string  `json:"player_id"`
	Value    float64 `json:"value"`
}

// GameRank is one row of a ranking. MeanScore is nil for games that have
// never been scored.
type GameRank struct {
	GameName  string   `json:"game_name"`
	MeanScore *float64 `json:"mean_score"`
}
