package catalog

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the catalog.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is a member of the group. Stars are only ever incremented, by
// competition settlement.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stars int    `json:"stars"`
}

// Game is one entry on the shelf. Bounds are free-form: nothing enforces
// min <= max, matching how the catalog has always been maintained.
type Game struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Extensions string   `json:"extensions,omitempty"`
	MinPlayers int      `json:"min_players"`
	MaxPlayers int      `json:"max_players"`
	MinMinutes int      `json:"min_minutes"`
	MaxMinutes int      `json:"max_minutes"`
	Status     string   `json:"status,omitempty"`
	MeanScore  *float64 `json:"mean_score,omitempty"`
}

// GameFields carries every descriptive field of a game for create/update.
type GameFields struct {
	Name       string `json:"name"`
	Extensions string `json:"extensions"`
	MinPlayers int    `json:"min_players"`
	MaxPlayers int    `json:"max_players"`
	MinMinutes int    `json:"min_minutes"`
	MaxMinutes int    `json:"max_minutes"`
	Status     string `json:"status"`
}
