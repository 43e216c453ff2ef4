package competition

import (
	"database/sql"
	"sync"
)

// store handles all database operations for competitions.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Competition is an open competition. There is no finished flag: a settled
// competition no longer exists.
type Competition struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Objective int    `json:"objective"`
}

// Progress is a competition's roster with current win counts, as consumed
// by whatever renders the progress bars.
type Progress struct {
	CompetitionID string           `json:"competition_id"`
	Name          string           `json:"name"`
	Objective     int              `json:"objective"`
	Members       []MemberProgress `json:"members"`
}

// MemberProgress is one member's standing. Wins can exceed the objective;
// nothing caps it at storage level.
type MemberProgress struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
}

// SettlementResult reports the payout of a settled competition.
type SettlementResult struct {
	CompetitionID   string      `json:"competition_id"`
	CompetitionName string      `json:"competition_name"`
	Awards          []StarAward `json:"awards"`
}

// StarAward is the number of stars one member earned: exactly one per
// recorded win, uncapped and not normalized by the objective.
type StarAward struct {
	PlayerID string `json:"player_id"`
	Stars    int    `json:"stars"`
}
