package competition

import (
	"database/sql"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mvoss/gameshelf/internal/errs"
)

// New creates a new CompetitionStore.
func New(db *sql.DB) CompetitionStore {
	return &store{
		db: db,
	}
}

// Create opens a competition with the given member set, every member
// starting at zero wins. The objective is stored as given; nothing checks
// that it is positive.
func (s *store) Create(name string, objective int, memberIDs []string) (Competition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Competition{}, errs.Validationf("competition name is empty")
	}
	if objective == 0 {
		return Competition{}, errs.Validationf("objective is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return Competition{}, errs.Store("begin create competition", err)
	}

	c := Competition{ID: uuid.NewString(), Name: name, Objective: objective}
	if _, err := tx.Exec("INSERT INTO competitions (id, name, objective) VALUES (?, ?, ?)", c.ID, c.Name, c.Objective); err != nil {
		tx.Rollback()
		log.Error("Failed to insert competition", "error", err, "name", name)
		return Competition{}, errs.Store("create competition", err)
	}

	for _, playerID := range memberIDs {
		if _, err := tx.Exec(
			"INSERT INTO competition_members (competition_id, player_id, wins) VALUES (?, ?, 0)",
			c.ID, playerID,
		); err != nil {
			tx.Rollback()
			log.Error("Failed to insert competition member", "error", err, "competitionID", c.ID, "playerID", playerID)
			return Competition{}, errs.Store("add competition member", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Competition{}, errs.Store("commit create competition", err)
	}
	log.Info("Created competition", "competitionID", c.ID, "name", name, "objective", objective, "members", len(memberIDs))
	return c, nil
}

// ListOpen returns every open competition with its roster.
func (s *store) ListOpen() ([]Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, objective FROM competitions ORDER BY name COLLATE NOCASE")
	if err != nil {
		log.Error("Failed to query competitions", "error", err)
		return nil, errs.Store("list competitions", err)
	}
	defer rows.Close()

	var all []Progress
	for rows.Next() {
		var p Progress
		if err := rows.Scan(&p.CompetitionID, &p.Name, &p.Objective); err != nil {
			log.Error("Failed to scan competition row", "error", err)
			continue
		}
		all = append(all, p)
	}
	if err := rows.Close(); err != nil {
		return nil, errs.Store("list competitions", err)
	}

	for i := range all {
		members, err := s.roster(all[i].CompetitionID)
		if err != nil {
			return nil, err
		}
		all[i].Members = members
	}
	return all, nil
}

// GetProgress returns one competition's roster and objective.
func (s *store) GetProgress(id string) (*Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Progress
	err := s.db.QueryRow("SELECT id, name, objective FROM competitions WHERE id = ?", id).
		Scan(&p.CompetitionID, &p.Name, &p.Objective)
	if err == sql.ErrNoRows {
		return nil, errs.NotFoundf("competition %q", id)
	}
	if err != nil {
		log.Error("Failed to query competition", "error", err, "competitionID", id)
		return nil, errs.Store("get competition", err)
	}

	members, err := s.roster(id)
	if err != nil {
		return nil, err
	}
	p.Members = members
	return &p, nil
}

// roster lists a competition's members with current win counts. Members
// whose player row has been deleted are omitted, as the join drops them.
func (s *store) roster(competitionID string) ([]MemberProgress, error) {
	rows, err := s.db.Query(`
		SELECT cm.player_id, p.name, cm.wins
		FROM competition_members cm
		JOIN players p ON p.id = cm.player_id
		WHERE cm.competition_id = ?
		ORDER BY p.name COLLATE NOCASE
	`, competitionID)
	if err != nil {
		log.Error("Failed to query competition roster", "error", err, "competitionID", competitionID)
		return nil, errs.Store("get competition roster", err)
	}
	defer rows.Close()

	var members []MemberProgress
	for rows.Next() {
		var m MemberProgress
		if err := rows.Scan(&m.PlayerID, &m.Name, &m.Wins); err != nil {
			log.Error("Failed to scan roster row", "error", err)
			continue
		}
		members = append(members, m)
	}
	return members, nil
}

// RecordWins replaces each listed member's win counter. It is a full
// replace, not an increment; negative values are floored to 0 and values
// above the objective are stored as given. Concurrent calls race with
// last-write-wins per player, which is acceptable here.
func (s *store) RecordWins(id string, winsByPlayer map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	if err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM competitions WHERE id = ?)", id).Scan(&exists); err != nil {
		log.Error("Failed to check competition", "error", err, "competitionID", id)
		return errs.Store("check competition", err)
	}
	if !exists {
		return errs.NotFoundf("competition %q", id)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errs.Store("begin record wins", err)
	}
	for playerID, wins := range winsByPlayer {
		if wins < 0 {
			wins = 0
		}
		if _, err := tx.Exec(
			"UPDATE competition_members SET wins = ? WHERE competition_id = ? AND player_id = ?",
			wins, id, playerID,
		); err != nil {
			tx.Rollback()
			log.Error("Failed to update wins", "error", err, "competitionID", id, "playerID", playerID)
			return errs.Store("record wins", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return errs.Store("commit record wins", err)
	}
	return nil
}

// Settle pays out one star per recorded win and removes the competition.
//
// The read-increment-delete sequence runs in a single transaction so a
// concurrent RecordWins cannot slip between the read and the deletes, and
// a second Settle of the same id fails with not-found instead of paying
// twice.
func (s *store) Settle(id string) (*SettlementResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, errs.Store("begin settlement", err)
	}

	result := &SettlementResult{CompetitionID: id}
	err = tx.QueryRow("SELECT name FROM competitions WHERE id = ?", id).Scan(&result.CompetitionName)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return nil, errs.NotFoundf("competition %q", id)
	}
	if err != nil {
		tx.Rollback()
		return nil, errs.Store("read competition", err)
	}

	rows, err := tx.Query("SELECT player_id, wins FROM competition_members WHERE competition_id = ?", id)
	if err != nil {
		tx.Rollback()
		return nil, errs.Store("read memberships", err)
	}
	for rows.Next() {
		var a StarAward
		if err := rows.Scan(&a.PlayerID, &a.Stars); err != nil {
			rows.Close()
			tx.Rollback()
			return nil, errs.Store("scan membership", err)
		}
		result.Awards = append(result.Awards, a)
	}
	if err := rows.Close(); err != nil {
		tx.Rollback()
		return nil, errs.Store("read memberships", err)
	}

	for _, a := range result.Awards {
		// One star per win. A deleted player simply matches no row.
		if _, err := tx.Exec("UPDATE players SET stars = stars + ? WHERE id = ?", a.Stars, a.PlayerID); err != nil {
			tx.Rollback()
			log.Error("Failed to award stars", "error", err, "competitionID", id, "playerID", a.PlayerID)
			return nil, errs.Store("award stars", err)
		}
	}

	if _, err := tx.Exec("DELETE FROM competition_members WHERE competition_id = ?", id); err != nil {
		tx.Rollback()
		return nil, errs.Store("delete memberships", err)
	}
	if _, err := tx.Exec("DELETE FROM competitions WHERE id = ?", id); err != nil {
		tx.Rollback()
		return nil, errs.Store("delete competition", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, errs.Store("commit settlement", err)
	}
	log.Info("Settled competition", "competitionID", id, "name", result.CompetitionName, "members", len(result.Awards))
	return result, nil
}
