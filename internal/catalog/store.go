package catalog

import (
	"database/sql"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mvoss/gameshelf/internal/errs"
)

// New creates a new CatalogStore.
func New(db *sql.DB) CatalogStore {
	return &store{
		db: db,
	}
}

func (s *store) ListPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, stars FROM players ORDER BY name COLLATE NOCASE")
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, errs.Store("list players", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		var name sql.NullString
		if err := rows.Scan(&p.ID, &name, &p.Stars); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		p.Name = name.String
		players = append(players, p)
	}
	return players, nil
}

func (s *store) CreatePlayer(name string) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, errs.Validationf("player name is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := Player{ID: uuid.NewString(), Name: name}
	_, err := s.db.Exec("INSERT INTO players (id, name) VALUES (?, ?)", p.ID, p.Name)
	if err != nil {
		if errs.IsUniqueViolation(err) {
			return Player{}, errs.Conflictf("player %q already exists", name)
		}
		log.Error("Failed to insert player", "error", err, "name", name)
		return Player{}, errs.Store("create player", err)
	}
	log.Info("Added new player", "playerID", p.ID, "name", name)
	return p, nil
}

func (s *store) RenamePlayer(id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return errs.Validationf("player name is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("UPDATE players SET name = ? WHERE id = ?", newName, id)
	if err != nil {
		if errs.IsUniqueViolation(err) {
			return errs.Conflictf("player %q already exists", newName)
		}
		log.Error("Failed to rename player", "error", err, "playerID", id)
		return errs.Store("rename player", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFoundf("player %q", id)
	}
	return nil
}

// DeletePlayer removes the player row only. Scores and competition
// memberships referencing the player are left behind; reads tolerate them.
func (s *store) DeletePlayer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM players WHERE id = ?", id)
	if err != nil {
		log.Error("Failed to delete player", "error", err, "playerID", id)
		return errs.Store("delete player", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFoundf("player %q", id)
	}
	log.Info("Deleted player", "playerID", id)
	return nil
}

func (s *store) ListGames() ([]Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT g.id, g.name, g.extensions, g.min_players, g.max_players, g.min_minutes, g.max_minutes, g.status,
		       ROUND(AVG(s.value), 2) AS mean_score
		FROM games g
		LEFT JOIN scores s ON s.game_id = g.id
		GROUP BY g.id
		ORDER BY g.name COLLATE NOCASE
	`)
	if err != nil {
		log.Error("Failed to query games", "error", err)
		return nil, errs.Store("list games", err)
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			log.Error("Failed to scan game row", "error", err)
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

// scanGame handles the nullable descriptive columns in one place.
func scanGame(scanner interface{ Scan(...any) error }) (Game, error) {
	var g Game
	var extensions, status sql.NullString
	var minPlayers, maxPlayers, minMinutes, maxMinutes sql.NullInt64
	var mean sql.NullFloat64

	err := scanner.Scan(&g.ID, &g.Name, &extensions, &minPlayers, &maxPlayers, &minMinutes, &maxMinutes, &status, &mean)
	if err != nil {
		return Game{}, err
	}

	g.Extensions = extensions.String
	g.Status = status.String
	g.MinPlayers = int(minPlayers.Int64)
	g.MaxPlayers = int(maxPlayers.Int64)
	g.MinMinutes = int(minMinutes.Int64)
	g.MaxMinutes = int(maxMinutes.Int64)
	if mean.Valid {
		g.MeanScore = &mean.Float64
	}
	return g, nil
}

// CreateGame adds a game. Unlike players, game names are not unique: owning
// two copies is a fact of life, not an error.
func (s *store) CreateGame(fields GameFields) (Game, error) {
	fields.Name = strings.TrimSpace(fields.Name)
	if fields.Name == "" {
		return Game{}, errs.Validationf("game name is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g := Game{
		ID:         uuid.NewString(),
		Name:       fields.Name,
		Extensions: fields.Extensions,
		MinPlayers: fields.MinPlayers,
		MaxPlayers: fields.MaxPlayers,
		MinMinutes: fields.MinMinutes,
		MaxMinutes: fields.MaxMinutes,
		Status:     fields.Status,
	}
	_, err := s.db.Exec(`
		INSERT INTO games (id, name, extensions, min_players, max_players, min_minutes, max_minutes, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Name, g.Extensions, g.MinPlayers, g.MaxPlayers, g.MinMinutes, g.MaxMinutes, g.Status,
	)
	if err != nil {
		log.Error("Failed to insert game", "error", err, "name", fields.Name)
		return Game{}, errs.Store("create game", err)
	}
	log.Info("Added new game", "gameID", g.ID, "name", g.Name)
	return g, nil
}

// UpdateGame replaces every descriptive field in one call.
func (s *store) UpdateGame(id string, fields GameFields) error {
	fields.Name = strings.TrimSpace(fields.Name)
	if fields.Name == "" {
		return errs.Validationf("game name is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE games
		SET name = ?, extensions = ?, min_players = ?, max_players = ?, min_minutes = ?, max_minutes = ?, status = ?
		WHERE id = ?`,
		fields.Name, fields.Extensions, fields.MinPlayers, fields.MaxPlayers, fields.MinMinutes, fields.MaxMinutes, fields.Status, id,
	)
	if err != nil {
		log.Error("Failed to update game", "error", err, "gameID", id)
		return errs.Store("update game", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFoundf("game %q", id)
	}
	return nil
}

func (s *store) DeleteGame(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM games WHERE id = ?", id)
	if err != nil {
		log.Error("Failed to delete game", "error", err, "gameID", id)
		return errs.Store("delete game", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFoundf("game %q", id)
	}
	log.Info("Deleted game", "gameID", id)
	return nil
}
