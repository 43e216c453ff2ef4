package catalog

import "sync"

// MockStore is a mock implementation of the CatalogStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListPlayersFunc  func() ([]Player, error)
	CreatePlayerFunc func(name string) (Player, error)
	RenamePlayerFunc func(id, newName string) error
	DeletePlayerFunc func(id string) error
	ListGamesFunc    func() ([]Game, error)
	CreateGameFunc   func(fields GameFields) (Game, error)
	UpdateGameFunc   func(id string, fields GameFields) error
	DeleteGameFunc   func(id string) error

	// Call records
	CreatePlayerCalls []string
	RenamePlayerCalls []struct{ ID, NewName string }
	DeletePlayerCalls []string
	CreateGameCalls   []GameFields
	UpdateGameCalls   []struct {
		ID     string
		Fields GameFields
	}
	DeleteGameCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePlayerCalls = nil
	m.RenamePlayerCalls = nil
	m.DeletePlayerCalls = nil
	m.CreateGameCalls = nil
	m.UpdateGameCalls = nil
	m.DeleteGameCalls = nil
}

func (m *MockStore) ListPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) CreatePlayer(name string) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePlayerCalls = append(m.CreatePlayerCalls, name)
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(name)
	}
	return Player{ID: "mock-id", Name: name}, nil
}

func (m *MockStore) RenamePlayer(id, newName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RenamePlayerCalls = append(m.RenamePlayerCalls, struct{ ID, NewName string }{id, newName})
	if m.RenamePlayerFunc != nil {
		return m.RenamePlayerFunc(id, newName)
	}
	return nil
}

func (m *MockStore) DeletePlayer(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletePlayerCalls = append(m.DeletePlayerCalls, id)
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(id)
	}
	return nil
}

func (m *MockStore) ListGames() ([]Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListGamesFunc != nil {
		return m.ListGamesFunc()
	}
	return nil, nil
}

func (m *MockStore) CreateGame(fields GameFields) (Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateGameCalls = append(m.CreateGameCalls, fields)
	if m.CreateGameFunc != nil {
		return m.CreateGameFunc(fields)
	}
	return Game{ID: "mock-id", Name: fields.Name}, nil
}

func (m *MockStore) UpdateGame(id string, fields GameFields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateGameCalls = append(m.UpdateGameCalls, struct {
		ID     string
		Fields GameFields
	}{id, fields})
	if m.UpdateGameFunc != nil {
		return m.UpdateGameFunc(id, fields)
	}
	return nil
}

func (m *MockStore) DeleteGame(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteGameCalls = append(m.DeleteGameCalls, id)
	if m.DeleteGameFunc != nil {
		return m.DeleteGameFunc(id)
	}
	return nil
}
