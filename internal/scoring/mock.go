package scoring

import "sync"

// MockStore is a mock implementation of the ScoreStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	RecordScoreFunc func(gameID, playerID string, value float64) (Score, error)
	RankGamesFunc   func(order Order, limit int, playerID string) ([]GameRank, error)

	// Call records
	RecordScoreCalls []struct {
		GameID   string
		PlayerID string
		Value    float64
	}
	RankGamesCalls []struct {
		Order    Order
		Limit    int
		PlayerID string
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordScoreCalls = nil
	m.RankGamesCalls = nil
}

func (m *MockStore) RecordScore(gameID, playerID string, value float64) (Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordScoreCalls = append(m.RecordScoreCalls, struct {
		GameID   string
		PlayerID string
		Value    float64
	}{gameID, playerID, value})
	if m.RecordScoreFunc != nil {
		return m.RecordScoreFunc(gameID, playerID, value)
	}
	return Score{ID: "mock-id", GameID: gameID, PlayerID: playerID, Value: value}, nil
}

func (m *MockStore) RankGames(order Order, limit int, playerID string) ([]GameRank, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RankGamesCalls = append(m.RankGamesCalls, struct {
		Order    Order
		Limit    int
		PlayerID string
	}{order, limit, playerID})
	if m.RankGamesFunc != nil {
		return m.RankGamesFunc(order, limit, playerID)
	}
	return nil, nil
}
