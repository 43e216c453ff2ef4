package filtering

import "sync"

// MockStore is a mock implementation of the FilterStore interface for testing.
type MockStore struct {
	mu sync.Mutex

	FilterGamesFunc  func(f Filter) ([]GameSummary, error)
	FilterGamesCalls []Filter
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) FilterGames(f Filter) ([]GameSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FilterGamesCalls = append(m.FilterGamesCalls, f)
	if m.FilterGamesFunc != nil {
		return m.FilterGamesFunc(f)
	}
	return nil, nil
}
