package competition

import "sync"

// MockStore is a mock implementation of the CompetitionStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateFunc      func(name string, objective int, memberIDs []string) (Competition, error)
	ListOpenFunc    func() ([]Progress, error)
	GetProgressFunc func(id string) (*Progress, error)
	RecordWinsFunc  func(id string, winsByPlayer map[string]int) error
	SettleFunc      func(id string) (*SettlementResult, error)

	// Call records
	CreateCalls []struct {
		Name      string
		Objective int
		MemberIDs []string
	}
	GetProgressCalls []string
	RecordWinsCalls  []struct {
		ID           string
		WinsByPlayer map[string]int
	}
	SettleCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = nil
	m.GetProgressCalls = nil
	m.RecordWinsCalls = nil
	m.SettleCalls = nil
}

func (m *MockStore) Create(name string, objective int, memberIDs []string) (Competition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, struct {
		Name      string
		Objective int
		MemberIDs []string
	}{name, objective, memberIDs})
	if m.CreateFunc != nil {
		return m.CreateFunc(name, objective, memberIDs)
	}
	return Competition{ID: "mock-id", Name: name, Objective: objective}, nil
}

func (m *MockStore) ListOpen() ([]Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListOpenFunc != nil {
		return m.ListOpenFunc()
	}
	return nil, nil
}

func (m *MockStore) GetProgress(id string) (*Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetProgressCalls = append(m.GetProgressCalls, id)
	if m.GetProgressFunc != nil {
		return m.GetProgressFunc(id)
	}
	return &Progress{CompetitionID: id}, nil
}

func (m *MockStore) RecordWins(id string, winsByPlayer map[string]int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordWinsCalls = append(m.RecordWinsCalls, struct {
		ID           string
		WinsByPlayer map[string]int
	}{id, winsByPlayer})
	if m.RecordWinsFunc != nil {
		return m.RecordWinsFunc(id, winsByPlayer)
	}
	return nil
}

func (m *MockStore) Settle(id string) (*SettlementResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SettleCalls = append(m.SettleCalls, id)
	if m.SettleFunc != nil {
		return m.SettleFunc(id)
	}
	return &SettlementResult{CompetitionID: id}, nil
}
