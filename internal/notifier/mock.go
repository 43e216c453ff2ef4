package notifier

import (
	"sync"

	"github.com/mvoss/gameshelf/internal/catalog"
	"github.com/mvoss/gameshelf/internal/competition"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	SendSettlementNotificationFunc func(result *competition.SettlementResult, players []catalog.Player, dryRun bool) error
	SendStarsLeaderboardFunc       func(players []catalog.Player, dryRun bool) error

	// Call records
	SettlementCalls  []*competition.SettlementResult
	LeaderboardCalls [][]catalog.Player
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SettlementCalls = nil
	m.LeaderboardCalls = nil
}

func (m *Mock) SendSettlementNotification(result *competition.SettlementResult, players []catalog.Player, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SettlementCalls = append(m.SettlementCalls, result)
	if m.SendSettlementNotificationFunc != nil {
		return m.SendSettlementNotificationFunc(result, players, dryRun)
	}
	return nil
}

func (m *Mock) SendStarsLeaderboard(players []catalog.Player, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LeaderboardCalls = append(m.LeaderboardCalls, players)
	if m.SendStarsLeaderboardFunc != nil {
		return m.SendStarsLeaderboardFunc(players, dryRun)
	}
	return nil
}
