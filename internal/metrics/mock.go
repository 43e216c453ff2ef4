package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	ScoresRecordedCount      int
	CompetitionsCreatedCount int
	CompetitionsSettledCount int
	StarsAwardedTotal        int
	NotifSentCount           int
	NotifFailedCount         int
	StartupTime              float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncScoresRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScoresRecordedCount++
}

func (m *Mock) IncCompetitionsCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CompetitionsCreatedCount++
}

func (m *Mock) IncCompetitionsSettled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CompetitionsSettledCount++
}

func (m *Mock) AddStarsAwarded(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StarsAwardedTotal += n
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifSentCount++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifFailedCount++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = duration
}
