package notifier

import (
	"github.com/charmbracelet/log"
	"github.com/mvoss/gameshelf/internal/catalog"
	"github.com/mvoss/gameshelf/internal/competition"
)

var _ Notifier = (*Noop)(nil)

// Noop is the notifier used when no Slack token is configured. It logs and
// drops every notification.
type Noop struct{}

// NewNoop creates a new no-op notifier.
func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) SendSettlementNotification(result *competition.SettlementResult, players []catalog.Player, dryRun bool) error {
	log.Debug("Notifications disabled, dropping settlement notification", "competitionID", result.CompetitionID)
	return nil
}

func (n *Noop) SendStarsLeaderboard(players []catalog.Player, dryRun bool) error {
	log.Debug("Notifications disabled, dropping stars leaderboard")
	return nil
}
