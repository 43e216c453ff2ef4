package notifier

import (
	"github.com/mvoss/gameshelf/internal/catalog"
	"github.com/mvoss/gameshelf/internal/competition"
)

// Notifier defines a high-level interface for announcing business events.
// This decouples the rest of the application from the specific notification
// provider (e.g., Slack).
type Notifier interface {
	// For a settled competition's payout.
	SendSettlementNotification(result *competition.SettlementResult, players []catalog.Player, dryRun bool) error
	// For the current stars standings.
	SendStarsLeaderboard(players []catalog.Player, dryRun bool) error
}
