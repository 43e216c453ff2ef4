package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mvoss/gameshelf/internal/catalog"
	"github.com/mvoss/gameshelf/internal/competition"
	"github.com/mvoss/gameshelf/internal/metrics"
	"github.com/mvoss/gameshelf/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client
// that we use. This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack client
// instance. Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

// SendSettlementNotification announces the payout of a settled competition.
// The player list is used to resolve names; awards for deleted players are
// shown by id.
func (s *Notifier) SendSettlementNotification(result *competition.SettlementResult, players []catalog.Player, dryRun bool) error {
	msg := s.formatSettlementNotification(result, players)
	return s.sendMessage(msg, dryRun)
}

// SendStarsLeaderboard posts the current stars standings.
func (s *Notifier) SendStarsLeaderboard(players []catalog.Player, dryRun bool) error {
	msg := s.formatStarsLeaderboard(players)
	return s.sendMessage(msg, dryRun)
}

func (s *Notifier) formatSettlementNotification(result *competition.SettlementResult, players []catalog.Player) slack.Message {
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏁 Competition over: %s", result.CompetitionName), true, false)
	header := slack.NewHeaderBlock(headerText)

	awards := append([]competition.StarAward(nil), result.Awards...)
	sort.Slice(awards, func(i, j int) bool { return awards[i].Stars > awards[j].Stars })

	body := ""
	for _, a := range awards {
		name := names[a.PlayerID]
		if name == "" {
			name = a.PlayerID
		}
		body += fmt.Sprintf("*%s* — %d ⭐\n", name, a.Stars)
	}
	if body == "" {
		body = "No members, no stars."
	}
	section := slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", body, false, false), nil, nil)

	return slack.NewBlockMessage(header, section)
}

func (s *Notifier) formatStarsLeaderboard(players []catalog.Player) slack.Message {
	headerText := slack.NewTextBlockObject("plain_text", "⭐ Stars leaderboard", true, false)
	header := slack.NewHeaderBlock(headerText)

	sorted := append([]catalog.Player(nil), players...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Stars > sorted[j].Stars })

	body := ""
	for i, p := range sorted {
		body += fmt.Sprintf("%d. *%s* — %d ⭐\n", i+1, p.Name, p.Stars)
	}
	if body == "" {
		body = "No players yet."
	}
	section := slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", body, false, false), nil, nil)

	return slack.NewBlockMessage(header, section)
}
