package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/mbkold/scoutline/internal/metrics"
	"github.com/mbkold/scoutline/internal/notifier"
	"github.com/mbkold/scoutline/internal/reports"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending scouting report announcements to Slack.
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

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", nil
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
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return timestamp, nil
}

// SendReportNotification announces a freshly generated scouting report.
func (s *Notifier) SendReportNotification(report *reports.Report, dryRun bool) (string, error) {
	msg := s.formatReportNotification(report)
	return s.sendMessage(msg, dryRun)
}

// formatReportNotification creates the Slack message for a generated report using Block Kit.
func (s *Notifier) formatReportNotification(report *reports.Report) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "New scouting report ready", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("Team: %s\nGame: %s\nMatches analyzed: %d\nGenerated: %s",
		report.TeamID, report.Game, report.MatchesAnalyzed,
		report.GeneratedAt.Format("Monday 02 Jan, 15:04"))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	if len(report.KeyFindings) > 0 {
		var lines []string
		for _, f := range report.KeyFindings {
			lines = append(lines, fmt.Sprintf("• %s", f))
		}
		findingsText := "Key findings:\n" + strings.Join(lines, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", findingsText, true, false), nil, nil))
	}

	if len(report.PrepPriorities) > 0 {
		var lines []string
		for i, p := range report.PrepPriorities {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, p))
		}
		prepText := "Prep priorities:\n" + strings.Join(lines, "\n")
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", prepText, true, false), nil, nil))
	}

	if report.Narrative == nil {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject("plain_text", "Narrative unavailable; numbers-only report.", false, false)))
	}

	msg := slack.NewBlockMessage(blocks...)
	return msg
}
