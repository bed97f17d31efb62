package alerting

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"shipconfirm/internal/core/domain/model/notification"
	"shipconfirm/internal/core/ports"
)

const (
	defaultSlackUsername = "Confirmación de Envíos Bot"
	defaultSlackChannel  = "#general"
)

// SlackConfig configures the incoming-webhook channel.
type SlackConfig struct {
	WebhookURL string
	Channel    string
	Username   string
	Timeout    time.Duration
	Enabled    bool
}

// SlackChannel posts notifications to a Slack incoming webhook as blocks.
type SlackChannel struct {
	cfg    SlackConfig
	client *http.Client
}

var _ ports.NotificationChannel = (*SlackChannel)(nil)

// NewSlackChannel creates a webhook channel. It is disabled when the webhook
// URL is empty.
func NewSlackChannel(cfg SlackConfig) *SlackChannel {
	if cfg.Username == "" {
		cfg.Username = defaultSlackUsername
	}
	cfg.Enabled = cfg.Enabled && strings.TrimSpace(cfg.WebhookURL) != ""
	return &SlackChannel{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *SlackChannel) Name() string  { return "slack" }
func (c *SlackChannel) Enabled() bool { return c.cfg.Enabled }

// Notify posts n to the webhook.
func (c *SlackChannel) Notify(ctx context.Context, n notification.Notification) error {
	msg := BuildSlackMessage(n)
	msg.Username = c.cfg.Username
	if ch := strings.TrimSpace(c.cfg.Channel); ch != "" && ch != defaultSlackChannel {
		msg.Channel = ch
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, c.cfg.WebhookURL, c.client, msg); err != nil {
		return fmt.Errorf("post slack webhook: %w", err)
	}
	return nil
}

// BuildSlackMessage lays n out as Block Kit blocks.
func BuildSlackMessage(n notification.Notification) *slack.WebhookMessage {
	style := styleOf(n.Level)
	header := fmt.Sprintf("%s %s - %s", style.emoji, style.status, systemName)

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, header, true, false)),
		markdownSection(fmt.Sprintf("*Descripción*\n```%s: %s```", n.Title, n.Message)),
	}

	if len(n.Details) > 0 {
		details := truncateRunes(lineDetails(n.Details), maxSlackDetails)
		blocks = append(blocks, markdownSection(fmt.Sprintf("*Detalles técnicos:*\n```%s```", details)))
	}

	if n.IsCritical() {
		blocks = append(blocks, markdownSection("*Acción recomendada:* "+style.advice))
	}

	footer := fmt.Sprintf("%s - Sistema Automatizado | `Timestamp: %s`", systemName, timestampOf(n))
	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType, footer, false, false)))

	return &slack.WebhookMessage{
		Text:   fmt.Sprintf("%s: %s", n.Title, n.Message),
		Blocks: &slack.Blocks{BlockSet: blocks},
	}
}

func markdownSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}
