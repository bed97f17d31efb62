package alerting

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"shipconfirm/internal/core/domain/model/email"
	"shipconfirm/internal/core/domain/model/notification"
	"shipconfirm/internal/core/ports"
)

var emailTemplate = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .header { background-color: {{.Color}}; color: white; padding: 15px; border-radius: 5px 5px 0 0; }
        .content { background-color: #f8f9fa; padding: 20px; border: 1px solid #dee2e6; }
        .footer { background-color: #e9ecef; padding: 10px; border-radius: 0 0 5px 5px; font-size: 12px; color: #6c757d; }
        .details { background-color: #ffffff; padding: 15px; margin: 15px 0; border-left: 4px solid {{.Color}}; }
        pre { background-color: #f1f1f1; padding: 10px; border-radius: 3px; overflow-x: auto; }
    </style>
</head>
<body>
    <div class="header">
        <h2>{{.Emoji}} {{.Status}} - {{.System}}</h2>
    </div>
    <div class="content">
        <p><strong>Problema detectado:</strong> {{.Title}}</p>
        <p><strong>Descripción:</strong> {{.Message}}</p>
        <p><strong>Fecha y hora:</strong> {{.Timestamp}}</p>
        {{- if .Details}}
        <div class="details">
            <h4>Detalles técnicos:</h4>
            {{- range .Details}}
            <p><strong>{{.Key}}:</strong></p>
            <pre>{{.Value}}</pre>
            {{- end}}
        </div>
        {{- end}}
        <div style="margin-top: 20px; padding: 15px; background-color: {{.PanelColor}}; border-radius: 5px;">
            <strong>{{.AdviceTitle}}</strong>
            <ul>
                <li>Revisar los logs del sistema</li>
                <li>{{.Advice}}</li>
                <li>Contactar al equipo técnico si el problema persiste</li>
            </ul>
        </div>
    </div>
    <div class="footer">{{.Footer}}</div>
</body>
</html>
`))

type emailView struct {
	Color, PanelColor, Emoji, Status, System string
	Title, Message, Timestamp                string
	Details                                  []notification.Detail
	AdviceTitle, Advice, Footer              string
}

// EmailChannel mails notifications to the back-office recipients.
type EmailChannel struct {
	sender     ports.MailSender
	recipients []string
	enabled    bool
}

var _ ports.NotificationChannel = (*EmailChannel)(nil)

// NewEmailChannel creates a channel delivering through sender. The channel
// is disabled when enabled is false or there are no recipients.
func NewEmailChannel(sender ports.MailSender, recipients []string, enabled bool) *EmailChannel {
	return &EmailChannel{
		sender:     sender,
		recipients: recipients,
		enabled:    enabled && sender != nil && len(recipients) > 0,
	}
}

func (c *EmailChannel) Name() string  { return "email" }
func (c *EmailChannel) Enabled() bool { return c.enabled }

// Notify sends n as a plain text message with an HTML alternative.
func (c *EmailChannel) Notify(ctx context.Context, n notification.Notification) error {
	msg, err := ComposeEmail(n, c.recipients)
	if err != nil {
		return err
	}
	return c.sender.Send(ctx, msg)
}

// ComposeEmail renders n for recipients.
func ComposeEmail(n notification.Notification, recipients []string) (email.Message, error) {
	style := styleOf(n.Level)

	details := make([]notification.Detail, 0, len(n.Details))
	for _, d := range n.Details {
		details = append(details, notification.Detail{Key: notification.HumanKey(d.Key), Value: d.Value})
	}

	var html bytes.Buffer
	err := emailTemplate.Execute(&html, emailView{
		Color:       style.color,
		PanelColor:  style.panelColor,
		Emoji:       style.emoji,
		Status:      style.status,
		System:      systemName,
		Title:       n.Title,
		Message:     n.Message,
		Timestamp:   timestampOf(n),
		Details:     details,
		AdviceTitle: style.adviceTitle,
		Advice:      style.advice,
		Footer:      footerText,
	})
	if err != nil {
		return email.Message{}, fmt.Errorf("render notification email: %w", err)
	}

	msg := email.Message{
		To:       recipients,
		Subject:  subjectOf(n),
		HTMLBody: html.String(),
		TextBody: plainBody(n, style),
	}
	return msg, msg.Validate()
}

func plainBody(n notification.Notification, style levelStyle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - %s\n\n", style.status, systemName)
	fmt.Fprintf(&sb, "Problema detectado: %s\n", n.Title)
	fmt.Fprintf(&sb, "Descripción: %s\n", n.Message)
	fmt.Fprintf(&sb, "Fecha y hora: %s\n\n", timestampOf(n))
	if len(n.Details) > 0 {
		sb.WriteString(plainDetails(n.Details))
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "%s\n", style.adviceTitle)
	sb.WriteString("- Revisar los logs del sistema\n")
	fmt.Fprintf(&sb, "- %s\n", style.advice)
	sb.WriteString("- Contactar al equipo técnico si el problema persiste\n\n")
	sb.WriteString("---\n")
	sb.WriteString(footerText)
	return sb.String()
}
