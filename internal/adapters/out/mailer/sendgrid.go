package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shipconfirm/internal/core/domain/model/email"
	"shipconfirm/internal/core/ports"
	"shipconfirm/internal/pkg/errs"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridEndpoint = "/v3/mail/send"

// SendGridConfig configures the SendGrid transport. Host is only set in tests.
type SendGridConfig struct {
	APIKey   string
	From     string
	FromName string
	Timeout  time.Duration
	Host     string
}

// SendGridSender delivers messages through the SendGrid v3 mail API.
type SendGridSender struct {
	client  *sendgrid.Client
	from    *sgmail.Email
	timeout time.Duration
	logger  *slog.Logger
}

var _ ports.MailSender = (*SendGridSender)(nil)

// NewSendGridSender validates cfg and creates a sender.
func NewSendGridSender(cfg SendGridConfig, logger *slog.Logger) (*SendGridSender, error) {
	if cfg.APIKey == "" {
		return nil, errs.NewValueIsRequiredError("sendgrid api key")
	}
	if cfg.From == "" {
		return nil, errs.NewValueIsRequiredError("sendgrid sender")
	}

	request := sendgrid.GetRequest(cfg.APIKey, sendGridEndpoint, cfg.Host)
	request.Method = "POST"

	return &SendGridSender{
		client:  &sendgrid.Client{Request: request},
		from:    sgmail.NewEmail(cfg.FromName, cfg.From),
		timeout: cfg.Timeout,
		logger:  logger.With("component", "sendgrid_sender", "sender", cfg.From),
	}, nil
}

// Send submits msg. Any status of 400 or above is a failure.
func (s *SendGridSender) Send(ctx context.Context, msg email.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	response, err := s.client.SendWithContext(ctx, s.build(msg))
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	s.logger.InfoContext(ctx, "Email submitted", "status", response.StatusCode, "recipients", len(msg.Envelope()))
	return nil
}

func (s *SendGridSender) build(msg email.Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail("", to))
	}
	for _, bcc := range msg.Bcc {
		p.AddBCCs(sgmail.NewEmail("", bcc))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.Subject = msg.Subject
	m.AddPersonalizations(p)
	if msg.TextBody != "" {
		m.AddContent(sgmail.NewContent("text/plain", msg.TextBody))
	}
	if msg.HTMLBody != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTMLBody))
	}
	return m
}
