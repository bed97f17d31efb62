// Package mailer implements ports.MailSender over SMTP and over the SendGrid API.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"shipconfirm/internal/core/domain/model/email"
	"shipconfirm/internal/core/ports"
	"shipconfirm/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

const bccHeader mail.Header = "Bcc"

// SMTPConfig describes an authenticated SMTP submission endpoint. The
// username doubles as the sender address.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPSender submits messages over SMTP with mandatory STARTTLS and LOGIN auth.
type SMTPSender struct {
	cfg    SMTPConfig
	logger *slog.Logger
}

var _ ports.MailSender = (*SMTPSender)(nil)

// NewSMTPSender validates cfg and creates a sender.
func NewSMTPSender(cfg SMTPConfig, logger *slog.Logger) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, errs.NewValueIsRequiredError("smtp host")
	}
	if cfg.Port <= 0 {
		return nil, errs.NewValueIsInvalidError("smtp port")
	}
	if cfg.Username == "" {
		return nil, errs.NewValueIsRequiredError("smtp sender")
	}
	return &SMTPSender{
		cfg:    cfg,
		logger: logger.With("component", "smtp_sender", "sender", cfg.Username),
	}, nil
}

// Send opens a connection, submits msg to every envelope recipient and closes it.
func (s *SMTPSender) Send(ctx context.Context, msg email.Message) error {
	m, err := s.Compose(msg)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	}
	if s.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.cfg.Timeout))
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp submission to %s:%d: %w", s.cfg.Host, s.cfg.Port, err)
	}

	s.logger.InfoContext(ctx, "Email submitted", "recipients", len(msg.Envelope()))
	return nil
}

// Compose converts msg into a MIME message from the configured sender. When
// both bodies are present the plain text part comes first and the HTML part
// is its alternative.
func (s *SMTPSender) Compose(msg email.Message) (*mail.Msg, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	m := mail.NewMsg()
	if err := m.From(s.cfg.Username); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("sender", err)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("recipient", err)
	}
	if len(msg.Bcc) > 0 {
		if err := m.Bcc(msg.Bcc...); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("bcc recipient", err)
		}
		// go-mail keeps Bcc on the envelope only; the header is written explicitly.
		m.SetGenHeader(bccHeader, strings.Join(msg.Bcc, ", "))
	}
	m.Subject(msg.Subject)

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	default:
		m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	}
	return m, nil
}
