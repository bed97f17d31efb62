package ports

import (
	"context"

	"shipconfirm/internal/core/domain/model/email"
)

// MailSender delivers composed email messages.
type MailSender interface {
	// Send transmits msg to every address of msg.Envelope().
	Send(ctx context.Context, msg email.Message) error
}
