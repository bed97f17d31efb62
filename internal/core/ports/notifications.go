package ports

import (
	"context"

	"shipconfirm/internal/core/domain/model/notification"
)

// NotificationChannel is one operational notification transport, such as
// back-office email or a chat webhook.
type NotificationChannel interface {
	// Name identifies the channel in logs.
	Name() string

	// Enabled reports whether the channel is configured to deliver.
	Enabled() bool

	// Notify delivers n. It must not panic on delivery failure.
	Notify(ctx context.Context, n notification.Notification) error
}

// Notifier delivers an operational notification over every enabled channel.
type Notifier interface {
	// Notify returns nil when at least one channel delivered n.
	Notify(ctx context.Context, n notification.Notification) error
}
