// Package alerts delivers operational notifications over every configured
// channel at once.
package alerts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shipconfirm/internal/core/domain/model/notification"
	"shipconfirm/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrNotDelivered is returned when no channel delivered a notification.
	ErrNotDelivered = errors.New("notification was not delivered on any channel")
	// ErrChannelPanicked wraps a panic raised by a channel.
	ErrChannelPanicked = errors.New("notification channel panicked")
)

// Dispatcher fans a notification out to all channels concurrently and waits
// for every one of them. A failing channel never cancels the others, and the
// notification counts as delivered when at least one channel succeeded.
//
// Example usage:
//
//	dispatcher := alerts.NewDispatcher(logger, emailChannel, slackChannel)
//	if err := dispatcher.Notify(ctx, summary); err != nil {
//	    logger.Error("Summary not delivered", "error", err)
//	}
type Dispatcher struct {
	channels []ports.NotificationChannel
	logger   *slog.Logger
}

var _ ports.Notifier = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher over channels.
func NewDispatcher(logger *slog.Logger, channels ...ports.NotificationChannel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		logger:   logger.With("component", "alerts_dispatcher"),
	}
}

// Notify delivers n on every enabled channel.
func (d *Dispatcher) Notify(ctx context.Context, n notification.Notification) error {
	d.logger.InfoContext(ctx, "Sending notification", "level", n.Level.String(), "title", n.Title)

	results := make([]error, len(d.channels))
	delivered := make([]bool, len(d.channels))

	// A plain Group has no context to cancel, so every channel runs to the end.
	var g errgroup.Group
	for i, ch := range d.channels {
		g.Go(func() error {
			if !ch.Enabled() {
				d.logger.InfoContext(ctx, "Notification channel is disabled", "channel", ch.Name())
				return nil
			}
			if err := d.deliver(ctx, ch, n); err != nil {
				d.logger.ErrorContext(ctx, "Notification channel failed", "channel", ch.Name(), "error", err)
				results[i] = fmt.Errorf("%s: %w", ch.Name(), err)
				return results[i]
			}
			d.logger.InfoContext(ctx, "Notification delivered", "channel", ch.Name())
			delivered[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		d.logger.WarnContext(ctx, "Some notification channels failed", "title", n.Title)
	}

	for _, ok := range delivered {
		if ok {
			d.logger.InfoContext(ctx, "At least one notification channel delivered", "title", n.Title)
			return nil
		}
	}

	d.logger.ErrorContext(ctx, "All notification channels failed", "title", n.Title)
	return errors.Join(append([]error{ErrNotDelivered}, results...)...)
}

func (d *Dispatcher) deliver(ctx context.Context, ch ports.NotificationChannel, n notification.Notification) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrChannelPanicked, r)
		}
	}()
	return ch.Notify(ctx, n)
}
