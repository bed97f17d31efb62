package commands

import (
	"context"
	"log/slog"

	"shipconfirm/internal/core/domain/model/customer"
	"shipconfirm/internal/core/domain/model/order"
	"shipconfirm/internal/core/domain/services"
	"shipconfirm/internal/core/ports"
	"shipconfirm/internal/pkg/errs"
)

// RecipientPolicy configures where customer mail is delivered.
type RecipientPolicy struct {
	Environment services.Environment
	// TestEmail receives every customer email outside production.
	TestEmail string
	// Bcc is blind-copied on every customer email in production.
	Bcc string
}

// ShipmentNotifier renders the shipment confirmation of an order and sends
// it to the customer. Nothing is retried.
type ShipmentNotifier struct {
	renderer ports.TemplateRenderer
	sender   ports.MailSender
	policy   RecipientPolicy
	logger   *slog.Logger
}

// NewShipmentNotifier creates a notifier rendering with renderer and sending with sender.
func NewShipmentNotifier(
	renderer ports.TemplateRenderer,
	sender ports.MailSender,
	policy RecipientPolicy,
	logger *slog.Logger,
) ShipmentNotifier {
	return ShipmentNotifier{
		renderer: renderer,
		sender:   sender,
		policy:   policy,
		logger:   logger.With("component", "shipment_notifier"),
	}
}

// Render obtains the HTML body of the confirmation email. Any failure,
// including an empty body, is returned as errs.TemplateRenderError.
func (n ShipmentNotifier) Render(
	ctx context.Context,
	o *order.Order,
	c *customer.Customer,
	a *customer.Address,
) (string, error) {
	html, err := n.renderer.RenderShipment(ctx, o.Attributes(), c, a)
	if err != nil {
		return "", errs.NewTemplateRenderErrorWithCause(o.ID(), err)
	}
	if html == "" {
		return "", errs.NewTemplateRenderError(o.ID())
	}
	return html, nil
}

// Send delivers html to the recipient resolved for c. Any failure is
// returned as errs.MailSendError.
func (n ShipmentNotifier) Send(ctx context.Context, o *order.Order, c *customer.Customer, html string) error {
	to, err := services.ResolveRecipient(n.policy.Environment, c.Email(), n.policy.TestEmail, n.policy.Bcc)
	if err != nil {
		return errs.NewMailSendErrorWithCause(c.Email(), err)
	}
	if !n.policy.Environment.IsProduction() {
		n.logger.InfoContext(ctx, "Non-production mode, redirecting customer email",
			"order_id", o.ID(), "customer_email", c.Email(), "recipient", to.Primary)
	}

	msg, err := services.ComposeShipmentMessage(o.Reference(), to, html)
	if err != nil {
		return errs.NewMailSendErrorWithCause(to.Primary, err)
	}

	if err = n.sender.Send(ctx, msg); err != nil {
		return errs.NewMailSendErrorWithCause(to.Primary, err)
	}

	n.logger.InfoContext(ctx, "Shipment confirmation sent",
		"order_id", o.ID(), "reference", o.Reference(), "customer", c.FullName(),
		"recipient", to.Primary, "bcc", len(to.Bcc))
	return nil
}

// RenderAndSend renders and sends the confirmation of o.
func (n ShipmentNotifier) RenderAndSend(
	ctx context.Context,
	o *order.Order,
	c *customer.Customer,
	a *customer.Address,
) error {
	html, err := n.Render(ctx, o, c, a)
	if err != nil {
		return err
	}
	return n.Send(ctx, o, c, html)
}
