package ports

import (
	"context"

	"shipconfirm/internal/core/domain/model/customer"
	"shipconfirm/internal/core/domain/model/order"
)

// TemplateRenderer produces the HTML body of the shipment confirmation email.
type TemplateRenderer interface {
	// RenderShipment renders the email for the raw order and its resolved
	// customer and delivery address. An empty HTML payload is an error.
	RenderShipment(ctx context.Context, rec order.Record, c *customer.Customer, a *customer.Address) (string, error)
}
