package ports

import (
	"context"

	"shipconfirm/internal/core/domain/model/kernel"
	"shipconfirm/internal/core/domain/model/order"
)

// OrderSource queries the order-management system for orders awaiting
// shipment confirmation. Implementations return the decoded hierarchical
// document untouched; normalization happens in the core.
type OrderSource interface {
	// FetchPendingOrders returns the document listing orders in preparation
	// for the configured payment methods, with every field displayed.
	// An empty response yields an empty document and no error.
	// Transport failures are reported as errs.SourceUnreachableError and
	// unparsable payloads as errs.MalformedResponseError.
	FetchPendingOrders(ctx context.Context) (map[string]any, error)
}

// EntityFetcher resolves resource links embedded in orders.
type EntityFetcher interface {
	// FetchEntity returns the decoded document the link points at.
	FetchEntity(ctx context.Context, link kernel.Link) (map[string]any, error)
}

// OrderStateWriter changes the state of an order in the order-management system.
type OrderStateWriter interface {
	// AdvanceState records a state change for orderID. A nil error means the
	// remote system acknowledged the change.
	AdvanceState(ctx context.Context, orderID string, state order.State) error
}
