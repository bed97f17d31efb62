// Package queries contains read operations of the shipment confirmation workflow.
package queries

import (
	"errors"

	"shipconfirm/internal/pkg/guard"
)

var (
	ErrGetPendingShipmentsQueryIsNotConstructed = errors.New(
		"GetPendingShipmentsQuery must be created via NewGetPendingShipmentsQuery constructor",
	)
)

// GetPendingShipmentsQuery retrieves the orders in preparation that already
// carry a carrier tracking number.
//
// Example:
//
//	query := NewGetPendingShipmentsQuery()
//	handler := NewGetPendingShipmentsQueryHandler(source, logger)
//
//	records, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending shipments: %w", err)
//	}
//	fmt.Printf("%d orders ready to confirm\n", len(records))
type GetPendingShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingShipmentsQuery creates a query for confirmable orders.
func NewGetPendingShipmentsQuery() GetPendingShipmentsQuery {
	return GetPendingShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingShipmentsQueryIsNotConstructed if validation fails.
func (q GetPendingShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingShipmentsQueryIsNotConstructed)
}
