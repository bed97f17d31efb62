package queries

import (
	"context"
	"log/slog"

	"shipconfirm/internal/core/domain/model/order"
	"shipconfirm/internal/core/domain/services"
	"shipconfirm/internal/core/ports"
)

// GetPendingShipmentsQueryHandler fetches the order document from the order
// source, normalizes it and keeps the orders with a tracking number.
type GetPendingShipmentsQueryHandler struct {
	source     ports.OrderSource
	normalizer services.OrderNormalizer
	logger     *slog.Logger
}

// NewGetPendingShipmentsQueryHandler creates a handler reading from source.
func NewGetPendingShipmentsQueryHandler(source ports.OrderSource, logger *slog.Logger) GetPendingShipmentsQueryHandler {
	return GetPendingShipmentsQueryHandler{
		source:     source,
		normalizer: services.NewOrderNormalizer(logger),
		logger:     logger.With("component", "get_pending_shipments"),
	}
}

// Handle returns the confirmable orders in source order. A source failure is
// returned as is so callers can tell it apart from an empty result.
func (h GetPendingShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingShipmentsQuery,
) ([]order.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	doc, err := h.source.FetchPendingOrders(ctx)
	if err != nil {
		return nil, err
	}

	records := h.normalizer.NormalizeOrders(ctx, doc)
	candidates := services.OrdersWithTracking(records)

	h.logger.InfoContext(ctx, "Pending shipments fetched",
		"orders_in_preparation", len(records),
		"with_tracking", len(candidates),
	)
	return candidates, nil
}
