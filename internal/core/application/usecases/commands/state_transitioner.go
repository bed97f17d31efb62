package commands

import (
	"context"
	"log/slog"

	"shipconfirm/internal/core/domain/model/order"
	"shipconfirm/internal/core/ports"
	"shipconfirm/internal/pkg/errs"
)

// StateTransitioner moves orders from in preparation to shipped.
type StateTransitioner struct {
	writer ports.OrderStateWriter
	logger *slog.Logger
}

// NewStateTransitioner creates a transitioner writing through writer.
func NewStateTransitioner(writer ports.OrderStateWriter, logger *slog.Logger) StateTransitioner {
	return StateTransitioner{
		writer: writer,
		logger: logger.With("component", "state_transitioner"),
	}
}

// AdvanceToShipped requests the shipped state for orderID. Failures are
// returned as errs.StateTransitionError.
func (t StateTransitioner) AdvanceToShipped(ctx context.Context, orderID string) error {
	next, err := order.InPreparation.Ship()
	if err != nil {
		return errs.NewStateTransitionErrorWithCause(orderID, order.Shipped.Code(), err)
	}

	if err = t.writer.AdvanceState(ctx, orderID, next); err != nil {
		return errs.NewStateTransitionErrorWithCause(orderID, next.Code(), err)
	}

	t.logger.InfoContext(ctx, "Order state advanced", "order_id", orderID, "state", next.Code())
	return nil
}
