package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"shipconfirm/internal/core/application/usecases/queries"
	"shipconfirm/internal/core/domain/model/kernel"
	"shipconfirm/internal/core/domain/model/order"
	"shipconfirm/internal/core/domain/model/run"
	"shipconfirm/internal/core/domain/services"
	"shipconfirm/internal/core/ports"
)

var (
	// ErrRunCrashed is returned when an unexpected panic aborted a run.
	ErrRunCrashed = errors.New("shipment confirmation run crashed")
	// ErrOrderCrashed is recorded for an order whose processing panicked.
	ErrOrderCrashed = errors.New("order processing crashed")
)

var banner = strings.Repeat("=", 80)

// PendingShipmentsFetcher returns the orders a run should confirm.
type PendingShipmentsFetcher interface {
	Handle(ctx context.Context, query queries.GetPendingShipmentsQuery) ([]order.Record, error)
}

// ProcessShipmentsDependencies are the collaborators of a run.
type ProcessShipmentsDependencies struct {
	Pending      PendingShipmentsFetcher
	Resolver     ReferenceResolver
	Notifier     ShipmentNotifier
	Transitioner StateTransitioner
	Alerts       ports.Notifier
	// Observer is optional.
	Observer ports.RunObserver
	// Now defaults to time.Now.
	Now func() time.Time
}

// ProcessShipmentsResult describes a finished run.
type ProcessShipmentsResult struct {
	RunID      kernel.RunID
	Outcome    run.Outcome
	Statistics *run.Statistics
}

// ProcessShipmentsCommandHandler runs the shipment confirmation of every
// pending order.
//
// Orders are handled one at a time:
//
//	fetched -> references resolved -> email rendered -> email sent -> state advance attempted
//
// A failure at any step but the last marks the order failed and the run moves
// on to the next order. A failed state advance is logged and the order still
// counts as a success. A panic inside one order fails that order at the step
// it happened in. After the loop exactly one summary notification is sent. If
// the pending orders cannot be fetched, or the run panics outside the order
// loop, a single critical notification is sent instead.
//
// Example:
//
//	handler := NewProcessShipmentsCommandHandler(deps, logger)
//	cmd, _ := NewProcessShipmentsCommand(kernel.NewRunID())
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	logger.Info("run finished", "outcome", result.Outcome)
type ProcessShipmentsCommandHandler struct {
	deps   ProcessShipmentsDependencies
	logger *slog.Logger
}

// NewProcessShipmentsCommandHandler creates a run handler.
func NewProcessShipmentsCommandHandler(
	deps ProcessShipmentsDependencies,
	logger *slog.Logger,
) ProcessShipmentsCommandHandler {
	if deps.Observer == nil {
		deps.Observer = noopObserver{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return ProcessShipmentsCommandHandler{
		deps:   deps,
		logger: logger.With("component", "process_shipments"),
	}
}

// Handle executes one run. The returned error is non-nil only when the run
// was aborted, either because pending orders could not be fetched or because
// of a panic; per-order failures are reported through the statistics.
func (h *ProcessShipmentsCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessShipmentsCommand,
) (result ProcessShipmentsResult, err error) {
	if err = cmd.Validate(); err != nil {
		return ProcessShipmentsResult{}, err
	}

	logger := h.logger.With("run_id", cmd.RunID().String())
	started := h.deps.Now()
	result = ProcessShipmentsResult{
		RunID:      cmd.RunID(),
		Statistics: run.NewStatistics(),
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRunCrashed, r)
			result.Outcome = run.Crashed
			logger.ErrorContext(ctx, "Critical error in shipment confirmation run",
				"error", err, "stack", string(debug.Stack()))
			h.notifyCritical(ctx, logger, cmd.RunID(), services.RunCrashTitle, fmt.Sprint(r), err)
		}
		h.deps.Observer.ObserveRun(result.Outcome, h.deps.Now().Sub(started))
	}()

	logger.InfoContext(ctx, banner)
	logger.InfoContext(ctx, "Starting shipment confirmation run")
	logger.InfoContext(ctx, banner)

	records, err := h.deps.Pending.Handle(ctx, queries.NewGetPendingShipmentsQuery())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to query pending orders", "error", err)
		h.notifyCritical(ctx, logger, cmd.RunID(), services.FetchFailureTitle, services.FetchFailureMessage, err)
		result.Outcome = run.FetchFailed
		return result, fmt.Errorf("fetch pending orders: %w", err)
	}

	if len(records) == 0 {
		logger.InfoContext(ctx, "No pending shipments to process")
		result.Outcome = run.NoOrders
		return result, nil
	}

	for _, rec := range records {
		h.processOrder(ctx, logger, rec, result.Statistics)
	}

	h.sendSummary(ctx, logger, cmd.RunID(), result.Statistics)
	result.Outcome = run.OutcomeOf(result.Statistics)

	logger.InfoContext(ctx, banner)
	logger.InfoContext(ctx, "Shipment confirmation run completed",
		"processed", result.Statistics.Processed(),
		"succeeded", result.Statistics.Succeeded(),
		"failed", result.Statistics.Failed(),
	)
	logger.InfoContext(ctx, banner)

	return result, nil
}

func (h *ProcessShipmentsCommandHandler) processOrder(
	ctx context.Context,
	logger *slog.Logger,
	rec order.Record,
	stats *run.Statistics,
) {
	logger = logger.With("order_id", rec.ID())
	stage := run.Fetched

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", ErrOrderCrashed, r)
			logger.ErrorContext(ctx, "Unexpected error while processing order",
				"stage", stage.String(), "stack", string(debug.Stack()))
			h.recordFailure(ctx, logger, stats, rec.ID(), stage, err)
		}
	}()

	o, err := order.FromRecord(rec)
	if err != nil {
		h.recordFailure(ctx, logger, stats, rec.ID(), stage, err)
		return
	}

	logger = logger.With("reference", o.Reference())
	logger.InfoContext(ctx, "Processing order", "tracking_number", o.TrackingNumber())

	stage = run.ReferencesResolved
	c, a, err := h.deps.Resolver.Resolve(ctx, o)
	if err != nil {
		h.recordFailure(ctx, logger, stats, o.ID(), stage, err)
		return
	}

	stage = run.EmailRendered
	html, err := h.deps.Notifier.Render(ctx, o, c, a)
	if err != nil {
		h.recordFailure(ctx, logger, stats, o.ID(), stage, err)
		return
	}

	stage = run.EmailSent
	if err = h.deps.Notifier.Send(ctx, o, c, html); err != nil {
		h.recordFailure(ctx, logger, stats, o.ID(), stage, err)
		return
	}

	stage = run.StateAdvanceAttempted
	if err = h.advanceState(ctx, o.ID()); err != nil {
		logger.WarnContext(ctx, "Email sent but order state could not be advanced",
			"stage", stage.String(), "error", err)
		stats.RecordStateDrift(o.ID())
		h.deps.Observer.ObserveStateDrift()
	}

	stats.RecordSuccess()
	h.deps.Observer.ObserveOrder(true)
	logger.InfoContext(ctx, "Order processed", "stage", run.Succeeded.String())
}

// advanceState turns a panic of the transition into an error so the sent
// email still counts.
func (h *ProcessShipmentsCommandHandler) advanceState(ctx context.Context, orderID string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrOrderCrashed, r)
		}
	}()
	return h.deps.Transitioner.AdvanceToShipped(ctx, orderID)
}

func (h *ProcessShipmentsCommandHandler) recordFailure(
	ctx context.Context,
	logger *slog.Logger,
	stats *run.Statistics,
	orderID string,
	stage run.Stage,
	err error,
) {
	logger.ErrorContext(ctx, "Order processing failed", "stage", stage.String(), "error", err)
	stats.RecordFailure(orderID, stage, err)
	h.deps.Observer.ObserveOrder(false)
}

func (h *ProcessShipmentsCommandHandler) sendSummary(
	ctx context.Context,
	logger *slog.Logger,
	runID kernel.RunID,
	stats *run.Statistics,
) {
	n, err := services.BuildRunSummary(stats, runID, h.deps.Now())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build run summary", "error", err)
		return
	}
	if err = h.deps.Alerts.Notify(ctx, n); err != nil {
		logger.ErrorContext(ctx, "Failed to send run summary", "error", err)
	}
}

func (h *ProcessShipmentsCommandHandler) notifyCritical(
	ctx context.Context,
	logger *slog.Logger,
	runID kernel.RunID,
	title, message string,
	cause error,
) {
	n, err := services.BuildCriticalNotification(title, message, cause, runID, h.deps.Now())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build critical notification", "error", err)
		return
	}
	if err = h.deps.Alerts.Notify(ctx, n); err != nil {
		logger.ErrorContext(ctx, "Failed to send critical notification", "error", err)
	}
}

type noopObserver struct{}

func (noopObserver) ObserveRun(run.Outcome, time.Duration) {}
func (noopObserver) ObserveOrder(bool)                     {}
func (noopObserver) ObserveStateDrift()                    {}
