package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"shipconfirm/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentConfirmationJob *ShipmentConfirmationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(handler RunHandler, schedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		shipmentConfirmationJob: NewShipmentConfirmationJob(handler, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentConfirmationJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment confirmation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentConfirmationJob.Stop()
}

// TriggerShipmentConfirmation starts an out-of-schedule run.
func (jm *JobManager) TriggerShipmentConfirmation(ctx context.Context) (kernel.RunID, error) {
	return jm.shipmentConfirmationJob.Trigger(ctx)
}
