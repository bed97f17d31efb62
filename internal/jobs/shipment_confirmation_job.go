package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"shipconfirm/internal/core/application/usecases/commands"
	"shipconfirm/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule runs at the top of every hour.
const DefaultSchedule = "0 0 * * * *"

// ErrRunInProgress is returned when a run is requested while another is active.
var ErrRunInProgress = errors.New("a shipment confirmation run is already in progress")

// RunHandler executes one shipment confirmation run.
type RunHandler interface {
	Handle(ctx context.Context, cmd commands.ProcessShipmentsCommand) (commands.ProcessShipmentsResult, error)
}

// ShipmentConfirmationJob runs the shipment confirmation on a schedule and on
// demand, never more than one run at a time.
type ShipmentConfirmationJob struct {
	handler  RunHandler
	schedule string
	cron     *cron.Cron
	running  sync.Mutex
	inflight sync.WaitGroup
	logger   *slog.Logger
}

// NewShipmentConfirmationJob creates a job for handler. An empty schedule
// falls back to DefaultSchedule.
func NewShipmentConfirmationJob(handler RunHandler, schedule string, logger *slog.Logger) *ShipmentConfirmationJob {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	logger = logger.With("component", "shipment_confirmation_job")
	return &ShipmentConfirmationJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: logger})),
		),
		logger: logger,
	}
}

// Start registers the schedule and starts the scheduler.
func (j *ShipmentConfirmationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunNow(ctx); err != nil && !errors.Is(err, ErrRunInProgress) {
			j.logger.ErrorContext(ctx, "Scheduled shipment confirmation run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment confirmation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for an active run to finish.
func (j *ShipmentConfirmationJob) Stop() {
	<-j.cron.Stop().Done()
	j.inflight.Wait()
	j.logger.InfoContext(context.Background(), "Shipment confirmation job stopped")
}

// RunNow executes one run synchronously. It returns ErrRunInProgress when
// another run holds the job.
func (j *ShipmentConfirmationJob) RunNow(ctx context.Context) (commands.ProcessShipmentsResult, error) {
	if !j.running.TryLock() {
		j.logger.WarnContext(ctx, "Run skipped, another run is in progress")
		return commands.ProcessShipmentsResult{}, ErrRunInProgress
	}
	defer j.running.Unlock()

	return j.execute(ctx, kernel.NewRunID())
}

// Trigger starts one run in the background and returns its id. The run is
// detached from ctx cancellation.
func (j *ShipmentConfirmationJob) Trigger(ctx context.Context) (kernel.RunID, error) {
	if !j.running.TryLock() {
		return kernel.RunID{}, ErrRunInProgress
	}

	runID := kernel.NewRunID()
	runCtx := context.WithoutCancel(ctx)

	j.inflight.Add(1)
	go func() {
		defer j.inflight.Done()
		defer j.running.Unlock()

		if _, err := j.execute(runCtx, runID); err != nil {
			j.logger.ErrorContext(runCtx, "Manual shipment confirmation run failed",
				"run_id", runID.String(), "error", err)
		}
	}()

	return runID, nil
}

func (j *ShipmentConfirmationJob) execute(ctx context.Context, runID kernel.RunID) (commands.ProcessShipmentsResult, error) {
	cmd, err := commands.NewProcessShipmentsCommand(runID)
	if err != nil {
		return commands.ProcessShipmentsResult{}, err
	}
	return j.handler.Handle(ctx, cmd)
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{"error", err}, keysAndValues...)...)
}
