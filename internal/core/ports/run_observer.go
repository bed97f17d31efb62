package ports

import (
	"time"

	"shipconfirm/internal/core/domain/model/run"
)

// RunObserver receives run and order outcomes, typically to export metrics.
type RunObserver interface {
	ObserveRun(outcome run.Outcome, duration time.Duration)
	ObserveOrder(success bool)
	ObserveStateDrift()
}
