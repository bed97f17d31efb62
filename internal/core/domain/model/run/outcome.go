package run

// Outcome classifies a whole run.
type Outcome string

const (
	// NoOrders means the source had no order with a tracking number.
	NoOrders Outcome = "no_orders"
	// Completed means every order was confirmed.
	Completed Outcome = "completed"
	// CompletedWithErrors means at least one order failed.
	CompletedWithErrors Outcome = "completed_with_errors"
	// FetchFailed means the order source could not be queried.
	FetchFailed Outcome = "fetch_failed"
	// Crashed means an unexpected error aborted the run.
	Crashed Outcome = "crashed"
)

// OutcomeOf classifies a run that went through the order loop.
func OutcomeOf(stats *Statistics) Outcome {
	switch {
	case stats.Processed() == 0:
		return NoOrders
	case stats.HasFailures():
		return CompletedWithErrors
	default:
		return Completed
	}
}
