package run

import "slices"

// MaxReportedErrors bounds the number of error entries carried by a summary.
const MaxReportedErrors = 5

// ErrorEntry is one failed order.
type ErrorEntry struct {
	OrderID string
	// Stage is the step the order could not complete.
	Stage   Stage
	Message string
}

// Statistics accumulates the outcome of every order of one run. It is owned by
// the single sequential loop that processes orders and needs no locking.
//
// Every order is recorded exactly once, through RecordSuccess or RecordFailure.
// Errors are kept unbounded and only truncated when reported.
type Statistics struct {
	processed  int
	succeeded  int
	failed     int
	errors     []ErrorEntry
	stateDrift []string
}

// NewStatistics returns an empty accumulator.
func NewStatistics() *Statistics {
	return &Statistics{}
}

// RecordSuccess counts an order whose shipment email was sent.
func (s *Statistics) RecordSuccess() {
	s.processed++
	s.succeeded++
}

// RecordFailure counts a failed order and keeps its error.
func (s *Statistics) RecordFailure(orderID string, stage Stage, err error) {
	s.processed++
	s.failed++

	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	s.errors = append(s.errors, ErrorEntry{OrderID: orderID, Stage: stage, Message: msg})
}

// RecordStateDrift remembers a successful order whose state could not be
// advanced. It does not change any count: the order stays a success, but the
// next run will see it in preparation again.
func (s *Statistics) RecordStateDrift(orderID string) {
	s.stateDrift = append(s.stateDrift, orderID)
}

func (s *Statistics) Processed() int { return s.processed }
func (s *Statistics) Succeeded() int { return s.succeeded }
func (s *Statistics) Failed() int    { return s.failed }

// HasFailures reports whether at least one order failed.
func (s *Statistics) HasFailures() bool {
	return s.failed > 0
}

// Errors returns a copy of every recorded error, in recording order.
func (s *Statistics) Errors() []ErrorEntry {
	return slices.Clone(s.errors)
}

// ReportedErrors returns at most MaxReportedErrors entries, the earliest first.
func (s *Statistics) ReportedErrors() []ErrorEntry {
	return slices.Clone(s.errors[:min(len(s.errors), MaxReportedErrors)])
}

// StateDrift returns the ids of orders left in preparation after their email was sent.
func (s *Statistics) StateDrift() []string {
	return slices.Clone(s.stateDrift)
}

// SuccessRate returns the share of successful orders as a percentage, 0 when nothing ran.
func (s *Statistics) SuccessRate() float64 {
	if s.processed == 0 {
		return 0
	}
	return float64(s.succeeded) / float64(s.processed) * 100
}
