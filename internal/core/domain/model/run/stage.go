// Package run models one execution of the shipment confirmation run: the stage
// each order goes through and the statistics accumulated along the way.
package run

// Stage is the progress of a single order through the run.
//
//	Fetched ─> ReferencesResolved ─> EmailRendered ─> EmailSent ─> StateAdvanceAttempted ─> Succeeded
//	   └────────────┴──────────────────────┴──────────────┴──> Failed
//
// A failed state advance does not lead to Failed: the email is the success criterion.
type Stage int

const (
	Fetched Stage = iota + 1
	ReferencesResolved
	EmailRendered
	EmailSent
	StateAdvanceAttempted
	Succeeded
	Failed
)

func (s Stage) String() string {
	switch s {
	case Fetched:
		return "fetched"
	case ReferencesResolved:
		return "references_resolved"
	case EmailRendered:
		return "email_rendered"
	case EmailSent:
		return "email_sent"
	case StateAdvanceAttempted:
		return "state_advance_attempted"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Next returns the following stage on the success path. Terminal stages return themselves.
func (s Stage) Next() Stage {
	switch s {
	case Fetched, ReferencesResolved, EmailRendered, EmailSent, StateAdvanceAttempted:
		return s + 1
	default:
		return s
	}
}

// IsTerminal reports whether the order has reached an outcome.
func (s Stage) IsTerminal() bool {
	return s == Succeeded || s == Failed
}
