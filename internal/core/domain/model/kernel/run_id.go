package kernel

import (
	"fmt"

	"shipconfirm/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrRunIDIsNotConstructed is returned when validating a zero-value RunID.
var ErrRunIDIsNotConstructed = errs.NewValueIsRequiredError("RunID must be created via NewRunID or RunIDFromString")

// RunID identifies one shipment run. It is attached to every log line and
// operational notification of that run so they can be correlated.
//
// The zero value is invalid.
//
// Example:
//
//	id := kernel.NewRunID()
//	logger = logger.With("run_id", id.String())
type RunID struct {
	id uuid.UUID
}

// NewRunID generates a new random run identifier (UUID version 4).
func NewRunID() RunID {
	return RunID{id: uuid.New()}
}

// RunIDFromString parses a run identifier in any format accepted by uuid.Parse.
func RunIDFromString(s string) (RunID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RunID{}, fmt.Errorf("invalid run id: %w", err)
	}
	runID := RunID{id: id}
	if err = runID.Validate(); err != nil {
		return RunID{}, err
	}
	return runID, nil
}

// String returns the canonical textual form of the identifier.
func (r RunID) String() string {
	return r.id.String()
}

// Short returns the first block of the identifier, used in notification titles.
func (r RunID) Short() string {
	return r.id.String()[:8]
}

// IsEqual reports whether both identifiers are the same.
func (r RunID) IsEqual(other RunID) bool {
	return r.id == other.id
}

// Validate returns ErrRunIDIsNotConstructed for the zero value.
func (r RunID) Validate() error {
	if r.id == uuid.Nil {
		return ErrRunIDIsNotConstructed
	}
	return nil
}
