package order

import (
	"fmt"

	"shipconfirm/internal/pkg/errs"
)

// State is the lifecycle stage of an order in the order-management system,
// identified by the numeric code the remote system uses.
//
// This service only knows the transition it performs:
//
//	InPreparation (3) ──> Shipped (4)
type State int

const (
	// Unknown represents an invalid or undefined state.
	Unknown State = 0

	// InPreparation is the state of orders being prepared; candidates are read from it.
	InPreparation State = 3

	// Shipped is the state written once the customer has been notified.
	Shipped State = 4
)

// String returns the human-readable name of the state.
func (s State) String() string {
	switch s {
	case InPreparation:
		return "InPreparation"
	case Shipped:
		return "Shipped"
	case Unknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Code returns the numeric state code used on the wire.
func (s State) Code() int {
	return int(s)
}

// Validate checks that the state is one of the two known states.
func (s State) Validate() error {
	if s != InPreparation && s != Shipped {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a known state", int(s)))
	}
	return nil
}

// Ship returns the state an order moves to once its shipment was confirmed.
// Only InPreparation can be shipped.
func (s State) Ship() (State, error) {
	if s != InPreparation {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("%s is not a valid state to ship", s.String()),
		)
	}
	return Shipped, nil
}
