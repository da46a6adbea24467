package order

import (
	"fmt"

	"bistro/internal/pkg/errs"
)

// Status is the lifecycle state of an order ticket. The machine is small:
//
//	Pending ──> Fulfilled
//
// A ticket that misses a fulfillment pass keeps Pending and goes back to
// the queue. Fulfilled is final.
type Status int

const (
	// Unknown is the zero value and is never a legal ticket state.
	// It exists to catch uninitialized Status values.
	Unknown Status = iota

	// Pending means the ticket sits in the queue waiting for a station.
	Pending

	// Fulfilled means a station has prepared the ticket's recipe. Final.
	Fulfilled
)

// getStatusStrings maps every Status value, legal or not, to its name.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Fulfilled: "Fulfilled",
	}
}

// getValidStatusStrings maps only the statuses a ticket may legally hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Fulfilled: "Fulfilled",
	}
}

// Validate reports whether the Status holds a legal value.
// Pending and Fulfilled pass; Unknown (0) and anything else fail.
// Use it to check Status values arriving from external sources.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. It is safe on any Status value;
// illegal values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateFulfill checks that the ticket can move to Fulfilled without
// performing the transition. Only Pending tickets can be fulfilled;
// fulfilling twice is an error.
func (s Status) ValidateFulfill() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fulfill", s.String()),
		)
	}
	return nil
}

// ValidateCanHavePreparer checks the consistency between status and station
// attribution: a Fulfilled ticket must record the station that prepared it,
// and a ticket in any other state must not.
func (s Status) ValidateCanHavePreparer(preparer bool) error {
	if preparer && s != Fulfilled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a preparing station", s.String()),
		)
	}

	if !preparer && s == Fulfilled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no preparing station", s.String()),
		)
	}

	return nil
}

// Fulfill transitions the status to Fulfilled.
// The only legal transition is Pending -> Fulfilled; Ticket.Fulfill
// relies on this to enforce the state machine.
//
// Example:
//
//	newStatus, err := currentStatus.Fulfill()
//	if err != nil {
//	    // Handle invalid transition
//	}
func (s Status) Fulfill() (Status, error) {
	if err := s.ValidateFulfill(); err != nil {
		return 0, err
	}

	return Fulfilled, nil
}
