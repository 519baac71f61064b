package workorder

import (
	"fmt"

	"workorder/internal/pkg/errs"
)

// Status represents the lifecycle state of a work order.
//
// The workflow is deliberately permissive: any non-terminal status may move
// to any other valid status, forward or backward, so that a mis-click can be
// corrected. The only hard rule is terminality: once an order is Invoiced or
// Cancelled, no further transition is allowed.
//
// Status is a value object that validates transitions and provides the wire
// representation used by the API and persisted by the read models.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status of every newly created work order.
	Open

	// InProgress indicates work on the vehicle has started.
	InProgress

	// Completed indicates the maintenance work is finished but not yet billed.
	Completed

	// ReadyForInvoicing indicates the order's line items have been finalized
	// and handed over for billing.
	ReadyForInvoicing

	// Invoiced indicates the order has been billed. Terminal.
	Invoiced

	// Cancelled indicates the order was abandoned. Terminal.
	Cancelled
)

// getStatusStrings returns the wire names for all Status values,
// including Unknown, to support string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		Open:              "OPEN",
		InProgress:        "IN_PROGRESS",
		Completed:         "COMPLETED",
		ReadyForInvoicing: "READY_FOR_INVOICING",
		Invoiced:          "INVOICED",
		Cancelled:         "CANCELLED",
	}
}

// getValidStatusStrings returns only valid Status values, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:              "OPEN",
		InProgress:        "IN_PROGRESS",
		Completed:         "COMPLETED",
		ReadyForInvoicing: "READY_FOR_INVOICING",
		Invoiced:          "INVOICED",
		Cancelled:         "CANCELLED",
	}
}

// StatusFromString parses the wire name of a status (for example "IN_PROGRESS").
// Returns an error for unknown names so invalid API input never reaches the
// state machine as a usable value.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("OPEN", "IN_PROGRESS", ...).
// Invalid values render as "UNKNOWN". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
// Invoiced and Cancelled are the terminal states.
func (s Status) IsTerminal() bool {
	return s == Invoiced || s == Cancelled
}

// TransitionTo validates a transition from the receiver to next and returns
// the new status on acceptance.
//
// Accepted: any valid non-terminal status to any valid status, including
// itself. Rejected: any transition originating from a terminal status, and
// any transition involving an invalid status value.
//
// TransitionTo never mutates anything; the caller commits the returned
// status only after the backing store confirms the change, so a failed
// remote update leaves the order re-loadable in its prior state.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("%s is a terminal state", s.String()),
		)
	}

	return next, nil
}
