package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the processing stage of an order.
// It implements a state machine over the physical handling sequence:
//
//	request ──> washing ──> drying ──> ironing ──> ready ──> completed
//
// Transitions move exactly one stage forward at a time; skipping a stage is
// rejected with a message naming the stage that must be passed first.
// Cancelled is an absorbing state reachable from any non-terminal stage.
// Completion additionally requires the order to be paid, enforced by the
// Order aggregate.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Request is the initial status: the order is registered and awaiting
	// processing.
	Request

	// Washing indicates the laundry is in the wash stage.
	Washing

	// Drying indicates the laundry is in the drying stage.
	Drying

	// Ironing indicates the laundry is in the ironing stage.
	Ironing

	// Ready indicates the laundry is ready for pickup or delivery.
	Ready

	// Completed indicates the order was handed over. Final state.
	Completed

	// Cancelled is the absorbing out-of-band state. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Request:       "request",
		Washing:       "washing",
		Drying:        "drying",
		Ironing:       "ironing",
		Ready:         "ready",
		Completed:     "completed",
		Cancelled:     "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Request:   "request",
		Washing:   "washing",
		Drying:    "drying",
		Ironing:   "ironing",
		Ready:     "ready",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase status name used in persistence and the API.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status name as used in the API and persistence.
func StatusFromString(v string) (Status, error) {
	for s, str := range getValidStatusStrings() {
		if str == v {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", v),
	)
}

// IsTerminal reports whether no further stage transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Next returns the following stage in the processing sequence.
//
// Returns an error for terminal states (Completed, Cancelled) and for
// invalid status values.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return UnknownStatus, err
	}
	if s.IsTerminal() {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is a terminal status", s),
		)
	}
	return s + 1, nil
}

// AdvanceTo validates a transition from the current stage to target and
// returns the resulting status.
//
// Rules:
//   - target equal to the current stage is a hold: allowed, no change
//   - exactly one stage forward is allowed
//   - skipping a stage is rejected, naming the required intermediate stage
//     ("must pass through <stage> first")
//   - moving backwards is rejected
//   - terminal states accept no transitions
//
// The payment gate on Completed is enforced by Order.AdvanceStatusTo, which
// has access to the order's payment state.
func (s Status) AdvanceTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return UnknownStatus, err
	}
	if err := target.Validate(); err != nil {
		return UnknownStatus, err
	}

	if target == s {
		return s, nil
	}

	if s.IsTerminal() {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("order is already %s", s),
		)
	}

	if target == Cancelled {
		return Cancelled, nil
	}

	next, err := s.Next()
	if err != nil {
		return UnknownStatus, err
	}

	if target == next {
		return target, nil
	}

	if target > next {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("cannot move from %s to %s: must pass through %s first", s, target, next),
		)
	}

	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status transition is invalid",
		fmt.Errorf("cannot move from %s back to %s", s, target),
	)
}
