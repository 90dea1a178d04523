package order

import (
	"errors"
	"fmt"
	"strings"

	"fastorder/internal/pkg/errs"
)

var (
	// ErrOrderFinalized is returned when a transition is attempted on an order
	// that already reached a terminal status (Completed or Cancelled).
	ErrOrderFinalized = errors.New("order is in a terminal status")

	// ErrStatusUnchanged is returned when the requested status equals the
	// current one.
	ErrStatusUnchanged = errors.New("order already has the requested status")

	// ErrStatusSequenceViolation is returned when the requested status skips or
	// reverses the fixed preparation sequence. The wrapped message names the
	// status the order must move to next.
	ErrStatusSequenceViolation = errors.New("order status transition out of sequence")
)

// Status represents the lifecycle state of an order. It implements a strict
// linear state machine with a single escape hatch:
//
//	Pending ──> Received ──> Preparing ──> Ready ──> Completed
//	    │           │            │           │
//	    └───────────┴────────────┴───────────┴──> Cancelled
//
// Completed and Cancelled are terminal; no further transition is legal once
// either is reached. Every other transition must step to the immediate
// successor in the sequence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order, awaiting
	// confirmation by the kitchen.
	Pending

	// Received indicates the order was accepted; moving here fires the stock
	// decrement side effect in the status-update use case.
	Received

	// Preparing indicates the order is being prepared.
	Preparing

	// Ready indicates the order is ready for pickup.
	Ready

	// Completed indicates the order was delivered to the customer. Terminal.
	Completed

	// Cancelled indicates the order was abandoned before completion. Terminal,
	// reachable from any non-terminal status.
	Cancelled
)

// preparationSequence is the fixed forward path an order walks through.
// Cancelled sits outside the sequence and is reachable from any non-terminal
// member.
var preparationSequence = []Status{Pending, Received, Preparing, Ready, Completed}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Received:  "Received",
		Preparing: "Preparing",
		Ready:     "Ready",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Received:  "Received",
		Preparing: "Preparing",
		Ready:     "Ready",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status name, case-insensitively.
// Used when accepting status values from transport or persistence.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the defined lifecycle values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is legal from this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// successor returns the next status in the preparation sequence and whether
// one exists.
func (s Status) successor() (Status, bool) {
	for i, member := range preparationSequence {
		if member == s && i+1 < len(preparationSequence) {
			return preparationSequence[i+1], true
		}
	}
	return Unknown, false
}

// Transition validates moving from the current status to next and returns the
// resulting status.
//
// Rules, checked in order:
//   - the current status must not be terminal (ErrOrderFinalized)
//   - next must differ from the current status (ErrStatusUnchanged)
//   - Cancelled is always reachable from a non-terminal status
//   - otherwise next must be the immediate successor in the preparation
//     sequence (ErrStatusSequenceViolation, naming the required next status)
func (s Status) Transition(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: %s accepts no further transitions", ErrOrderFinalized, s)
	}
	if next == s {
		return Unknown, fmt.Errorf("%w: order is already %s", ErrStatusUnchanged, s)
	}
	if next == Cancelled {
		return Cancelled, nil
	}

	required, ok := s.successor()
	if !ok || next != required {
		return Unknown, fmt.Errorf("%w: %s must move to %s next", ErrStatusSequenceViolation, s, required)
	}

	return next, nil
}
