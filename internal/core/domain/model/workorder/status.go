package workorder

import (
	"errors"
	"fmt"

	"steelflow/internal/pkg/errs"
)

// ErrIllegalTransition is returned by every lifecycle method when the
// requested transition is not allowed from the current status. A failed
// transition never mutates the work order and never appends an event.
var ErrIllegalTransition = errors.New("illegal work order status transition")

// Status represents the lifecycle state of a work order.
// It implements a state machine with defined transitions to ensure
// work orders follow the correct shop-floor workflow.
//
// State transitions:
//
//	Draft ──> Pending ──┐
//	  │                 ▼
//	  └───────────> InProgress <──> Awaiting
//	                    │
//	                    ▼
//	                Completed
//
// Any non-terminal state may transition to Canceled. Completed and Canceled
// are terminal: no further transitions are accepted.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Draft is the initial status produced by the planning flow.
	Draft

	// Pending indicates the work order has been released to the floor
	// and is waiting to be started.
	Pending

	// InProgress indicates the machine is actively running the work order.
	// Execution time accumulates only in this status.
	InProgress

	// Awaiting indicates the run is paused for a stated reason.
	Awaiting

	// Completed indicates the run finished. Terminal.
	Completed

	// Canceled indicates the work order was abandoned. Terminal.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Draft:         "Draft",
		Pending:       "Pending",
		InProgress:    "InProgress",
		Awaiting:      "Awaiting",
		Completed:     "Completed",
		Canceled:      "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "Draft",
		Pending:    "Pending",
		InProgress: "InProgress",
		Awaiting:   "Awaiting",
		Completed:  "Completed",
		Canceled:   "Canceled",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// Schedule transitions Draft to Pending, releasing the work order to the floor.
func (s Status) Schedule() (Status, error) {
	if s != Draft {
		return 0, fmt.Errorf("%w: cannot schedule from %s", ErrIllegalTransition, s)
	}
	return Pending, nil
}

// Start transitions Draft or Pending to InProgress.
// The creation flow produces Draft; work orders released to the floor sit in
// Pending. Both may be started directly.
func (s Status) Start() (Status, error) {
	if s != Draft && s != Pending {
		return 0, fmt.Errorf("%w: cannot start from %s", ErrIllegalTransition, s)
	}
	return InProgress, nil
}

// Pause transitions InProgress to Awaiting.
func (s Status) Pause() (Status, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: cannot pause from %s", ErrIllegalTransition, s)
	}
	return Awaiting, nil
}

// Resume transitions Awaiting back to InProgress.
func (s Status) Resume() (Status, error) {
	if s != Awaiting {
		return 0, fmt.Errorf("%w: cannot resume from %s", ErrIllegalTransition, s)
	}
	return InProgress, nil
}

// Complete transitions InProgress to Completed. Terminal.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: cannot complete from %s", ErrIllegalTransition, s)
	}
	return Completed, nil
}

// Cancel transitions any non-terminal status to Canceled. Terminal.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, fmt.Errorf("%w: cannot cancel from %s", ErrIllegalTransition, s)
	}
	return Canceled, nil
}
