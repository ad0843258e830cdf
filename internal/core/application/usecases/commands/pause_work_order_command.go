package commands

import (
	"errors"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/pkg/guard"
)

var ErrPauseWorkOrderCommandIsNotConstructed = errors.New(
	"PauseWorkOrderCommand must be created via NewPauseWorkOrderCommand constructor",
)

// PauseWorkOrderCommand suspends a running work order for a stated reason.
// The reason is parsed and validated at construction, so a misspelled reason
// never reaches the aggregate.
type PauseWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	reason      workorder.PauseReason
	operator    string

	guard guard.ConstructorGuard
}

// NewPauseWorkOrderCommand creates a command to pause a work order.
// The reason must be one of the recognized pause reasons.
func NewPauseWorkOrderCommand(
	workOrderID kernel.UUID,
	reason string,
	operator string,
) (PauseWorkOrderCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return PauseWorkOrderCommand{}, err
	}

	parsed, err := workorder.ParsePauseReason(reason)
	if err != nil {
		return PauseWorkOrderCommand{}, err
	}

	return PauseWorkOrderCommand{
		workOrderID: workOrderID,
		reason:      parsed,
		operator:    operator,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PauseWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrPauseWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the work order to pause.
func (c PauseWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// Reason returns the validated pause reason.
func (c PauseWorkOrderCommand) Reason() workorder.PauseReason {
	return c.reason
}

// Operator returns the operator pausing the run, if named.
func (c PauseWorkOrderCommand) Operator() string {
	return c.operator
}
