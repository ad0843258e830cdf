package commands

import (
	"errors"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/guard"
)

var ErrCancelWorkOrderCommandIsNotConstructed = errors.New(
	"CancelWorkOrderCommand must be created via NewCancelWorkOrderCommand constructor",
)

// CancelWorkOrderCommand abandons a work order from any non-terminal status.
type CancelWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	notes       string
	operator    string

	guard guard.ConstructorGuard
}

// NewCancelWorkOrderCommand creates a command to cancel a work order.
func NewCancelWorkOrderCommand(
	workOrderID kernel.UUID,
	notes string,
	operator string,
) (CancelWorkOrderCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return CancelWorkOrderCommand{}, err
	}

	return CancelWorkOrderCommand{
		workOrderID: workOrderID,
		notes:       notes,
		operator:    operator,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the work order to cancel.
func (c CancelWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// Notes returns free-form cancellation notes.
func (c CancelWorkOrderCommand) Notes() string {
	return c.notes
}

// Operator returns the actor canceling the work order, if named.
func (c CancelWorkOrderCommand) Operator() string {
	return c.operator
}
