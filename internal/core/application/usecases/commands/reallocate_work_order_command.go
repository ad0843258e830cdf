package commands

import (
	"errors"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/guard"
)

var ErrReallocateWorkOrderCommandIsNotConstructed = errors.New(
	"ReallocateWorkOrderCommand must be created via NewReallocateWorkOrderCommand constructor",
)

// ReallocateWorkOrderCommand re-runs the allocation engine for a work order
// that has not started yet. Manually adjusted line items survive the re-run;
// only automatically generated items are replaced.
type ReallocateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReallocateWorkOrderCommand creates a command to re-run allocation.
func NewReallocateWorkOrderCommand(workOrderID kernel.UUID) (ReallocateWorkOrderCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return ReallocateWorkOrderCommand{}, err
	}

	return ReallocateWorkOrderCommand{
		workOrderID: workOrderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReallocateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrReallocateWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the work order to reallocate.
func (c ReallocateWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}
