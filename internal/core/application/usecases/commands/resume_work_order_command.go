package commands

import (
	"errors"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/guard"
)

var ErrResumeWorkOrderCommandIsNotConstructed = errors.New(
	"ResumeWorkOrderCommand must be created via NewResumeWorkOrderCommand constructor",
)

// ResumeWorkOrderCommand restarts a paused work order.
type ResumeWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	operator    string

	guard guard.ConstructorGuard
}

// NewResumeWorkOrderCommand creates a command to resume a paused work order.
func NewResumeWorkOrderCommand(workOrderID kernel.UUID, operator string) (ResumeWorkOrderCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return ResumeWorkOrderCommand{}, err
	}

	return ResumeWorkOrderCommand{
		workOrderID: workOrderID,
		operator:    operator,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrResumeWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the work order to resume.
func (c ResumeWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// Operator returns the operator resuming the run, if named.
func (c ResumeWorkOrderCommand) Operator() string {
	return c.operator
}
