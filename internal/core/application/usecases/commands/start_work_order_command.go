package commands

import (
	"errors"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/guard"
)

var (
	ErrStartWorkOrderCommandIsNotConstructed = errors.New(
		"StartWorkOrderCommand must be created via NewStartWorkOrderCommand constructor",
	)
	ErrOperatorIsRequired = errors.New("operator is required")
)

// StartWorkOrderCommand begins execution of a work order on the floor.
//
// Example:
//
//	cmd, err := NewStartWorkOrderCommand(workOrderID, "operator.mlee")
//	if err != nil {
//	    return fmt.Errorf("invalid start request: %w", err)
//	}
//
//	handler := NewStartWorkOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start work order: %w", err)
//	}
type StartWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	operator    string

	guard guard.ConstructorGuard
}

// NewStartWorkOrderCommand creates a command to start a work order.
// Validates that the identifier is valid and an operator is named.
func NewStartWorkOrderCommand(workOrderID kernel.UUID, operator string) (StartWorkOrderCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return StartWorkOrderCommand{}, err
	}
	if operator == "" {
		return StartWorkOrderCommand{}, ErrOperatorIsRequired
	}

	return StartWorkOrderCommand{
		workOrderID: workOrderID,
		operator:    operator,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the work order to start.
func (c StartWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// Operator returns the operator starting the run.
func (c StartWorkOrderCommand) Operator() string {
	return c.operator
}
