package commands

import (
	"errors"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/guard"
)

var (
	ErrRecordProductionCommandIsNotConstructed = errors.New(
		"RecordProductionCommand must be created via NewRecordProductionCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// RecordProductionCommand reports produced pieces against one line item of a
// running work order.
type RecordProductionCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	sequence    int
	quantity    int

	guard guard.ConstructorGuard
}

// NewRecordProductionCommand creates a command to record production.
func NewRecordProductionCommand(
	workOrderID kernel.UUID,
	sequence int,
	quantity int,
) (RecordProductionCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return RecordProductionCommand{}, err
	}
	if sequence < 1 {
		return RecordProductionCommand{}, ErrSequenceIsInvalid
	}
	if quantity <= 0 {
		return RecordProductionCommand{}, ErrQuantityIsInvalid
	}

	return RecordProductionCommand{
		workOrderID: workOrderID,
		sequence:    sequence,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordProductionCommand) Validate() error {
	return c.guard.Validate(ErrRecordProductionCommandIsNotConstructed)
}

// WorkOrderID returns the work order being produced.
func (c RecordProductionCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// Sequence returns the line item's sequence number on the work order.
func (c RecordProductionCommand) Sequence() int {
	return c.sequence
}

// Quantity returns the number of pieces produced.
func (c RecordProductionCommand) Quantity() int {
	return c.quantity
}
