package commands

import (
	"errors"
	"fmt"
	"math"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/errs"
	"steelflow/internal/pkg/guard"
)

var (
	ErrAdjustLineItemCommandIsNotConstructed = errors.New(
		"AdjustLineItemCommand must be created via NewAdjustLineItemCommand constructor",
	)
	ErrAdjustmentIsAmbiguous = errors.New("exactly one of quantity and weight must be provided")
	ErrSequenceIsInvalid     = errors.New("sequence must be greater than 0")
)

// AdjustLineItemCommand applies a manual override to one allocated line item:
// either a new piece count or a new planned weight, never both. The untouched
// half of the pair is recomputed from the item's fixed unit weight.
//
// Example:
//
//	quantity := 8
//	cmd, err := NewAdjustLineItemCommand(workOrderID, 2, &quantity, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid adjustment: %w", err)
//	}
//
//	handler := NewAdjustLineItemCommandHandler(uowFactory, salesOrders)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to adjust line item: %w", err)
//	}
type AdjustLineItemCommand struct { //nolint:recvcheck //using for validation
	workOrderID  kernel.UUID
	sequence     int
	newQuantity  *int
	newWeightLbs *float64

	guard guard.ConstructorGuard
}

// NewAdjustLineItemCommand creates a command to manually adjust a line item,
// identified by its sequence number on the work order.
func NewAdjustLineItemCommand(
	workOrderID kernel.UUID,
	sequence int,
	newQuantity *int,
	newWeightLbs *float64,
) (AdjustLineItemCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return AdjustLineItemCommand{}, err
	}
	if sequence < 1 {
		return AdjustLineItemCommand{}, ErrSequenceIsInvalid
	}
	if (newQuantity == nil) == (newWeightLbs == nil) {
		return AdjustLineItemCommand{}, ErrAdjustmentIsAmbiguous
	}
	if newWeightLbs != nil && (math.IsNaN(*newWeightLbs) || math.IsInf(*newWeightLbs, 0)) {
		return AdjustLineItemCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"newWeightLbs", fmt.Errorf("%v is not a valid weight", *newWeightLbs))
	}

	return AdjustLineItemCommand{
		workOrderID:  workOrderID,
		sequence:     sequence,
		newQuantity:  newQuantity,
		newWeightLbs: newWeightLbs,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAdjustLineItemCommandIsNotConstructed)
}

// WorkOrderID returns the work order carrying the line item.
func (c AdjustLineItemCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// Sequence returns the line item's sequence number on the work order.
func (c AdjustLineItemCommand) Sequence() int {
	return c.sequence
}

// NewQuantity returns the requested piece count, if the edit is by quantity.
func (c AdjustLineItemCommand) NewQuantity() *int {
	return c.newQuantity
}

// NewWeightLbs returns the requested weight, if the edit is by weight.
func (c AdjustLineItemCommand) NewWeightLbs() *float64 {
	return c.newWeightLbs
}
