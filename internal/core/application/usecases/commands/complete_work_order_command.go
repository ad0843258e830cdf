package commands

import (
	"errors"
	"fmt"
	"math"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/errs"
	"steelflow/internal/pkg/guard"
)

var ErrCompleteWorkOrderCommandIsNotConstructed = errors.New(
	"CompleteWorkOrderCommand must be created via NewCompleteWorkOrderCommand constructor",
)

// CompleteWorkOrderCommand finishes a running work order. The actual produced
// weight is optional; when omitted the total planned weight is reported.
type CompleteWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID     kernel.UUID
	actualWeightLbs *float64
	notes           string
	operator        string

	guard guard.ConstructorGuard
}

// NewCompleteWorkOrderCommand creates a command to complete a work order.
// A provided actual weight must be a finite, non-negative number.
func NewCompleteWorkOrderCommand(
	workOrderID kernel.UUID,
	actualWeightLbs *float64,
	notes string,
	operator string,
) (CompleteWorkOrderCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return CompleteWorkOrderCommand{}, err
	}
	if actualWeightLbs != nil {
		w := *actualWeightLbs
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return CompleteWorkOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"actualWeightLbs", fmt.Errorf("%v is not a valid weight", w))
		}
	}

	return CompleteWorkOrderCommand{
		workOrderID:     workOrderID,
		actualWeightLbs: actualWeightLbs,
		notes:           notes,
		operator:        operator,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the work order to complete.
func (c CompleteWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// ActualWeightLbs returns the reported produced weight, if given.
func (c CompleteWorkOrderCommand) ActualWeightLbs() *float64 {
	return c.actualWeightLbs
}

// Notes returns free-form completion notes.
func (c CompleteWorkOrderCommand) Notes() string {
	return c.notes
}

// Operator returns the operator completing the run, if named.
func (c CompleteWorkOrderCommand) Operator() string {
	return c.operator
}
