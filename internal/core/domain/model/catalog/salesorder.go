package catalog

import (
	"fmt"
	"time"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/errs"
)

// SalesOrder is an open customer order supplied by the sales order catalog.
// Line items appear in catalog order, which fixes the deterministic matching
// and allocation sequence.
type SalesOrder struct {
	ID         kernel.UUID
	Number     string
	CustomerID kernel.UUID
	DueDate    time.Time
	Priority   int
	LineItems  []OrderLineItem
}

// Validate checks the order header and every line item.
func (o SalesOrder) Validate() error {
	if err := o.ID.Validate(); err != nil {
		return err
	}
	if err := o.CustomerID.Validate(); err != nil {
		return err
	}
	for _, item := range o.LineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// OrderLineItem is a single demand line on a sales order. Ordered quantity and
// weight are fixed for the life of the order; the remaining pair is drawn down
// as work orders consume the demand.
type OrderLineItem struct {
	ID                 kernel.UUID
	ItemCode           string
	ItemID             string
	Description        string
	OrderedQuantity    int
	OrderedWeightLbs   float64
	RemainingQuantity  int
	RemainingWeightLbs float64
	WidthIn            float64
	LengthIn           float64
	GaugeIn            float64
}

// Validate checks the line item's structural invariants: remaining amounts are
// never negative and never exceed the ordered amounts.
func (li OrderLineItem) Validate() error {
	if err := li.ID.Validate(); err != nil {
		return err
	}
	if li.ItemCode == "" {
		return errs.NewValueIsRequiredError("itemCode")
	}
	if li.OrderedQuantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderedQuantity", fmt.Errorf("%d is not greater than 0", li.OrderedQuantity))
	}
	if li.RemainingQuantity < 0 || li.RemainingQuantity > li.OrderedQuantity {
		return errs.NewValueIsOutOfRangeError("remainingQuantity", li.RemainingQuantity, 0, li.OrderedQuantity)
	}
	if li.RemainingWeightLbs < 0 || li.RemainingWeightLbs > li.OrderedWeightLbs {
		return errs.NewValueIsOutOfRangeError("remainingWeightLbs", li.RemainingWeightLbs, 0.0, li.OrderedWeightLbs)
	}
	return nil
}

// UnitWeightLbs returns the fixed per-piece weight implied by the original
// ordered pair. A line item with zero ordered weight cannot be allocated and
// is rejected here rather than producing a division by zero downstream.
func (li OrderLineItem) UnitWeightLbs() (float64, error) {
	if li.OrderedWeightLbs <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"orderedWeightLbs", fmt.Errorf("%v is not greater than 0", li.OrderedWeightLbs))
	}
	if li.OrderedQuantity <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"orderedQuantity", fmt.Errorf("%d is not greater than 0", li.OrderedQuantity))
	}
	return li.OrderedWeightLbs / float64(li.OrderedQuantity), nil
}
