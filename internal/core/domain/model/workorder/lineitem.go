package workorder

import (
	"errors"
	"fmt"
	"math"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem constructor")

// SplitReason records why an allocation round did not cover the full
// remaining demand of its order line item.
type SplitReason int

const (
	// SplitNone means the round covered the remaining demand.
	SplitNone SplitReason = iota

	// SplitSkidCapacity means the binding skid-capacity ceiling
	// (machine or customer) cut the round short.
	SplitSkidCapacity

	// SplitCoilCapacity means the remaining coil weight cut the round short.
	SplitCoilCapacity
)

func getSplitReasonStrings() map[SplitReason]string {
	return map[SplitReason]string{
		SplitNone:         "none",
		SplitSkidCapacity: "skid-capacity",
		SplitCoilCapacity: "coil-capacity",
	}
}

// String returns the lower-case wire form of the split reason.
func (r SplitReason) String() string {
	if str, ok := getSplitReasonStrings()[r]; ok {
		return str
	}
	return "none"
}

// LineItemStatus tracks per-item execution on the shop floor.
type LineItemStatus int

const (
	// ItemPending means no pieces have been produced yet.
	ItemPending LineItemStatus = iota

	// ItemInProgress means some but not all pieces have been produced.
	ItemInProgress

	// ItemCompleted means every planned piece has been produced.
	ItemCompleted
)

func getLineItemStatusStrings() map[LineItemStatus]string {
	return map[LineItemStatus]string{
		ItemPending:    "pending",
		ItemInProgress: "in-progress",
		ItemCompleted:  "completed",
	}
}

// String returns the lower-case wire form of the item status.
func (s LineItemStatus) String() string {
	if str, ok := getLineItemStatusStrings()[s]; ok {
		return str
	}
	return "pending"
}

// LineItem is one schedulable slice of demand inside a work order. It traces
// back to a sales order line item and carries a snapshot of the customer's
// skid capacity as it stood when the allocation was made, so later changes to
// the customer record never rewrite what the allocation honored.
//
// PlannedWeightLbs and PlannedQuantity are linked through the fixed unit
// weight of the original order line item. Because quantities are floored, a
// round may carry a small ResidualWeightLbs that has weight allocated but no
// whole piece to produce it; the residual is recorded rather than discarded.
type LineItem struct {
	salesOrderID       kernel.UUID
	orderLineItemID    kernel.UUID
	customerName       string
	customerMaxSkidLbs float64
	unitWeightLbs      float64
	plannedQuantity    int
	plannedWeightLbs   float64
	residualWeightLbs  float64
	processedQuantity  int
	status             LineItemStatus
	splitReason        SplitReason
	manuallyAdjusted   bool
	sequence           int

	isConstructed bool
}

// NewLineItem creates a freshly allocated line item with no production
// recorded against it.
func NewLineItem(
	salesOrderID kernel.UUID,
	orderLineItemID kernel.UUID,
	customerName string,
	customerMaxSkidLbs float64,
	unitWeightLbs float64,
	plannedQuantity int,
	plannedWeightLbs float64,
	residualWeightLbs float64,
	splitReason SplitReason,
	sequence int,
) (*LineItem, error) {
	return RestoreLineItem(
		salesOrderID, orderLineItemID, customerName, customerMaxSkidLbs, unitWeightLbs,
		plannedQuantity, plannedWeightLbs, residualWeightLbs,
		0, ItemPending, splitReason, false, sequence,
	)
}

// RestoreLineItem reconstructs a line item from persistence, including its
// execution progress and manual-adjustment flag.
func RestoreLineItem(
	salesOrderID kernel.UUID,
	orderLineItemID kernel.UUID,
	customerName string,
	customerMaxSkidLbs float64,
	unitWeightLbs float64,
	plannedQuantity int,
	plannedWeightLbs float64,
	residualWeightLbs float64,
	processedQuantity int,
	status LineItemStatus,
	splitReason SplitReason,
	manuallyAdjusted bool,
	sequence int,
) (*LineItem, error) {
	if err := salesOrderID.Validate(); err != nil {
		return nil, err
	}
	if err := orderLineItemID.Validate(); err != nil {
		return nil, err
	}
	if unitWeightLbs <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"unitWeightLbs", fmt.Errorf("%v is not greater than 0", unitWeightLbs))
	}
	if plannedQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"plannedQuantity", fmt.Errorf("%d is negative", plannedQuantity))
	}
	if plannedWeightLbs < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"plannedWeightLbs", fmt.Errorf("%v is negative", plannedWeightLbs))
	}
	if processedQuantity < 0 || processedQuantity > plannedQuantity {
		return nil, errs.NewValueIsOutOfRangeError("processedQuantity", processedQuantity, 0, plannedQuantity)
	}
	if sequence < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"sequence", fmt.Errorf("%d is not greater than 0", sequence))
	}

	return &LineItem{
		salesOrderID:       salesOrderID,
		orderLineItemID:    orderLineItemID,
		customerName:       customerName,
		customerMaxSkidLbs: customerMaxSkidLbs,
		unitWeightLbs:      unitWeightLbs,
		plannedQuantity:    plannedQuantity,
		plannedWeightLbs:   plannedWeightLbs,
		residualWeightLbs:  residualWeightLbs,
		processedQuantity:  processedQuantity,
		status:             status,
		splitReason:        splitReason,
		manuallyAdjusted:   manuallyAdjusted,
		sequence:           sequence,
		isConstructed:      true,
	}, nil
}

// Validate ensures the line item was created through a constructor.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// SalesOrderID returns the id of the sales order this slice traces to.
func (li *LineItem) SalesOrderID() kernel.UUID {
	return li.salesOrderID
}

// OrderLineItemID returns the id of the originating order line item.
func (li *LineItem) OrderLineItemID() kernel.UUID {
	return li.orderLineItemID
}

// CustomerName returns the customer snapshot taken at allocation time.
func (li *LineItem) CustomerName() string {
	return li.customerName
}

// CustomerMaxSkidLbs returns the customer skid capacity snapshot taken at
// allocation time.
func (li *LineItem) CustomerMaxSkidLbs() float64 {
	return li.customerMaxSkidLbs
}

// UnitWeightLbs returns the fixed per-piece weight from the original order
// line item.
func (li *LineItem) UnitWeightLbs() float64 {
	return li.unitWeightLbs
}

// PlannedQuantity returns the number of pieces planned for this slice.
func (li *LineItem) PlannedQuantity() int {
	return li.plannedQuantity
}

// PlannedWeightLbs returns the weight planned for this slice.
func (li *LineItem) PlannedWeightLbs() float64 {
	return li.plannedWeightLbs
}

// ResidualWeightLbs returns the allocated weight left over after flooring the
// quantity, if any.
func (li *LineItem) ResidualWeightLbs() float64 {
	return li.residualWeightLbs
}

// ProcessedQuantity returns the pieces produced so far.
func (li *LineItem) ProcessedQuantity() int {
	return li.processedQuantity
}

// ProcessedWeightLbs returns plannedWeight scaled by production progress.
func (li *LineItem) ProcessedWeightLbs() float64 {
	if li.plannedQuantity == 0 {
		return 0
	}
	return li.plannedWeightLbs * float64(li.processedQuantity) / float64(li.plannedQuantity)
}

// Status returns the per-item execution status.
func (li *LineItem) Status() LineItemStatus {
	return li.status
}

// SplitReason returns why this slice did not cover the full remaining demand.
func (li *LineItem) SplitReason() SplitReason {
	return li.splitReason
}

// ManuallyAdjusted reports whether an operator edited the planned pair.
// Manual edits are an explicit, audited override of the capacity constraint
// and are never overwritten by a later allocation run.
func (li *LineItem) ManuallyAdjusted() bool {
	return li.manuallyAdjusted
}

// Sequence returns the item's position in the allocation run, shared across
// all line items produced by the run (starting at 1).
func (li *LineItem) Sequence() int {
	return li.sequence
}

// AdjustQuantity sets a new planned quantity and recomputes the planned
// weight from the fixed unit weight. The value is clamped to
// [0, maxQuantity], where maxQuantity is the remaining quantity on the
// originating order line item. Marks the item manually adjusted.
func (li *LineItem) AdjustQuantity(newQuantity, maxQuantity int) error {
	if maxQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxQuantity", fmt.Errorf("%d is negative", maxQuantity))
	}

	quantity := min(max(newQuantity, 0), maxQuantity)

	li.plannedQuantity = quantity
	li.plannedWeightLbs = float64(quantity) * li.unitWeightLbs
	li.residualWeightLbs = 0
	li.manuallyAdjusted = true
	li.processedQuantity = min(li.processedQuantity, quantity)
	li.refreshStatus()
	return nil
}

// AdjustWeight sets a new planned weight and recomputes the planned quantity
// as floor(weight / unitWeight). The value is clamped to [0, maxWeightLbs],
// where maxWeightLbs is the remaining weight on the originating order line
// item. Marks the item manually adjusted.
func (li *LineItem) AdjustWeight(newWeightLbs, maxWeightLbs float64) error {
	if math.IsNaN(newWeightLbs) || math.IsInf(newWeightLbs, 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"plannedWeightLbs", fmt.Errorf("%v is not a finite weight", newWeightLbs))
	}
	if maxWeightLbs < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxWeightLbs", fmt.Errorf("%v is negative", maxWeightLbs))
	}

	weight := math.Min(math.Max(newWeightLbs, 0), maxWeightLbs)
	quantity := int(math.Floor(weight / li.unitWeightLbs))

	li.plannedQuantity = quantity
	li.plannedWeightLbs = weight
	li.residualWeightLbs = weight - float64(quantity)*li.unitWeightLbs
	li.manuallyAdjusted = true
	li.processedQuantity = min(li.processedQuantity, quantity)
	li.refreshStatus()
	return nil
}

// RecordProduction adds produced pieces to the item. Production can never
// exceed the planned quantity.
func (li *LineItem) RecordProduction(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if li.processedQuantity+quantity > li.plannedQuantity {
		return errs.NewValueIsOutOfRangeError(
			"processedQuantity", li.processedQuantity+quantity, 0, li.plannedQuantity)
	}

	li.processedQuantity += quantity
	li.refreshStatus()
	return nil
}

func (li *LineItem) refreshStatus() {
	switch {
	case li.plannedQuantity > 0 && li.processedQuantity == li.plannedQuantity:
		li.status = ItemCompleted
	case li.processedQuantity > 0:
		li.status = ItemInProgress
	default:
		li.status = ItemPending
	}
}
