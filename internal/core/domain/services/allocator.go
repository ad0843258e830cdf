package services

import (
	"fmt"
	"math"

	"steelflow/internal/core/domain/model/catalog"
	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/pkg/errs"
)

// Allocation is the result of one allocation run: the produced line items in
// sequence order plus the run totals the work order records.
type Allocation struct {
	LineItems         []*workorder.LineItem
	IsMultiWorkOrder  bool
	TotalRounds       int
	ConsumedWeightLbs float64
}

// Allocator partitions matched demand into work-order line items, honoring the
// three binding constraints: skid-capacity ceiling, remaining coil weight, and
// remaining line-item demand.
type Allocator struct {
	resolver CapacityResolver
}

// NewAllocator creates a new Allocator instance.
func NewAllocator() Allocator {
	return Allocator{resolver: NewCapacityResolver()}
}

// Allocate greedily walks the matches in order. Each round plans
// min(ceiling, coil remaining, demand remaining) pounds, floors the piece
// count from the fixed unit weight, and records the fractional remainder as
// residual weight on the emitted item. A line item whose demand outlives one
// round is split across further rounds until the demand or the coil runs out.
//
// coilWeightLbs is the run-local coil counter: read once by the caller before
// the run, decremented here as rounds are produced, never re-read from
// storage mid-run.
func (a Allocator) Allocate(
	machine catalog.Machine,
	coilWeightLbs float64,
	matches []Match,
) (Allocation, error) {
	if err := machine.Validate(); err != nil {
		return Allocation{}, err
	}
	if coilWeightLbs < 0 || math.IsNaN(coilWeightLbs) || math.IsInf(coilWeightLbs, 0) {
		return Allocation{}, errs.NewValueIsInvalidErrorWithCause(
			"coilWeightLbs", fmt.Errorf("%v is not a valid weight", coilWeightLbs))
	}

	result := Allocation{}
	remaining := coilWeightLbs
	sequence := 1

	for _, match := range matches {
		unitWeight, err := match.LineItem.UnitWeightLbs()
		if err != nil {
			return Allocation{}, fmt.Errorf("order %s item %s: %w",
				match.Order.Number, match.LineItem.ItemCode, err)
		}

		ceiling := a.resolver.Resolve(machine, match.Customer)
		demand := match.LineItem.RemainingWeightLbs
		rounds := 0

		for {
			plannedWeight := min(ceiling, remaining, demand)
			if plannedWeight <= 0 {
				break
			}

			plannedQuantity := int(math.Floor(plannedWeight / unitWeight))
			residualWeight := plannedWeight - float64(plannedQuantity)*unitWeight

			// When the round does not cover the remaining demand, report the
			// constraint that cut it short. Skid capacity wins a tie with the
			// coil so the machine/customer ceiling is what operators see.
			splitReason := workorder.SplitNone
			if plannedWeight < demand {
				switch {
				case plannedWeight == ceiling:
					splitReason = workorder.SplitSkidCapacity
				case plannedWeight == remaining:
					splitReason = workorder.SplitCoilCapacity
				}
			}

			customerName := ""
			capacitySnapshot := ceiling
			if match.Customer != nil {
				customerName = match.Customer.Name
				if match.Customer.MaxSkidCapacityLbs > 0 {
					capacitySnapshot = match.Customer.MaxSkidCapacityLbs
				}
			}

			item, err := workorder.NewLineItem(
				match.Order.ID, match.LineItem.ID,
				customerName, capacitySnapshot,
				unitWeight, plannedQuantity, plannedWeight, residualWeight,
				splitReason, sequence,
			)
			if err != nil {
				return Allocation{}, err
			}

			result.LineItems = append(result.LineItems, item)
			sequence++
			rounds++
			demand -= plannedWeight
			remaining -= plannedWeight
		}

		if rounds > 1 {
			result.IsMultiWorkOrder = true
		}
		result.TotalRounds += rounds
	}

	result.ConsumedWeightLbs = coilWeightLbs - remaining
	return result, nil
}
