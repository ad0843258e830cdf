package workorder

// MergeLineItems combines a fresh allocation run with the work order's
// existing line items. Manually adjusted entries survive the merge untouched;
// fresh entries targeting an order line item that already has a manual entry
// are dropped, so a re-run never silently overwrites an operator's
// correction. Surviving items are resequenced from 1 in their merged order.
//
// The returned totals mirror an allocation run over the merged set: rounds
// per order line item and whether any item spans more than one round.
func MergeLineItems(existing, fresh []*LineItem) (merged []*LineItem, isMulti bool, totalRounds int) {
	adjusted := make(map[string]bool)
	for _, item := range existing {
		if item.ManuallyAdjusted() {
			adjusted[item.OrderLineItemID().String()] = true
			merged = append(merged, item)
		}
	}

	for _, item := range fresh {
		if adjusted[item.OrderLineItemID().String()] {
			continue
		}
		merged = append(merged, item)
	}

	rounds := make(map[string]int)
	for i, item := range merged {
		item.sequence = i + 1
		rounds[item.OrderLineItemID().String()]++
	}
	for _, n := range rounds {
		totalRounds += n
		if n > 1 {
			isMulti = true
		}
	}
	return merged, isMulti, totalRounds
}
