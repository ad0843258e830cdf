// Package catalog holds the read-only reference data the allocation core
// consumes: production machines, customers, and open sales orders. These
// records are owned by external collaborators (the surrounding warehouse
// system) and are never mutated here; they are plain structs with validation
// rather than full aggregates.
//
// The one derived value with business meaning is OrderLineItem.UnitWeightLbs:
// the fixed per-piece weight implied by the ordered quantity and weight of the
// original line item. Allocation and manual overrides always derive it from
// the original, never from already-adjusted data.
package catalog
