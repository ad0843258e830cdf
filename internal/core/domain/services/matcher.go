package services

import (
	"steelflow/internal/core/domain/model/catalog"
	"steelflow/internal/core/domain/model/coil"
)

// Match is one (order, line item) pair that a coil can satisfy on a given
// machine. Customer is resolved by the caller after matching; a nil Customer
// means the directory lookup failed and the machine ceiling alone binds.
type Match struct {
	Order    catalog.SalesOrder
	LineItem catalog.OrderLineItem
	Customer *catalog.Customer
}

// Matcher finds the open order demand producible from a coil on a machine.
type Matcher struct{}

// NewMatcher creates a new Matcher instance.
func NewMatcher() Matcher {
	return Matcher{}
}

// Match returns matched pairs in deterministic order: orders in catalog
// iteration order, line items in order within each sales order.
//
// Cut-to-length machines match any line item whose item code appears in the
// coil's producible capability set. Slitters require an exact item identifier
// match against the coil. Other machine categories take no part in automatic
// matching and yield an empty result.
func (Matcher) Match(
	machine catalog.Machine,
	c *coil.Coil,
	orders []catalog.SalesOrder,
	producibleItemCodes map[string]struct{},
) ([]Match, error) {
	if err := machine.Validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !machine.Category.SupportsMatching() {
		return nil, nil
	}

	var matches []Match
	for _, order := range orders {
		for _, item := range order.LineItems {
			switch machine.Category {
			case catalog.CTL:
				if _, ok := producibleItemCodes[item.ItemCode]; !ok {
					continue
				}
			case catalog.Slitter:
				if item.ItemID == "" || item.ItemID != c.ItemID() {
					continue
				}
			}
			matches = append(matches, Match{Order: order, LineItem: item})
		}
	}
	return matches, nil
}
