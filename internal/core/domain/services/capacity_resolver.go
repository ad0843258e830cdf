package services

import (
	"steelflow/internal/core/domain/model/catalog"
)

// CapacityResolver computes the binding skid-capacity ceiling for a
// (machine, customer) pair: the heaviest skid the run may produce.
type CapacityResolver struct{}

// NewCapacityResolver creates a new CapacityResolver instance.
func NewCapacityResolver() CapacityResolver {
	return CapacityResolver{}
}

// Resolve returns min(machine ceiling, customer ceiling). When the customer
// is unknown (nil, because the directory lookup failed) the machine ceiling
// alone binds. A missing customer record is a fallback, not an error.
func (CapacityResolver) Resolve(machine catalog.Machine, customer *catalog.Customer) float64 {
	ceiling := machine.MaxSkidCapacityLbs
	if customer != nil && customer.MaxSkidCapacityLbs > 0 && customer.MaxSkidCapacityLbs < ceiling {
		ceiling = customer.MaxSkidCapacityLbs
	}
	return ceiling
}
