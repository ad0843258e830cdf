package catalog

import (
	"fmt"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/errs"
)

// Customer is read-only reference data from the customer directory.
// MaxSkidCapacityLbs is the heaviest skid the customer's dock can receive and
// participates in the binding capacity ceiling during allocation.
type Customer struct {
	ID                  kernel.UUID
	Name                string
	MaxSkidCapacityLbs  float64
	DeliveryWindow      string
	SpecialInstructions string
}

// Validate checks the customer record is usable for capacity resolution.
func (c Customer) Validate() error {
	if err := c.ID.Validate(); err != nil {
		return err
	}
	if c.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if c.MaxSkidCapacityLbs <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxSkidCapacityLbs", fmt.Errorf("%v is not greater than 0", c.MaxSkidCapacityLbs))
	}
	return nil
}
