// Package coil provides the Coil aggregate: a unit of raw material whose
// remaining weight is consumed by work-order allocations.
//
// Remaining weight is monotonically non-increasing and never negative. Because
// several work orders may draw from the same coil concurrently, the aggregate
// carries an optimistic version stamp; the persistence adapter commits the
// decrement as a compare-and-swap against the stored version so two writers
// can never jointly over-allocate the same weight.
package coil

import (
	"errors"
	"fmt"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/errs"
)

var (
	// ErrCoilIsNotConstructed is returned when a Coil was not created through
	// NewCoil or RestoreCoil.
	ErrCoilIsNotConstructed = errors.New("Coil must be created via NewCoil or RestoreCoil constructor")

	// ErrInsufficientCoilWeight indicates a consume request larger than the
	// weight remaining on the coil.
	ErrInsufficientCoilWeight = errors.New("insufficient remaining weight on coil")
)

// Coil is the aggregate root for a coil of raw material. It is looked up by
// its tag number (the human-readable identifier stamped on the coil) and
// consumed by weight as allocations are committed.
type Coil struct {
	id                 kernel.UUID
	tagNumber          string
	itemID             string
	material           string
	gauge              float64
	widthIn            float64
	totalWeightLbs     float64
	remainingWeightLbs float64
	version            int64

	isConstructed bool
}

// NewCoil creates a fresh coil with its full weight remaining.
func NewCoil(
	id kernel.UUID,
	tagNumber string,
	itemID string,
	material string,
	gauge float64,
	widthIn float64,
	totalWeightLbs float64,
) (*Coil, error) {
	return RestoreCoil(id, tagNumber, itemID, material, gauge, widthIn, totalWeightLbs, totalWeightLbs, 1)
}

// RestoreCoil reconstructs a coil from persistence, including its partially
// consumed remaining weight and version stamp.
func RestoreCoil(
	id kernel.UUID,
	tagNumber string,
	itemID string,
	material string,
	gauge float64,
	widthIn float64,
	totalWeightLbs float64,
	remainingWeightLbs float64,
	version int64,
) (*Coil, error) {
	c := &Coil{
		itemID:        itemID,
		material:      material,
		gauge:         gauge,
		widthIn:       widthIn,
		isConstructed: true,
		version:       version,
	}

	if err := errors.Join(
		c.setID(id),
		c.setTagNumber(tagNumber),
		c.setWeights(totalWeightLbs, remainingWeightLbs),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the coil was created through a constructor.
func (c *Coil) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCoilIsNotConstructed
	}
	return nil
}

// IsEqual compares coils by identity.
func (c *Coil) IsEqual(other *Coil) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the coil's unique identifier.
func (c *Coil) ID() kernel.UUID {
	return c.id
}

// TagNumber returns the external human identifier stamped on the coil.
func (c *Coil) TagNumber() string {
	return c.tagNumber
}

// ItemID returns the item identifier used for direct slitter matching.
func (c *Coil) ItemID() string {
	return c.itemID
}

// Material returns the coil's material grade.
func (c *Coil) Material() string {
	return c.material
}

// Gauge returns the coil's gauge.
func (c *Coil) Gauge() float64 {
	return c.gauge
}

// WidthIn returns the coil width in inches.
func (c *Coil) WidthIn() float64 {
	return c.widthIn
}

// TotalWeightLbs returns the coil's original weight.
func (c *Coil) TotalWeightLbs() float64 {
	return c.totalWeightLbs
}

// RemainingWeightLbs returns the weight still available for allocation.
func (c *Coil) RemainingWeightLbs() float64 {
	return c.remainingWeightLbs
}

// Version returns the optimistic-concurrency stamp read from storage.
func (c *Coil) Version() int64 {
	return c.version
}

// Consume draws weight down from the coil. The request must be positive and
// must not exceed the remaining weight; on failure nothing is mutated.
func (c *Coil) Consume(weightLbs float64) error {
	if weightLbs <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightLbs", fmt.Errorf("%v is not greater than 0", weightLbs))
	}
	if weightLbs > c.remainingWeightLbs {
		return ErrInsufficientCoilWeight
	}

	c.remainingWeightLbs -= weightLbs
	return nil
}

func (c *Coil) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Coil) setTagNumber(tagNumber string) error {
	if tagNumber == "" {
		return errs.NewValueIsRequiredError("tagNumber")
	}
	c.tagNumber = tagNumber
	return nil
}

func (c *Coil) setWeights(totalWeightLbs, remainingWeightLbs float64) error {
	if totalWeightLbs <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalWeightLbs", fmt.Errorf("%v is not greater than 0", totalWeightLbs))
	}
	if remainingWeightLbs < 0 || remainingWeightLbs > totalWeightLbs {
		return errs.NewValueIsOutOfRangeError("remainingWeightLbs", remainingWeightLbs, 0.0, totalWeightLbs)
	}

	c.totalWeightLbs = totalWeightLbs
	c.remainingWeightLbs = remainingWeightLbs
	return nil
}
