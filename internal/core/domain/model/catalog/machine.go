package catalog

import (
	"fmt"

	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/pkg/errs"
)

// MachineCategory is the closed set of production machine types. It determines
// how order line items are matched against a coil: CTL machines match through
// the coil's producible-item capability set, Slitters match on exact item
// identifier, and the remaining categories never produce automatic matches.
type MachineCategory int

const (
	// UnknownCategory represents an invalid or undefined category.
	// This value (0) helps catch uninitialized MachineCategory values.
	UnknownCategory MachineCategory = iota

	// CTL is a cut-to-length line.
	CTL

	// Slitter slits coils into narrower strips.
	Slitter

	// Picking is a picking station; not matched automatically.
	Picking

	// Packing is a packing station; not matched automatically.
	Packing

	// Crane is an overhead crane; not matched automatically.
	Crane
)

func getCategoryStrings() map[MachineCategory]string {
	return map[MachineCategory]string{
		UnknownCategory: "Unknown",
		CTL:             "CTL",
		Slitter:         "Slitter",
		Picking:         "Picking",
		Packing:         "Packing",
		Crane:           "Crane",
	}
}

func getValidCategoryStrings() map[MachineCategory]string {
	//nolint:exhaustive // UnknownCategory is intentionally excluded as it's invalid
	return map[MachineCategory]string{
		CTL:     "CTL",
		Slitter: "Slitter",
		Picking: "Picking",
		Packing: "Packing",
		Crane:   "Crane",
	}
}

// ParseMachineCategory converts the string form stored in reference data into
// a MachineCategory. Returns an error for anything outside the closed set.
func ParseMachineCategory(s string) (MachineCategory, error) {
	for category, str := range getValidCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"machineCategory", fmt.Errorf("%q is not a valid machine category", s))
}

// Validate checks that the category is one of the defined values.
func (c MachineCategory) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"machineCategory", fmt.Errorf("%d is not a valid machine category", c))
	}
	return nil
}

// String returns the human-readable name of the category.
// It implements fmt.Stringer and is safe on any value.
func (c MachineCategory) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// SupportsMatching reports whether line items are matched automatically for
// this category. Picking, packing, and crane work is dispatched manually.
func (c MachineCategory) SupportsMatching() bool {
	return c == CTL || c == Slitter
}

// Machine is immutable reference data describing a production machine.
type Machine struct {
	ID                   kernel.UUID
	Name                 string
	Category             MachineCategory
	IsActive             bool
	ThroughputLbsPerHour float64
	MaxSkidCapacityLbs   float64
}

// Validate checks the machine record is usable as an allocation target.
func (m Machine) Validate() error {
	if err := m.ID.Validate(); err != nil {
		return err
	}
	if err := m.Category.Validate(); err != nil {
		return err
	}
	if m.MaxSkidCapacityLbs <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxSkidCapacityLbs", fmt.Errorf("%v is not greater than 0", m.MaxSkidCapacityLbs))
	}
	return nil
}
