package workorder

import (
	"fmt"

	"steelflow/internal/pkg/errs"
)

// PauseReason is the closed set of reasons an operator may give when pausing
// a running work order. Pausing with anything outside this set is rejected
// before any state is touched.
type PauseReason int

const (
	// UnknownReason represents an invalid or undefined reason.
	UnknownReason PauseReason = iota

	// Break is an operator break.
	Break

	// Maintenance is planned or unplanned machine maintenance.
	Maintenance

	// Material covers waiting on material handling.
	Material

	// Quality covers quality holds and inspections.
	Quality

	// CoilChange is a coil change on the machine.
	CoilChange

	// Other is any reason not covered above; details go in the event notes.
	Other
)

func getPauseReasonStrings() map[PauseReason]string {
	return map[PauseReason]string{
		UnknownReason: "unknown",
		Break:         "break",
		Maintenance:   "maintenance",
		Material:      "material",
		Quality:       "quality",
		CoilChange:    "coil-change",
		Other:         "other",
	}
}

func getValidPauseReasonStrings() map[PauseReason]string {
	//nolint:exhaustive // UnknownReason is intentionally excluded as it's invalid
	return map[PauseReason]string{
		Break:       "break",
		Maintenance: "maintenance",
		Material:    "material",
		Quality:     "quality",
		CoilChange:  "coil-change",
		Other:       "other",
	}
}

// ParsePauseReason converts the wire/storage form into a PauseReason.
func ParsePauseReason(s string) (PauseReason, error) {
	for reason, str := range getValidPauseReasonStrings() {
		if str == s {
			return reason, nil
		}
	}
	return UnknownReason, errs.NewValueIsInvalidErrorWithCause(
		"pauseReason", fmt.Errorf("%q is not a valid pause reason", s))
}

// Validate checks that the reason is one of the defined values.
func (r PauseReason) Validate() error {
	if _, ok := getValidPauseReasonStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"pauseReason", fmt.Errorf("%d is not a valid pause reason", r))
	}
	return nil
}

// String returns the lower-case wire form of the reason.
func (r PauseReason) String() string {
	if str, ok := getPauseReasonStrings()[r]; ok {
		return str
	}
	return "unknown"
}
