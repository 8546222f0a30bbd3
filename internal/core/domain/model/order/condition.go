package order

import (
	"fmt"

	"rugops/internal/pkg/errs"
)

// Condition is the physical condition of a rug recorded during measurement.
// Worn and Damaged rugs are routed into the repair sub-flow.
//
// The zero value means the condition has not been recorded yet.
type Condition int

const (
	// ConditionUnspecified means no condition has been recorded for the item.
	ConditionUnspecified Condition = iota

	Good
	Stained
	Worn
	Damaged
	HeavilySoiled
)

func getConditionStrings() map[Condition]string {
	return map[Condition]string{
		Good:          "Good",
		Stained:       "Stained",
		Worn:          "Worn",
		Damaged:       "Damaged",
		HeavilySoiled: "Heavily Soiled",
	}
}

// ParseCondition converts the display form into a Condition. The empty
// string maps to ConditionUnspecified; any other unrecognized value is
// rejected.
func ParseCondition(value string) (Condition, error) {
	if value == "" {
		return ConditionUnspecified, nil
	}
	for condition, str := range getConditionStrings() {
		if str == value {
			return condition, nil
		}
	}
	return ConditionUnspecified, errs.NewValueIsInvalidErrorWithCause("condition",
		fmt.Errorf("%q is not a valid condition", value))
}

// ConditionOrUnspecified converts a possibly legacy value into a Condition,
// falling back to ConditionUnspecified for anything unrecognized. Used when
// migrating external snapshots.
func ConditionOrUnspecified(value string) Condition {
	condition, err := ParseCondition(value)
	if err != nil {
		return ConditionUnspecified
	}
	return condition
}

// NeedsRepair reports whether the condition routes the rug into the repair
// sub-flow.
func (c Condition) NeedsRepair() bool {
	return c == Worn || c == Damaged
}

// IsSpecified reports whether a condition has been recorded.
func (c Condition) IsSpecified() bool {
	return c != ConditionUnspecified
}

// String returns the display form, or the empty string when unspecified.
func (c Condition) String() string {
	if str, ok := getConditionStrings()[c]; ok {
		return str
	}
	return ""
}

// Validate checks that the Condition is a recorded value or unspecified.
func (c Condition) Validate() error {
	if c == ConditionUnspecified {
		return nil
	}
	if _, ok := getConditionStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("condition",
			fmt.Errorf("%d is not a valid condition", c))
	}
	return nil
}
