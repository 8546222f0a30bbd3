package order

import (
	"fmt"

	"rugops/internal/pkg/errs"
)

// Status represents the lifecycle state of a single rug within an order.
// It implements a state machine with directed transitions; no
// back-transitions are modeled.
//
// Main progression:
//
//	pending ──> measured ──> ready_for_delivery ──> delivered
//
// Repair sub-flow (independent of the main progression):
//
//	pending/measured ──> repair_needed ──> repair_estimated
//
// A repair estimate marks the item repair_estimated without undoing its
// measurement; repair_estimated items continue to ready_for_delivery the
// same way measured items do.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status of every item at intake, before
	// measurements are taken.
	Pending

	// Measured indicates length, width, material and condition have all
	// been recorded and the cleaning cost is computed.
	Measured

	// RepairNeeded flags an item for repair assessment.
	RepairNeeded

	// RepairEstimated indicates a repair cost and description have been
	// recorded for the item.
	RepairEstimated

	// ReadyForDelivery indicates cleaning (and repair, if any) is done and
	// the item awaits handoff to the client.
	ReadyForDelivery

	// Delivered is the final status; the item has been handed back.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		Pending:          "pending",
		Measured:         "measured",
		RepairNeeded:     "repair_needed",
		RepairEstimated:  "repair_estimated",
		ReadyForDelivery: "ready_for_delivery",
		Delivered:        "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:          "pending",
		Measured:         "measured",
		RepairNeeded:     "repair_needed",
		RepairEstimated:  "repair_estimated",
		ReadyForDelivery: "ready_for_delivery",
		Delivered:        "delivered",
	}
}

// ParseStatus converts the persisted snake_case form back into a Status.
// Every write through the API goes through this validation.
func ParseStatus(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid item status", value))
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case form used for persistence and transport.
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// AtOrPastMeasurement reports whether the item has been priced, meaning the
// order-level approval escalation can count it. Measured, repair-estimated,
// ready and delivered items qualify; pending and repair_needed do not.
func (s Status) AtOrPastMeasurement() bool {
	switch s {
	case Measured, RepairEstimated, ReadyForDelivery, Delivered:
		return true
	default:
		return false
	}
}

// Measure transitions the status to Measured.
//
// Valid transitions:
//   - Pending -> Measured (measurements completed)
//   - Measured -> Measured (re-measurement)
//
// Repair statuses are left untouched by measurement; the repair sub-flow
// owns them.
func (s Status) Measure() (Status, error) {
	if s != Pending && s != Measured {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to measure", s))
	}
	return Measured, nil
}

// FlagRepairNeeded transitions the status to RepairNeeded.
//
// Valid transitions:
//   - Pending -> RepairNeeded
//   - Measured -> RepairNeeded
//   - RepairNeeded -> RepairNeeded
func (s Status) FlagRepairNeeded() (Status, error) {
	if s != Pending && s != Measured && s != RepairNeeded {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to flag for repair", s))
	}
	return RepairNeeded, nil
}

// EstimateRepair transitions the status to RepairEstimated.
// Allowed from any non-terminal status: a repair estimate can be created or
// edited before or after measurement.
func (s Status) EstimateRepair() (Status, error) {
	if s == Delivered || s == StatusUnknown {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to estimate repair", s))
	}
	return RepairEstimated, nil
}

// MarkReady transitions the status to ReadyForDelivery.
//
// Valid transitions:
//   - Measured -> ReadyForDelivery
//   - RepairEstimated -> ReadyForDelivery (a repair estimate subsumes measurement)
//
// The order-level approval gate is enforced by the aggregate, not here.
func (s Status) MarkReady() (Status, error) {
	if s != Measured && s != RepairEstimated {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to mark ready for delivery", s))
	}
	return ReadyForDelivery, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - ReadyForDelivery -> Delivered
//
// Delivered is the final state with no further transitions.
func (s Status) Deliver() (Status, error) {
	if s != ReadyForDelivery {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s))
	}
	return Delivered, nil
}
