package order

import (
	"fmt"

	"rugops/internal/pkg/errs"
)

// ApprovalStatus tracks the client approval cycle of an order.
//
// Transitions:
//
//	not_needed ──> pending ──> approved
//	     ^            └──────> rejected
//	     └── (staff clears the approval requirement)
//
// The status is driven from two sides: operations staff toggle the order's
// approval requirement (not_needed <-> pending), and the client decides
// (pending -> approved | rejected). A rejection is terminal for the client
// but staff can restart the cycle by re-toggling the requirement.
type ApprovalStatus int

const (
	// ApprovalStatusUnknown represents an invalid or undefined value.
	ApprovalStatusUnknown ApprovalStatus = iota

	// NotNeeded means the order does not (currently) require client approval.
	NotNeeded

	// PendingApproval means the client has been asked to approve the estimate.
	PendingApproval

	// Approved means the client accepted the estimate; delivery may proceed.
	Approved

	// Rejected means the client declined the estimate.
	Rejected
)

func getApprovalStatusStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		ApprovalStatusUnknown: "unknown",
		NotNeeded:             "not_needed",
		PendingApproval:       "pending",
		Approved:              "approved",
		Rejected:              "rejected",
	}
}

func getValidApprovalStatusStrings() map[ApprovalStatus]string {
	//nolint:exhaustive // ApprovalStatusUnknown is intentionally excluded as it's invalid
	return map[ApprovalStatus]string{
		NotNeeded:       "not_needed",
		PendingApproval: "pending",
		Approved:        "approved",
		Rejected:        "rejected",
	}
}

// ParseApprovalStatus converts the persisted snake_case form back into an
// ApprovalStatus.
func ParseApprovalStatus(value string) (ApprovalStatus, error) {
	for status, str := range getValidApprovalStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return ApprovalStatusUnknown, errs.NewValueIsInvalidErrorWithCause("approvalStatus",
		fmt.Errorf("%q is not a valid approval status", value))
}

// Validate checks that the ApprovalStatus is one of the defined values.
func (s ApprovalStatus) Validate() error {
	if _, ok := getValidApprovalStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("approvalStatus",
			fmt.Errorf("%d is not a valid approval status", s))
	}
	return nil
}

// String returns the snake_case form used for persistence and transport.
func (s ApprovalStatus) String() string {
	if str, ok := getApprovalStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsDecision reports whether the value is one of the two client decisions.
func (s ApprovalStatus) IsDecision() bool {
	return s == Approved || s == Rejected
}
