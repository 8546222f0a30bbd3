// Package kernel contains shared value objects used across the domain model.
package kernel

import (
	"fmt"
	"regexp"
	"strconv"

	"rugops/internal/pkg/errs"
)

// orderIDPattern matches the canonical order identifier format ORD-NNN.
// The numeric suffix is at least three digits and grows without an upper
// bound once the sequence passes 999.
var orderIDPattern = regexp.MustCompile(`^ORD-(\d+)$`)

// OrderID is the unique identifier of an order, formatted as "ORD-" followed
// by a zero-padded decimal sequence number (ORD-001, ORD-002, ...).
//
// OrderID is a value object: instances are created through NewOrderID or
// ParseOrderID, and the zero value fails Validate. Identifiers are assigned
// sequentially by NextOrderID; the scan-and-increment assignment is not
// safe against concurrent creation, which the system accepts under its
// single-operator usage model.
type OrderID struct {
	value    string
	sequence int
}

// NewOrderID creates an OrderID from a sequence number.
// The sequence must be positive.
func NewOrderID(sequence int) (OrderID, error) {
	if sequence <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("sequence %d is not greater than 0", sequence))
	}

	return OrderID{
		value:    fmt.Sprintf("ORD-%03d", sequence),
		sequence: sequence,
	}, nil
}

// ParseOrderID creates an OrderID from its string form.
// The value must match the ORD-NNN format with a positive sequence.
func ParseOrderID(value string) (OrderID, error) {
	if value == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}

	match := orderIDPattern.FindStringSubmatch(value)
	if match == nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q does not match the ORD-NNN format", value))
	}

	sequence, err := strconv.Atoi(match[1])
	if err != nil || sequence <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q has no positive sequence number", value))
	}

	return OrderID{value: value, sequence: sequence}, nil
}

// NextOrderID computes the identifier for the next order given the ids of
// all existing orders. It extracts the numeric suffix of every id matching
// the ORD-NNN format, takes the maximum (0 when none match) and adds one.
func NextOrderID(existing []string) OrderID {
	maxSequence := 0
	for _, candidate := range existing {
		match := orderIDPattern.FindStringSubmatch(candidate)
		if match == nil {
			continue
		}
		sequence, err := strconv.Atoi(match[1])
		if err != nil || sequence <= 0 {
			continue
		}
		if sequence > maxSequence {
			maxSequence = sequence
		}
	}

	next, _ := NewOrderID(maxSequence + 1)
	return next
}

// Validate ensures the OrderID was created through a constructor.
// The zero value is invalid.
func (id OrderID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredErrorWithCause("orderId",
			fmt.Errorf("OrderID must be created via NewOrderID or ParseOrderID"))
	}
	return nil
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Sequence returns the numeric suffix of the identifier.
func (id OrderID) Sequence() int {
	return id.sequence
}

// String returns the canonical ORD-NNN form.
func (id OrderID) String() string {
	return id.value
}
