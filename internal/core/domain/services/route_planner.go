// Package services contains stateless domain services that operate across
// aggregates.
package services

import (
	"errors"
	"sort"

	"rugops/internal/core/domain/model/order"
)

// ErrNotEnoughStops is returned when a route plan is requested for fewer
// than two delivery-ready orders.
var ErrNotEnoughStops = errors.New("a route plan needs at least two orders")

// ErrOrderNotDeliveryReady is returned when a selected order does not
// qualify for the delivery queue.
var ErrOrderNotDeliveryReady = errors.New("order is not ready for delivery")

// RoutePlanner is a domain service that produces a delivery sequence for a
// set of delivery-ready orders.
//
// The "optimization" is a deterministic placeholder: selected orders are
// sequenced by ascending order id. A real implementation would plug a
// distance- or time-based solver in behind the same interface.
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// Plan validates that every selected order qualifies for the delivery queue
// and returns their ids in delivery sequence.
//
// Returns ErrNotEnoughStops for fewer than two orders and
// ErrOrderNotDeliveryReady when any selection fails the delivery-ready rule.
func (p RoutePlanner) Plan(orders []*order.Order) ([]string, error) {
	if len(orders) < 2 {
		return nil, ErrNotEnoughStops
	}

	sequence := make([]string, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if !o.IsDeliveryReady() {
			return nil, ErrOrderNotDeliveryReady
		}
		sequence = append(sequence, o.ID().String())
	}

	sort.Strings(sequence)
	return sequence, nil
}
