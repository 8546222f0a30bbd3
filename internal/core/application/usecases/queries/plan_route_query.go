package queries

import (
	"errors"

	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/pkg/guard"
)

var (
	ErrPlanRouteQueryIsNotConstructed = errors.New(
		"PlanRouteQuery must be created via NewPlanRouteQuery constructor",
	)
	ErrNoOrdersSelected = errors.New("a route plan needs selected orders")
)

// PlanRouteQuery asks for a delivery sequence over a set of selected orders.
type PlanRouteQuery struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.OrderID

	guard guard.ConstructorGuard
}

// NewPlanRouteQuery creates a query to sequence the selected orders.
func NewPlanRouteQuery(orderIDs []kernel.OrderID) (PlanRouteQuery, error) {
	if len(orderIDs) == 0 {
		return PlanRouteQuery{}, ErrNoOrdersSelected
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return PlanRouteQuery{}, err
		}
	}

	ids := make([]kernel.OrderID, len(orderIDs))
	copy(ids, orderIDs)
	return PlanRouteQuery{
		orderIDs: ids,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q PlanRouteQuery) Validate() error {
	return q.guard.Validate(ErrPlanRouteQueryIsNotConstructed)
}

// OrderIDs returns the selected orders.
func (q PlanRouteQuery) OrderIDs() []kernel.OrderID {
	ids := make([]kernel.OrderID, len(q.orderIDs))
	copy(ids, q.orderIDs)
	return ids
}
