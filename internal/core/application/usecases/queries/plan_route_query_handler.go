package queries

import (
	"context"

	"rugops/internal/core/domain/model/order"
	"rugops/internal/core/domain/services"
	"rugops/internal/core/ports"
)

// PlanRouteQueryHandler loads the selected orders and delegates the
// sequencing to the route planner domain service.
type PlanRouteQueryHandler struct {
	orderRepo ports.OrderRepository
	planner   services.RoutePlanner
}

// NewPlanRouteQueryHandler creates a handler for route planning.
func NewPlanRouteQueryHandler(orderRepo ports.OrderRepository, planner services.RoutePlanner) PlanRouteQueryHandler {
	return PlanRouteQueryHandler{
		orderRepo: orderRepo,
		planner:   planner,
	}
}

// Handle returns the delivery sequence for the selected orders.
func (h PlanRouteQueryHandler) Handle(ctx context.Context, query PlanRouteQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(query.OrderIDs()))
	for _, id := range query.OrderIDs() {
		o, err := h.orderRepo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return h.planner.Plan(orders)
}
