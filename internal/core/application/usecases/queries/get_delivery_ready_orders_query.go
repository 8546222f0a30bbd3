package queries

import (
	"errors"

	"rugops/internal/pkg/guard"
)

var ErrGetDeliveryReadyOrdersQueryIsNotConstructed = errors.New(
	"GetDeliveryReadyOrdersQuery must be created via NewGetDeliveryReadyOrdersQuery constructor",
)

// GetDeliveryReadyOrdersQuery retrieves the delivery queue: orders whose
// items have all finished processing with at least one still to hand over.
type GetDeliveryReadyOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryReadyOrdersQuery creates a query for the delivery queue.
func NewGetDeliveryReadyOrdersQuery() GetDeliveryReadyOrdersQuery {
	return GetDeliveryReadyOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryReadyOrdersQueryIsNotConstructed)
}
