package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveryReadyOrdersQueryHandler lists orders that qualify for the
// delivery queue. The readiness rule lives on the view, not in SQL, so it
// stays identical to the aggregate's rule.
type GetDeliveryReadyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryReadyOrdersQueryHandler creates a handler for the delivery queue.
func NewGetDeliveryReadyOrdersQueryHandler(db *gorm.DB) GetDeliveryReadyOrdersQueryHandler {
	return GetDeliveryReadyOrdersQueryHandler{db: db}
}

// Handle returns the delivery-ready orders, newest first.
func (h GetDeliveryReadyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryReadyOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := loadAllOrderViews(ctx, h.db)
	if err != nil {
		return nil, err
	}

	ready := make([]OrderView, 0)
	for _, view := range views {
		if view.IsDeliveryReady() {
			ready = append(ready, view)
		}
	}
	return ready, nil
}
