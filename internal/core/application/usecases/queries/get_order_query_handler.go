package queries

import (
	"context"

	"gorm.io/gorm"

	"rugops/internal/pkg/errs"
)

// GetOrderQueryHandler fetches one order with its items and totals.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	orderRows, err := h.db.WithContext(ctx).
		Raw(orderColumns+` WHERE id = ?`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer orderRows.Close()

	views, err := scanOrderViews(orderRows)
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	view := views[0]

	itemRows, err := h.db.WithContext(ctx).
		Raw(itemColumns+` WHERE order_id = ? ORDER BY `+itemSequence, view.ID).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		_, item, scanErr := scanItemView(itemRows)
		if scanErr != nil {
			return OrderView{}, scanErr
		}
		view.Items = append(view.Items, item)
	}
	if err = itemRows.Err(); err != nil {
		return OrderView{}, err
	}

	view.computeTotals()
	return view, nil
}
