package queries

import (
	"context"

	"gorm.io/gorm"

	"rugops/internal/core/domain/model/kernel"
)

// GetNextOrderIDQueryHandler scans stored order ids and returns the next one
// in the ORD-NNN sequence. Ids that do not match the scheme are ignored;
// gaps left by deleted orders are never reused.
type GetNextOrderIDQueryHandler struct {
	db *gorm.DB
}

// NewGetNextOrderIDQueryHandler creates a handler for id suggestions.
func NewGetNextOrderIDQueryHandler(db *gorm.DB) GetNextOrderIDQueryHandler {
	return GetNextOrderIDQueryHandler{db: db}
}

// Handle returns the next free order id.
func (h GetNextOrderIDQueryHandler) Handle(ctx context.Context, query GetNextOrderIDQuery) (kernel.OrderID, error) {
	if err := query.Validate(); err != nil {
		return kernel.OrderID{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT id FROM orders`).Rows()
	if err != nil {
		return kernel.OrderID{}, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return kernel.OrderID{}, err
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return kernel.OrderID{}, err
	}

	return kernel.NextOrderID(ids), nil
}
