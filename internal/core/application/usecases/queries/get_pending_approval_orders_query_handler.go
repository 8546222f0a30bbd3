package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPendingApprovalOrdersQueryHandler lists orders whose approval status is
// still pending, oldest first so the longest-waiting client is chased first.
type GetPendingApprovalOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingApprovalOrdersQueryHandler creates a handler for the approval backlog.
func NewGetPendingApprovalOrdersQueryHandler(db *gorm.DB) GetPendingApprovalOrdersQueryHandler {
	return GetPendingApprovalOrdersQueryHandler{db: db}
}

// Handle returns the undecided orders.
func (h GetPendingApprovalOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingApprovalOrdersQuery,
) ([]PendingApprovalView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_name,
			phone,
			email
		FROM orders
		WHERE requires_approval AND approval_status = ?
		ORDER BY created_at
	`, "pending").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]PendingApprovalView, 0)
	for rows.Next() {
		var view PendingApprovalView
		if err = rows.Scan(&view.ID, &view.ClientName, &view.Phone, &view.Email); err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
