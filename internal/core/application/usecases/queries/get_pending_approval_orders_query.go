package queries

import (
	"errors"

	"rugops/internal/pkg/guard"
)

var ErrGetPendingApprovalOrdersQueryIsNotConstructed = errors.New(
	"GetPendingApprovalOrdersQuery must be created via NewGetPendingApprovalOrdersQuery constructor",
)

// GetPendingApprovalOrdersQuery lists orders still waiting on a client
// decision. Used by the reminder job and the approvals screen.
type GetPendingApprovalOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingApprovalOrdersQuery creates a query for undecided orders.
func NewGetPendingApprovalOrdersQuery() GetPendingApprovalOrdersQuery {
	return GetPendingApprovalOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingApprovalOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingApprovalOrdersQueryIsNotConstructed)
}

// PendingApprovalView is the reminder-list entry for one undecided order.
type PendingApprovalView struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
}
