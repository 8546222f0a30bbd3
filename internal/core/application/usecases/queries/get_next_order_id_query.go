package queries

import (
	"errors"

	"rugops/internal/pkg/guard"
)

var ErrGetNextOrderIDQueryIsNotConstructed = errors.New(
	"GetNextOrderIDQuery must be created via NewGetNextOrderIDQuery constructor",
)

// GetNextOrderIDQuery computes the id the next intake form should use.
type GetNextOrderIDQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNextOrderIDQuery creates a query for the next free order id.
func NewGetNextOrderIDQuery() GetNextOrderIDQuery {
	return GetNextOrderIDQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNextOrderIDQuery) Validate() error {
	return q.guard.Validate(ErrGetNextOrderIDQueryIsNotConstructed)
}
