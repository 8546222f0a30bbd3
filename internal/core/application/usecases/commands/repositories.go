// Package commands contains the write-side operations of the workshop.
// Every command follows the same shape: a guard-validated command struct,
// a handler that opens a unit of work, mutates the order aggregate, and
// commits or rolls back.
package commands

import (
	"context"

	"rugops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages a transaction over the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
