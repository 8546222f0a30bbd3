package commands

import (
	"errors"

	"rugops/internal/pkg/guard"
)

var ErrPurgeOrdersCommandIsNotConstructed = errors.New(
	"PurgeOrdersCommand must be created via NewPurgeOrdersCommand constructor",
)

// PurgeOrdersCommand represents the administrative request to wipe every
// order and item. Used to reset the workshop before re-running a migration.
type PurgeOrdersCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewPurgeOrdersCommand creates a command to delete all orders.
func NewPurgeOrdersCommand() PurgeOrdersCommand {
	return PurgeOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PurgeOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOrdersCommandIsNotConstructed)
}
