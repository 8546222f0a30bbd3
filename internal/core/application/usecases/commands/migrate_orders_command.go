package commands

import (
	"errors"

	"rugops/internal/pkg/errs"
	"rugops/internal/pkg/guard"
)

var ErrMigrateOrdersCommandIsNotConstructed = errors.New(
	"MigrateOrdersCommand must be created via NewMigrateOrdersCommand constructor",
)

// MigrateOrdersCommand carries a JSON snapshot exported from the legacy
// tracking sheet. Records are imported one by one; a bad record is reported
// and skipped rather than aborting the run.
type MigrateOrdersCommand struct { //nolint:recvcheck //using for validation
	snapshot []byte

	guard guard.ConstructorGuard
}

// NewMigrateOrdersCommand creates a command to import a legacy snapshot.
func NewMigrateOrdersCommand(snapshot []byte) (MigrateOrdersCommand, error) {
	if len(snapshot) == 0 {
		return MigrateOrdersCommand{}, errs.NewValueIsRequiredError("snapshot")
	}

	return MigrateOrdersCommand{
		snapshot: snapshot,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MigrateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrMigrateOrdersCommandIsNotConstructed)
}

// Snapshot returns the raw JSON snapshot.
func (c MigrateOrdersCommand) Snapshot() []byte {
	return c.snapshot
}
