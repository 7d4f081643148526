package commands

import (
	"errors"
	"time"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrArchiveStaleOrdersCommandIsNotConstructed = errors.New(
	"ArchiveStaleOrdersCommand must be created via NewArchiveStaleOrdersCommand constructor",
)

// ArchiveStaleOrdersCommand represents a request to archive orders that have
// sat untouched in a non-terminal state for longer than the threshold.
type ArchiveStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewArchiveStaleOrdersCommand creates an archival command.
// The threshold must be positive.
func NewArchiveStaleOrdersCommand(olderThan time.Duration) (ArchiveStaleOrdersCommand, error) {
	if olderThan <= 0 {
		return ArchiveStaleOrdersCommand{}, errs.NewValueIsInvalidError("olderThan")
	}

	return ArchiveStaleOrdersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrArchiveStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the staleness threshold.
func (c ArchiveStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}
