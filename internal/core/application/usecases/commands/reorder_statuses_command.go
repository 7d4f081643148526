package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrReorderStatusesCommandIsNotConstructed = errors.New(
	"ReorderStatusesCommand must be created via NewReorderStatusesCommand constructor",
)

// ReorderStatusesCommand represents a request to rearrange the registry's
// display order. The id slice is the desired top-to-bottom sequence; sort
// orders are derived from positions, so gaps in the stored values are an
// implementation detail.
type ReorderStatusesCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	statusIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewReorderStatusesCommand creates a command to rearrange statuses.
// Rejects empty sequences and duplicate ids.
func NewReorderStatusesCommand(actor kernel.Actor, statusIDs []kernel.UUID) (ReorderStatusesCommand, error) {
	cmd := ReorderStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setStatusIDs(statusIDs),
	); err != nil {
		return ReorderStatusesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReorderStatusesCommand) Validate() error {
	return c.guard.Validate(ErrReorderStatusesCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c ReorderStatusesCommand) Actor() kernel.Actor {
	return c.actor
}

// StatusIDs returns the desired display sequence.
func (c ReorderStatusesCommand) StatusIDs() []kernel.UUID {
	return c.statusIDs
}

func (c *ReorderStatusesCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ReorderStatusesCommand) setStatusIDs(statusIDs []kernel.UUID) error {
	if len(statusIDs) == 0 {
		return errs.NewValueIsRequiredError("statusIds")
	}

	seen := make(map[kernel.UUID]bool, len(statusIDs))
	for _, id := range statusIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if seen[id] {
			return errs.NewValueIsInvalidError("statusIds")
		}
		seen[id] = true
	}

	c.statusIDs = statusIDs
	return nil
}
