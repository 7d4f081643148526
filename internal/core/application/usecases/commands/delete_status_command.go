package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrDeleteStatusCommandIsNotConstructed = errors.New(
	"DeleteStatusCommand must be created via NewDeleteStatusCommand constructor",
)

// DeleteStatusCommand represents a request to hard-delete a custom status.
type DeleteStatusCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Actor
	statusID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteStatusCommand creates a command to delete a status.
func NewDeleteStatusCommand(actor kernel.Actor, statusID kernel.UUID) (DeleteStatusCommand, error) {
	cmd := DeleteStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setStatusID(statusID),
	); err != nil {
		return DeleteStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteStatusCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStatusCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c DeleteStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// StatusID returns the target status identifier.
func (c DeleteStatusCommand) StatusID() kernel.UUID {
	return c.statusID
}

func (c *DeleteStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *DeleteStatusCommand) setStatusID(statusID kernel.UUID) error {
	if err := statusID.Validate(); err != nil {
		return err
	}

	c.statusID = statusID
	return nil
}
