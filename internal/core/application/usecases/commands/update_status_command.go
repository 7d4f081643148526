package commands

import (
	"errors"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand represents a request to relabel a status. Only label
// and description are mutable; the code is fixed for life.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Actor
	statusID    kernel.UUID
	label       string
	description string

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand creates a command to relabel a status.
func NewUpdateStatusCommand(
	actor kernel.Actor, statusID kernel.UUID, label string, description string,
) (UpdateStatusCommand, error) {
	cmd := UpdateStatusCommand{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setStatusID(statusID),
		cmd.setLabel(label),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c UpdateStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// StatusID returns the target status identifier.
func (c UpdateStatusCommand) StatusID() kernel.UUID {
	return c.statusID
}

// Label returns the new display label.
func (c UpdateStatusCommand) Label() string {
	return c.label
}

// Description returns the new description.
func (c UpdateStatusCommand) Description() string {
	return c.description
}

func (c *UpdateStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateStatusCommand) setStatusID(statusID kernel.UUID) error {
	if err := statusID.Validate(); err != nil {
		return err
	}

	c.statusID = statusID
	return nil
}

func (c *UpdateStatusCommand) setLabel(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return errs.NewValueIsRequiredError("label")
	}

	c.label = label
	return nil
}
