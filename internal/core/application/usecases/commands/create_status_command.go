package commands

import (
	"errors"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrCreateStatusCommandIsNotConstructed = errors.New(
	"CreateStatusCommand must be created via NewCreateStatusCommand constructor",
)

// CreateStatusCommand represents a request to register a custom status.
// The raw code is normalized downstream; statuses created through this
// command are never system statuses.
type CreateStatusCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Actor
	code        string
	label       string
	description string
	sortOrder   int

	guard guard.ConstructorGuard
}

// NewCreateStatusCommand creates a command to register a custom status.
func NewCreateStatusCommand(
	actor kernel.Actor, code string, label string, description string, sortOrder int,
) (CreateStatusCommand, error) {
	cmd := CreateStatusCommand{
		description: strings.TrimSpace(description),
		sortOrder:   sortOrder,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setCode(code),
		cmd.setLabel(label),
	); err != nil {
		return CreateStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStatusCommand) Validate() error {
	return c.guard.Validate(ErrCreateStatusCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c CreateStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// Code returns the raw, not yet normalized status code.
func (c CreateStatusCommand) Code() string {
	return c.code
}

// Label returns the display label.
func (c CreateStatusCommand) Label() string {
	return c.label
}

// Description returns the optional description.
func (c CreateStatusCommand) Description() string {
	return c.description
}

// SortOrder returns the requested display position.
func (c CreateStatusCommand) SortOrder() int {
	return c.sortOrder
}

func (c *CreateStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateStatusCommand) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}

func (c *CreateStatusCommand) setLabel(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return errs.NewValueIsRequiredError("label")
	}

	c.label = label
	return nil
}
