package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to mutate an existing order. The
// change set is sparse: fields that were not submitted stay untouched. An
// empty change set is rejected up front.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	trackingID kernel.TrackingID
	changes    *order.ChangeSet

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to mutate an order.
func NewUpdateOrderCommand(
	actor kernel.Actor,
	trackingID kernel.TrackingID,
	changes *order.ChangeSet,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTrackingID(trackingID),
		cmd.setChanges(changes),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c UpdateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// TrackingID returns the target order's tracking id.
func (c UpdateOrderCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Changes returns the sparse change set.
func (c UpdateOrderCommand) Changes() *order.ChangeSet {
	return c.changes
}

func (c *UpdateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateOrderCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *UpdateOrderCommand) setChanges(changes *order.ChangeSet) error {
	if changes == nil || changes.IsEmpty() {
		return errs.NewValueIsRequiredError("changes")
	}

	c.changes = changes
	return nil
}
