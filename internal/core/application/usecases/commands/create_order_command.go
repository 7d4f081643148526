package commands

import (
	"errors"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new shipment order.
// Carries the caller-supplied tracking id, customer contact details and the
// pickup/dropoff waypoints. Company ownership comes from the acting user, not
// from the request body.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, trackingID,
//	    "Ada Lovelace", "ada@example.com", "",
//	    pickup, dropoff, "ring twice")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	trackingID    kernel.TrackingID
	customerName  string
	customerEmail string
	customerPhone string
	pickup        order.Waypoint
	dropoff       order.Waypoint
	instructions  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the actor, tracking id, customer name and both waypoints.
func NewCreateOrderCommand(
	actor kernel.Actor,
	trackingID kernel.TrackingID,
	customerName string,
	customerEmail string,
	customerPhone string,
	pickup order.Waypoint,
	dropoff order.Waypoint,
	instructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerEmail: strings.TrimSpace(customerEmail),
		customerPhone: strings.TrimSpace(customerPhone),
		instructions:  strings.TrimSpace(instructions),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTrackingID(trackingID),
		cmd.setCustomerName(customerName),
		cmd.setPickup(pickup),
		cmd.setDropoff(dropoff),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the acting user.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// TrackingID returns the caller-supplied tracking id.
func (c CreateOrderCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// CustomerName returns the customer display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the optional customer email.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// CustomerPhone returns the optional customer phone number.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// Pickup returns the pickup waypoint.
func (c CreateOrderCommand) Pickup() order.Waypoint {
	return c.pickup
}

// Dropoff returns the dropoff waypoint.
func (c CreateOrderCommand) Dropoff() order.Waypoint {
	return c.dropoff
}

// Instructions returns the optional delivery instructions.
func (c CreateOrderCommand) Instructions() string {
	return c.instructions
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setPickup(pickup order.Waypoint) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}

func (c *CreateOrderCommand) setDropoff(dropoff order.Waypoint) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}

	c.dropoff = dropoff
	return nil
}
