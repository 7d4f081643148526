// Package queries contains read-only operations over the storage model.
// The read side of the CQRS split goes straight to SQL: handlers take a GORM
// connection and project rows into response structs, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its status resolved.
// Company scoping follows the actor: super admins read across companies,
// everyone else sees only their own, and a miss reads as not found.
//
// Example:
//
//	query, err := NewGetOrderQuery(actor, trackingID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	ord, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	actor      kernel.Actor
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(actor kernel.Actor, trackingID kernel.TrackingID) (GetOrderQuery, error) {
	if err := errors.Join(actor.Validate(), trackingID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		actor:      actor,
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetOrderQuery) Actor() kernel.Actor {
	return q.actor
}

// TrackingID returns the target order's tracking id.
func (q GetOrderQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// OrderResponse is the full order projection for authenticated callers.
// The status code and label come resolved from the registry.
type OrderResponse struct {
	TrackingID       string
	CompanyID        string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	PickupAddress    string
	PickupLat        float64
	PickupLng        float64
	DropoffAddress   string
	DropoffLat       float64
	DropoffLng       float64
	Instructions     string
	CurrentLat       *float64
	CurrentLng       *float64
	DeliveryPersonID *string
	StatusCode       string
	StatusLabel      string
	ShareToken       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
