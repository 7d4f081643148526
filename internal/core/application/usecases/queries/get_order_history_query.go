package queries

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves an order's full timeline, oldest first.
// The order itself must be visible to the actor; otherwise the whole call
// reads as not found.
type GetOrderHistoryQuery struct {
	actor      kernel.Actor
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for an order's timeline.
func NewGetOrderHistoryQuery(actor kernel.Actor, trackingID kernel.TrackingID) (GetOrderHistoryQuery, error) {
	if err := errors.Join(actor.Validate(), trackingID.Validate()); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		actor:      actor,
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetOrderHistoryQuery) Actor() kernel.Actor {
	return q.actor
}

// TrackingID returns the target order's tracking id.
func (q GetOrderHistoryQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// HistoryEntryResponse is one timeline step with its status resolved.
type HistoryEntryResponse struct {
	StatusCode  string
	StatusLabel string
	Lat         *float64
	Lng         *float64
	RecordedAt  time.Time
}
