package queries

import (
	"errors"
	"strings"
	"time"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via a NewTrackOrderBy* constructor",
)

// TrackOrderQuery is the unauthenticated tracking lookup. Two entry points
// exist: the share token, which is a capability on its own, and the tracking
// id paired with the customer email. With the second form the email must
// match whenever the order has one on file; a mismatch reads as not found so
// the public surface leaks nothing.
type TrackOrderQuery struct {
	shareToken string
	trackingID string
	email      string

	guard guard.ConstructorGuard
}

// NewTrackOrderByTokenQuery creates a tracking lookup by share token.
func NewTrackOrderByTokenQuery(shareToken string) (TrackOrderQuery, error) {
	shareToken = strings.TrimSpace(shareToken)
	if shareToken == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("shareToken")
	}

	return TrackOrderQuery{
		shareToken: shareToken,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewTrackOrderByIDQuery creates a tracking lookup by tracking id and email.
func NewTrackOrderByIDQuery(trackingID string, email string) (TrackOrderQuery, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("trackingId")
	}

	return TrackOrderQuery{
		trackingID: trackingID,
		email:      strings.TrimSpace(email),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// ShareToken returns the share token, empty for id lookups.
func (q TrackOrderQuery) ShareToken() string {
	return q.shareToken
}

// TrackingID returns the tracking id, empty for token lookups.
func (q TrackOrderQuery) TrackingID() string {
	return q.trackingID
}

// Email returns the email submitted with an id lookup.
func (q TrackOrderQuery) Email() string {
	return q.email
}

// TrackOrderQueryResponse is the public tracking projection. Customer contact
// details and the share token itself stay out of it.
type TrackOrderQueryResponse struct {
	TrackingID     string
	StatusCode     string
	StatusLabel    string
	PickupAddress  string
	DropoffAddress string
	CurrentLat     *float64
	CurrentLng     *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	History        []HistoryEntryResponse
}
