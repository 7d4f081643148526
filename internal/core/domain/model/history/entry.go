package history

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is one immutable audit record in an order's timeline: the status the
// order carried at that moment and, when known, a location snapshot. Entries
// are only ever appended; nothing updates or deletes them. The canonical
// timeline order is recordedAt ascending.
type Entry struct {
	id         kernel.UUID
	trackingID kernel.TrackingID
	statusID   kernel.UUID
	location   *kernel.GeoPoint
	recordedAt time.Time

	isConstructed bool
}

// NewEntry creates a history entry. The status reference is never nil: when a
// mutation changed only the location, the caller passes the order's unchanged
// current status. The timestamp is server-assigned and normalized to UTC.
func NewEntry(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	statusID kernel.UUID,
	location *kernel.GeoPoint,
	recordedAt time.Time,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		trackingID.Validate(),
		statusID.Validate(),
	); err != nil {
		return nil, err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &Entry{
		id:            id,
		trackingID:    trackingID,
		statusID:      statusID,
		location:      location,
		recordedAt:    recordedAt.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	statusID kernel.UUID,
	location *kernel.GeoPoint,
	recordedAt time.Time,
) (*Entry, error) {
	return NewEntry(id, trackingID, statusID, location, recordedAt)
}

// Validate ensures the Entry was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// TrackingID returns the order this entry belongs to.
func (e *Entry) TrackingID() kernel.TrackingID {
	return e.trackingID
}

// StatusID returns the status the order carried when the entry was recorded.
func (e *Entry) StatusID() kernel.UUID {
	return e.statusID
}

// Location returns the location snapshot, nil when no location was known.
func (e *Entry) Location() *kernel.GeoPoint {
	return e.location
}

// RecordedAt returns the server-assigned timestamp (UTC).
func (e *Entry) RecordedAt() time.Time {
	return e.recordedAt
}
