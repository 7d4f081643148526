package services

import (
	"time"

	"shiptrack/internal/core/domain/model/history"
	"shiptrack/internal/core/domain/model/kernel"
)

// HistoryRecorder decides whether an applied order mutation produces an audit
// entry, and builds it. Like the guard it is pure: the caller persists the
// returned entry, or nothing when nil.
type HistoryRecorder struct{}

// NewHistoryRecorder creates a recorder. Stateless and safe for concurrent use.
func NewHistoryRecorder() *HistoryRecorder {
	return &HistoryRecorder{}
}

// RecordIfChanged builds a history entry when the mutation changed the status
// and/or supplied a new location pair, and returns nil when it did neither
// (resubmitting the current status is a no-op and leaves no trace).
//
// The recorded status is newStatusID, which equals previousStatusID when the
// status did not change, so the entry never carries a nil status. The recorded
// location is the new pair when one was supplied, otherwise the order's prior
// live location, so a location-bearing timeline never degrades to partial
// coordinates.
func (r *HistoryRecorder) RecordIfChanged(
	trackingID kernel.TrackingID,
	previousStatusID kernel.UUID,
	newStatusID kernel.UUID,
	previousLocation *kernel.GeoPoint,
	newLocation *kernel.GeoPoint,
	now time.Time,
) (*history.Entry, error) {
	statusChanged := !newStatusID.IsEqual(previousStatusID)
	if !statusChanged && newLocation == nil {
		return nil, nil
	}

	location := newLocation
	if location == nil {
		location = previousLocation
	}

	return history.NewEntry(kernel.NewUUID(), trackingID, newStatusID, location, now)
}
