// Package historyrepo provides data transfer objects and mapping functions
// for the append-only order timeline.
package historyrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/history"
	"shiptrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting history entries.
// Rows are only ever inserted; the composite index serves the ascending
// timeline read.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID string    `gorm:"size:64;index:idx_history_timeline,priority:1"`
	StatusID   uuid.UUID `gorm:"type:uuid"`
	Lat        *float64
	Lng        *float64
	RecordedAt time.Time `gorm:"index:idx_history_timeline,priority:2"`
}

// TableName specifies the database table name for history entries.
func (EntryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts a history entry to its database representation.
func fromDomain(entry *history.Entry) EntryDTO {
	var lat, lng *float64
	if loc := entry.Location(); loc != nil {
		latV, lngV := loc.Lat(), loc.Lng()
		lat, lng = &latV, &lngV
	}

	return EntryDTO{
		ID:         entry.ID().Bytes(),
		TrackingID: entry.TrackingID().String(),
		StatusID:   entry.StatusID().Bytes(),
		Lat:        lat,
		Lng:        lng,
		RecordedAt: entry.RecordedAt(),
	}
}

// toDomain converts a database row to a history entry via RestoreEntry.
func toDomain(dto EntryDTO) (*history.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	statusID, err := kernel.UUIDFromBytes(dto.StatusID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	return history.RestoreEntry(id, trackingID, statusID, location, dto.RecordedAt)
}
