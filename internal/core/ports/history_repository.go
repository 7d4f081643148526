package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/history"
	"shiptrack/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for the append-only
// order timeline. There is no update or delete: entries are immutable once
// written.
type HistoryRepository interface {
	// Add appends a new history entry.
	Add(ctx context.Context, entry *history.Entry) error

	// GetByTrackingID retrieves an order's full timeline, oldest first.
	GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) ([]*history.Entry, error)
}
