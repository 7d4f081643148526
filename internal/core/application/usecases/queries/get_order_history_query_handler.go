package queries

import (
	"context"

	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// historySelect is the shared projection for timeline reads; ascending
// recorded_at is the canonical order.
const historySelect = `
	SELECT
		s.code,
		s.label,
		h.lat,
		h.lng,
		h.recorded_at
	FROM order_history h
	JOIN statuses s ON s.id = h.status_id
	WHERE h.tracking_id = ?
	ORDER BY h.recorded_at ASC, h.id
`

// GetOrderHistoryQueryHandler reads an order's timeline after checking the
// order is visible to the actor.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for timeline reads.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query. Entries come back oldest first with their
// status code and label resolved.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)

	var visible int64
	scope := tx.Raw(`SELECT COUNT(*) FROM orders WHERE tracking_id = ?`, query.TrackingID().String())
	if !query.Actor().IsSuperAdmin() {
		scope = tx.Raw(`SELECT COUNT(*) FROM orders WHERE tracking_id = ? AND company_id = ?`,
			query.TrackingID().String(), query.Actor().CompanyID().String())
	}
	if err := scope.Scan(&visible).Error; err != nil {
		return nil, err
	}
	if visible == 0 {
		return nil, errs.NewObjectNotFoundError("trackingId", query.TrackingID().String())
	}

	return fetchHistory(tx, query.TrackingID().String())
}

// fetchHistory runs the timeline projection for one tracking id.
func fetchHistory(tx *gorm.DB, trackingID string) ([]HistoryEntryResponse, error) {
	rows, err := tx.Raw(historySelect, trackingID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]HistoryEntryResponse, 0)
	for rows.Next() {
		var entry HistoryEntryResponse
		if err = rows.Scan(
			&entry.StatusCode,
			&entry.StatusLabel,
			&entry.Lat,
			&entry.Lng,
			&entry.RecordedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
