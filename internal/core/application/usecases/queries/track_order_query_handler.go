package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// trackSelect is the public tracking projection.
const trackSelect = `
	SELECT
		o.tracking_id,
		o.customer_email,
		s.code,
		s.label,
		o.pickup_address,
		o.dropoff_address,
		o.current_lat,
		o.current_lng,
		o.created_at,
		o.updated_at
	FROM orders o
	JOIN statuses s ON s.id = o.status_id
`

// TrackOrderQueryHandler serves the unauthenticated tracking page: one order
// in its public projection plus the full ascending timeline.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for public tracking lookups.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the lookup. Every failure mode on this path is not found:
// unknown token, unknown tracking id, or an email that does not match the
// one on file.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	tx := h.db.WithContext(ctx)

	var row *gorm.DB
	var lookupValue string
	if query.ShareToken() != "" {
		lookupValue = query.ShareToken()
		row = tx.Raw(trackSelect+`WHERE o.share_token = ?`, lookupValue)
	} else {
		lookupValue = query.TrackingID()
		row = tx.Raw(trackSelect+`WHERE o.tracking_id = ?`, lookupValue)
	}

	resp, storedEmail, err := scanTrackRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", lookupValue)
	}
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	// Token lookups skip the email check: holding the token is proof enough.
	if query.ShareToken() == "" && storedEmail != "" &&
		!strings.EqualFold(storedEmail, query.Email()) {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", lookupValue)
	}

	resp.History, err = fetchHistory(tx, resp.TrackingID)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return resp, nil
}

// scanTrackRow reads a single trackSelect row, returning the stored customer
// email alongside the public projection.
func scanTrackRow(row *gorm.DB) (TrackOrderQueryResponse, string, error) {
	rows, err := row.Rows()
	if err != nil {
		return TrackOrderQueryResponse{}, "", err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackOrderQueryResponse{}, "", err
		}
		return TrackOrderQueryResponse{}, "", sql.ErrNoRows
	}

	var resp TrackOrderQueryResponse
	var storedEmail string
	if err = rows.Scan(
		&resp.TrackingID,
		&storedEmail,
		&resp.StatusCode,
		&resp.StatusLabel,
		&resp.PickupAddress,
		&resp.DropoffAddress,
		&resp.CurrentLat,
		&resp.CurrentLng,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return TrackOrderQueryResponse{}, "", err
	}

	return resp, storedEmail, rows.Err()
}
