package queries

import (
	"context"
	"database/sql"
	"errors"

	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// orderSelect is the shared projection for order reads; every order query
// joins the registry so the status arrives resolved.
const orderSelect = `
	SELECT
		o.tracking_id,
		o.company_id,
		o.customer_name,
		o.customer_email,
		o.customer_phone,
		o.pickup_address,
		o.pickup_lat,
		o.pickup_lng,
		o.dropoff_address,
		o.dropoff_lat,
		o.dropoff_lng,
		o.instructions,
		o.current_lat,
		o.current_lng,
		o.delivery_person_id,
		s.code,
		s.label,
		o.share_token,
		o.created_at,
		o.updated_at
	FROM orders o
	JOIN statuses s ON s.id = o.status_id
`

// GetOrderQueryHandler reads one order row with its status resolved.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. A row outside the actor's company scope is
// reported as not found.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	tx := h.db.WithContext(ctx)
	var row *gorm.DB
	if query.Actor().IsSuperAdmin() {
		row = tx.Raw(orderSelect+`WHERE o.tracking_id = ?`, query.TrackingID().String())
	} else {
		row = tx.Raw(orderSelect+`WHERE o.tracking_id = ? AND o.company_id = ?`,
			query.TrackingID().String(), query.Actor().CompanyID().String())
	}

	resp, err := scanOrderRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("trackingId", query.TrackingID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

// scanOrderRow reads a single orderSelect row. Returns sql.ErrNoRows when the
// result set is empty.
func scanOrderRow(row *gorm.DB) (OrderResponse, error) {
	rows, err := row.Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, sql.ErrNoRows
	}

	resp, err := scanOrder(rows)
	if err != nil {
		return OrderResponse{}, err
	}
	return resp, rows.Err()
}

// scanOrder maps the current orderSelect row into a response.
func scanOrder(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	err := rows.Scan(
		&resp.TrackingID,
		&resp.CompanyID,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&resp.CustomerPhone,
		&resp.PickupAddress,
		&resp.PickupLat,
		&resp.PickupLng,
		&resp.DropoffAddress,
		&resp.DropoffLat,
		&resp.DropoffLng,
		&resp.Instructions,
		&resp.CurrentLat,
		&resp.CurrentLng,
		&resp.DeliveryPersonID,
		&resp.StatusCode,
		&resp.StatusLabel,
		&resp.ShareToken,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	return resp, err
}
