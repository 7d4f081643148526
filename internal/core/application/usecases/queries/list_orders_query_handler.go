package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the order list for a company, or for the whole
// system when the actor is a super admin.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list reads.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are ordered newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	var result *gorm.DB
	if query.Actor().IsSuperAdmin() {
		result = tx.Raw(orderSelect + `ORDER BY o.created_at DESC, o.tracking_id`)
	} else {
		result = tx.Raw(orderSelect+`WHERE o.company_id = ? ORDER BY o.created_at DESC, o.tracking_id`,
			query.Actor().CompanyID().String())
	}

	rows, err := result.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
