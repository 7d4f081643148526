package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListStatusesQueryHandler reads the status registry in display order.
type ListStatusesQueryHandler struct {
	db *gorm.DB
}

// NewListStatusesQueryHandler creates a handler for registry reads.
// Requires a GORM database connection for query execution.
func NewListStatusesQueryHandler(db *gorm.DB) ListStatusesQueryHandler {
	return ListStatusesQueryHandler{db: db}
}

// Handle executes the query. Entries come back by sort order, ties broken
// by code so the listing is stable.
func (h ListStatusesQueryHandler) Handle(ctx context.Context, query ListStatusesQuery) ([]StatusResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			label,
			description,
			is_system,
			sort_order
		FROM statuses
		ORDER BY sort_order, code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make([]StatusResponse, 0)
	for rows.Next() {
		var resp StatusResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.Code,
			&resp.Label,
			&resp.Description,
			&resp.IsSystem,
			&resp.SortOrder,
		); err != nil {
			return nil, err
		}
		statuses = append(statuses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}
