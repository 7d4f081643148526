package queries

import (
	"errors"

	"shiptrack/internal/pkg/guard"
)

var ErrListStatusesQueryIsNotConstructed = errors.New(
	"ListStatusesQuery must be created via NewListStatusesQuery constructor",
)

// ListStatusesQuery retrieves the whole status registry in display order.
// The registry is global, so the query carries no parameters.
type ListStatusesQuery struct {
	guard guard.ConstructorGuard
}

// NewListStatusesQuery creates a query for the status registry.
func NewListStatusesQuery() ListStatusesQuery {
	return ListStatusesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListStatusesQuery) Validate() error {
	return q.guard.Validate(ErrListStatusesQueryIsNotConstructed)
}

// StatusResponse is one registry entry.
type StatusResponse struct {
	ID          string
	Code        string
	Label       string
	Description string
	IsSystem    bool
	SortOrder   int
}
