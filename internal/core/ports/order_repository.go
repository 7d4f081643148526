package ports

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are keyed by tracking id; every company-facing lookup is scoped by
// companyID so tenant isolation is enforced at the storage boundary, not in
// handler code.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Fails with a conflict error when the tracking id is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by tracking id within a company scope.
	// Returns a not-found error when the order does not exist or belongs
	// to a different company.
	Get(ctx context.Context, trackingID kernel.TrackingID, companyID kernel.UUID) (*order.Order, error)

	// GetAny retrieves an order by tracking id regardless of company.
	// Reserved for super admin access paths.
	GetAny(ctx context.Context, trackingID kernel.TrackingID) (*order.Order, error)

	// GetForUpdate retrieves an order like Get while holding a row lock
	// for the remainder of the surrounding transaction. Must be called
	// inside an active unit of work.
	GetForUpdate(ctx context.Context, trackingID kernel.TrackingID, companyID kernel.UUID) (*order.Order, error)

	// GetAnyForUpdate is GetAny with a row lock, for super admin mutations.
	GetAnyForUpdate(ctx context.Context, trackingID kernel.TrackingID) (*order.Order, error)

	// GetByShareToken retrieves an order by its public share token.
	// Token lookups are deliberately unscoped; the token itself is the
	// capability.
	GetByShareToken(ctx context.Context, token kernel.ShareToken) (*order.Order, error)

	// GetAllForCompany retrieves every order owned by the company,
	// newest first.
	GetAllForCompany(ctx context.Context, companyID kernel.UUID) ([]*order.Order, error)

	// CountByStatus returns how many orders currently reference the
	// given status, across all companies. Used to protect status deletion.
	CountByStatus(ctx context.Context, statusID kernel.UUID) (int64, error)

	// GetStaleInStatuses retrieves orders whose last update is older than
	// cutoff and whose current status is one of statusIDs. Used by the
	// archival job.
	GetStaleInStatuses(ctx context.Context, statusIDs []kernel.UUID, cutoff time.Time) ([]*order.Order, error)
}
