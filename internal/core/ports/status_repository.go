package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
)

// StatusRepository defines the persistence contract for the status registry.
// The registry is global, not per-company; codes are unique across it.
type StatusRepository interface {
	// Add persists a new status. Fails with a conflict error when the
	// code is already registered.
	Add(ctx context.Context, aggregate *status.Status) error

	// Update persists changes to an existing status.
	Update(ctx context.Context, aggregate *status.Status) error

	// Delete removes a status by id. Callers are expected to have run the
	// aggregate's deletability checks first.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a status by id.
	Get(ctx context.Context, id kernel.UUID) (*status.Status, error)

	// GetByCode retrieves a status by its canonical code.
	// Returns a not-found error for unknown codes.
	GetByCode(ctx context.Context, code string) (*status.Status, error)

	// GetAll retrieves the whole registry ordered by sort order, then code.
	GetAll(ctx context.Context) ([]*status.Status, error)
}
