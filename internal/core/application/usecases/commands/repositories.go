// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusRepoFactory provides access to the status repository within a transaction.
	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	// HistoryRepoFactory provides access to the history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// StatusUoW manages transactions for registry-only operations.
	// Used when commands only touch status entries.
	StatusUoW interface {
		TxManager
		StatusRepoFactory
	}

	// StatusUoWFactory creates new registry unit of work instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// StatusOrderUoW manages transactions that read orders while mutating
	// the registry. Status deletion uses it to count live references.
	StatusOrderUoW interface {
		TxManager
		StatusRepoFactory
		OrderRepoFactory
	}

	// StatusOrderUoWFactory creates new StatusOrderUoW instances.
	StatusOrderUoWFactory interface {
		Create() StatusOrderUoW
	}

	// UoW manages transactions across orders, the registry and the history
	// ledger. Order creation, the guarded update path and the archival job
	// all run on it: one transaction covers the read, the write and the
	// history append.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ord, err := uow.OrderRepository().GetForUpdate(ctx, trackingID, companyID)
	//   // ... guard, apply, record
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		StatusRepoFactory
		HistoryRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
