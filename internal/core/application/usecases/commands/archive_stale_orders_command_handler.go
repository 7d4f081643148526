package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/core/domain/services"
)

// ArchiveStaleOrdersCommandHandler sweeps orders stuck in non-terminal states
// into "archived". Orders in delivered, completed or archived are never
// touched: archiving a delivered order would sidestep the completion flow,
// and the other two are already terminal.
type ArchiveStaleOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewArchiveStaleOrdersCommandHandler creates a handler for the archival sweep.
func NewArchiveStaleOrdersCommandHandler(uowFactory UoWFactory) ArchiveStaleOrdersCommandHandler {
	return ArchiveStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and returns how many orders were archived.
// Every archived order gets a history entry; the whole sweep is one
// transaction.
func (h ArchiveStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ArchiveStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	statusRepo := uow.StatusRepository()
	allStatuses, err := statusRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	var archivedStatus *status.Status
	var archivable []kernel.UUID
	for _, s := range allStatuses {
		switch s.Code() {
		case status.CodeArchived:
			archivedStatus = s
		case status.CodeDelivered, status.CodeCompleted:
			// excluded from the sweep
		default:
			archivable = append(archivable, s.ID())
		}
	}
	if archivedStatus == nil || len(archivable) == 0 {
		return 0, nil
	}

	now := time.Now()
	cutoff := now.Add(-cmd.OlderThan())
	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetStaleInStatuses(ctx, archivable, cutoff)
	if err != nil {
		return 0, err
	}

	recorder := services.NewHistoryRecorder()
	for _, ord := range stale {
		previousStatusID := ord.StatusID()

		changes := order.NewChangeSet()
		changes.SetStatusCode(status.CodeArchived)
		archivedID := archivedStatus.ID()
		if err = ord.Apply(changes, &archivedID, now); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, ord); err != nil {
			return 0, err
		}

		entry, err := recorder.RecordIfChanged(
			ord.TrackingID(), previousStatusID, ord.StatusID(), ord.CurrentLocation(), nil, now)
		if err != nil {
			return 0, err
		}
		if entry != nil {
			if err = uow.HistoryRepository().Add(ctx, entry); err != nil {
				return 0, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
