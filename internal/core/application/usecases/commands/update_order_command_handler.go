package commands

import (
	"context"
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles the guarded order mutation path. The
// whole sequence (read under row lock, authorize, apply, write, append
// history) runs inside one transaction, so concurrent updates to the same
// order serialize and a failed write never leaves a history entry behind.
//
// Example:
//
//	handler := NewUpdateOrderCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrForbidden) {
//	    // the actor may not make this change
//	}
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for guarded order mutations.
// Requires a UoWFactory for transactional persistence.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order mutation command and returns the updated
// aggregate. The submitted status code, when present, is resolved against the
// registry before authorization; an unknown code reaches the guard unresolved
// and surfaces as InvalidInput.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := h.lockOrder(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	statusRepo := uow.StatusRepository()
	currentStatus, err := statusRepo.Get(ctx, ord.StatusID())
	if err != nil {
		return nil, err
	}

	var requestedStatus *status.Status
	if code, hasCode := cmd.Changes().StatusCode(); hasCode {
		requestedStatus, err = statusRepo.GetByCode(ctx, code)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
	}

	guard := services.NewTransitionGuard()
	if err = guard.Authorize(ord, currentStatus, cmd.Actor(), cmd.Changes(), requestedStatus); err != nil {
		return nil, err
	}

	previousStatusID := ord.StatusID()
	previousLocation := ord.CurrentLocation()

	var resolvedStatusID *kernel.UUID
	if requestedStatus != nil {
		id := requestedStatus.ID()
		resolvedStatusID = &id
	}

	now := time.Now()
	if err = ord.Apply(cmd.Changes(), resolvedStatusID, now); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return nil, err
	}

	var newLocation *kernel.GeoPoint
	if point, hasLocation := cmd.Changes().Location(); hasLocation {
		newLocation = &point
	}

	recorder := services.NewHistoryRecorder()
	entry, err := recorder.RecordIfChanged(
		ord.TrackingID(), previousStatusID, ord.StatusID(), previousLocation, newLocation, now)
	if err != nil {
		return nil, err
	}

	if entry != nil {
		if err = uow.HistoryRepository().Add(ctx, entry); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}

// lockOrder reads the target order while acquiring its row lock. Super admins
// read across companies; everyone else is scoped to their own, and a miss in
// that scope reads as not found.
func (h UpdateOrderCommandHandler) lockOrder(
	ctx context.Context, uow UoW, cmd UpdateOrderCommand,
) (*order.Order, error) {
	orderRepo := uow.OrderRepository()
	if cmd.Actor().IsSuperAdmin() {
		return orderRepo.GetAnyForUpdate(ctx, cmd.TrackingID())
	}
	return orderRepo.GetForUpdate(ctx, cmd.TrackingID(), cmd.Actor().CompanyID())
}
