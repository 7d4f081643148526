package commands

import (
	"context"

	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"
)

// UpdateStatusCommandHandler handles status relabeling. System statuses may
// be relabeled too; only their deletion is protected.
type UpdateStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

// NewUpdateStatusCommandHandler creates a handler for status relabeling.
func NewUpdateStatusCommandHandler(uowFactory StatusUoWFactory) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the relabel command and returns the updated status.
func (h UpdateStatusCommandHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) (*status.Status, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.Actor().IsDelivery() {
		return nil, errs.NewForbiddenError("delivery role cannot manage statuses")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	statusRepo := uow.StatusRepository()
	target, err := statusRepo.Get(ctx, cmd.StatusID())
	if err != nil {
		return nil, err
	}

	if err = target.Rename(cmd.Label(), cmd.Description()); err != nil {
		return nil, err
	}

	if err = statusRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
