package commands

import (
	"context"

	"shiptrack/internal/pkg/errs"
)

// DeleteStatusCommandHandler handles status deletion. System statuses are
// protected, and a status still referenced by live orders cannot go; both
// checks run against the same transactional snapshot the delete uses.
type DeleteStatusCommandHandler struct {
	uowFactory StatusOrderUoWFactory
}

// NewDeleteStatusCommandHandler creates a handler for status deletion.
func NewDeleteStatusCommandHandler(uowFactory StatusOrderUoWFactory) DeleteStatusCommandHandler {
	return DeleteStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. Orders whose history mentions the
// status but whose current status is different do not block deletion.
func (h DeleteStatusCommandHandler) Handle(ctx context.Context, cmd DeleteStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().IsDelivery() {
		return errs.NewForbiddenError("delivery role cannot manage statuses")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	statusRepo := uow.StatusRepository()
	target, err := statusRepo.Get(ctx, cmd.StatusID())
	if err != nil {
		return err
	}

	referencing, err := uow.OrderRepository().CountByStatus(ctx, target.ID())
	if err != nil {
		return err
	}

	if err = target.EnsureDeletable(referencing); err != nil {
		return err
	}

	if err = statusRepo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
