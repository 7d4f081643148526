package commands

import (
	"context"

	"shiptrack/internal/pkg/errs"
)

// sortOrderSpacing leaves room between consecutive entries so individual
// inserts do not force a full renumber.
const sortOrderSpacing = 10

// ReorderStatusesCommandHandler handles registry reordering. Every submitted
// status gets a sort order derived from its position; statuses outside the
// submitted sequence keep theirs.
type ReorderStatusesCommandHandler struct {
	uowFactory StatusUoWFactory
}

// NewReorderStatusesCommandHandler creates a handler for registry reordering.
func NewReorderStatusesCommandHandler(uowFactory StatusUoWFactory) ReorderStatusesCommandHandler {
	return ReorderStatusesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reorder command. All position writes share one
// transaction, so a partial reorder never becomes visible.
func (h ReorderStatusesCommandHandler) Handle(ctx context.Context, cmd ReorderStatusesCommand) error {
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
	for position, id := range cmd.StatusIDs() {
		target, err := statusRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		target.SetSortOrder((position + 1) * sortOrderSpacing)
		if err = statusRepo.Update(ctx, target); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
