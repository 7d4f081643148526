package commands

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"
)

// CreateStatusCommandHandler handles custom status registration. The code is
// normalized before storage; a duplicate code surfaces as a conflict.
type CreateStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

// NewCreateStatusCommandHandler creates a handler for status registration.
func NewCreateStatusCommandHandler(uowFactory StatusUoWFactory) CreateStatusCommandHandler {
	return CreateStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status registration command and returns the stored
// status with its canonical code. Registry management is an admin concern;
// delivery people are rejected.
func (h CreateStatusCommandHandler) Handle(ctx context.Context, cmd CreateStatusCommand) (*status.Status, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.Actor().IsDelivery() {
		return nil, errs.NewForbiddenError("delivery role cannot manage statuses")
	}

	newStatus, err := status.NewStatus(
		kernel.NewUUID(), cmd.Code(), cmd.Label(), cmd.Description(), cmd.SortOrder())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StatusRepository().Add(ctx, newStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newStatus, nil
}
