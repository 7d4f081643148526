package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/history"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order registration.
// New orders start in the "created" system status, receive a generated share
// token, and open their public timeline with a first history entry. All three
// writes share one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s tracked at token %s", created.TrackingID(), created.ShareToken())
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
// Requires a UoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order registration command. Delivery people cannot
// create orders. The tracking id must be unused; the repository surfaces a
// conflict error when it is taken. Returns the created aggregate so callers
// can render the share token and timestamps.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.Actor().IsDelivery() {
		return nil, errs.NewForbiddenError("delivery role cannot create orders")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	createdStatus, err := uow.StatusRepository().GetByCode(ctx, status.CodeCreated)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newOrder, err := order.NewOrder(
		cmd.TrackingID(),
		cmd.Actor().CompanyID(),
		cmd.CustomerName(),
		cmd.CustomerEmail(),
		cmd.CustomerPhone(),
		cmd.Pickup(),
		cmd.Dropoff(),
		cmd.Instructions(),
		createdStatus.ID(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	firstEntry, err := history.NewEntry(
		kernel.NewUUID(), newOrder.TrackingID(), createdStatus.ID(), nil, now)
	if err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().Add(ctx, firstEntry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
