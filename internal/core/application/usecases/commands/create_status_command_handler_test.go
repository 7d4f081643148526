package commands_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateStatusCommandHandler_Handle_NormalizesCode(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, kernel.RoleAdmin, kernel.NewUUID())
	cmd, err := commands.NewCreateStatusCommand(actor, "Out For Delivery", "Out for delivery", "", 35)
	require.NoError(t, err)

	statusRepo := new(MockStatusRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		statusRepo.On("Add", mock.Anything, mock.AnythingOfType("*status.Status")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateStatusCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "out_for_delivery", created.Code())
	assert.False(t, created.IsSystem(), "caller-created statuses are never system")
	statusRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateStatusCommandHandler_Handle_DuplicateCode(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, kernel.RoleAdmin, kernel.NewUUID())
	cmd, err := commands.NewCreateStatusCommand(actor, "in_transit", "In transit", "", 20)
	require.NoError(t, err)

	statusRepo := new(MockStatusRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		statusRepo.On("Add", mock.Anything, mock.AnythingOfType("*status.Status")).
			Return(errs.NewConflictError("code", "in_transit", "status code already exists")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}

func TestCreateStatusCommandHandler_Handle_DeliveryForbidden(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, kernel.RoleDelivery, kernel.NewUUID())
	cmd, err := commands.NewCreateStatusCommand(actor, "held", "Held", "", 70)
	require.NoError(t, err)

	factory := new(MockStatusUoWFactory)
	h := commands.NewCreateStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateStatusCommandHandler_Handle_RelabelOnly(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, kernel.RoleAdmin, kernel.NewUUID())
	target := testStatus(t, "held", false)
	cmd, err := commands.NewUpdateStatusCommand(actor, target.ID(), "On hold", "waiting on customs")
	require.NoError(t, err)

	statusRepo := new(MockStatusRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		statusRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		statusRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "held", updated.Code(), "code never changes")
	assert.Equal(t, "On hold", updated.Label())
	assert.Equal(t, "waiting on customs", updated.Description())
	uow.AssertExpectations(t)
}

func TestReorderStatusesCommandHandler_Handle_AssignsPositions(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, kernel.RoleAdmin, kernel.NewUUID())
	first := testStatus(t, "held", false)
	second := testStatus(t, "customs", false)
	cmd, err := commands.NewReorderStatusesCommand(actor, []kernel.UUID{first.ID(), second.ID()})
	require.NoError(t, err)

	statusRepo := new(MockStatusRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		statusRepo.On("Get", mock.Anything, first.ID()).Return(first, nil).Once(),
		statusRepo.On("Update", mock.Anything, first).Return(nil).Once(),
		statusRepo.On("Get", mock.Anything, second.ID()).Return(second, nil).Once(),
		statusRepo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReorderStatusesCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, 10, first.SortOrder())
	assert.Equal(t, 20, second.SortOrder())
	uow.AssertExpectations(t)
}

func TestReorderStatusesCommand_RejectsDuplicates(t *testing.T) {
	actor := testActor(t, kernel.RoleAdmin, kernel.NewUUID())
	id := kernel.NewUUID()

	_, err := commands.NewReorderStatusesCommand(actor, []kernel.UUID{id, id})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
