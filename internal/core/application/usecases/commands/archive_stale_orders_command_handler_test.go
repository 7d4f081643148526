package commands_test

import (
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArchiveStaleOrdersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewArchiveStaleOrdersCommand(30 * 24 * time.Hour)
	require.NoError(t, err)

	registry := []*status.Status{
		testStatus(t, status.CodeCreated, true),
		testStatus(t, status.CodeInTransit, true),
		testStatus(t, status.CodeOutForDelivery, true),
		testStatus(t, status.CodeDelivered, true),
		testStatus(t, status.CodeCompleted, true),
		testStatus(t, status.CodeArchived, true),
		testStatus(t, "held", false),
	}
	archived := registry[5]

	companyID := kernel.NewUUID()
	staleOrder := testOrder(t, companyID, registry[0].ID(), nil)

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	// delivered, completed and archived never appear in the sweep set.
	sweepSet := []kernel.UUID{registry[0].ID(), registry[1].ID(), registry[2].ID(), registry[6].ID()}

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		statusRepo.On("GetAll", mock.Anything).Return(registry, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetStaleInStatuses", mock.Anything, sweepSet, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{staleOrder}, nil).Once(),
		orderRepo.On("Update", mock.Anything, staleOrder).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", mock.Anything, mock.AnythingOfType("*history.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveStaleOrdersCommandHandler(factory)
	archivedCount, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, archivedCount)
	assert.True(t, staleOrder.StatusID().IsEqual(archived.ID()))
	orderRepo.AssertExpectations(t)
	statusRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestArchiveStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewArchiveStaleOrdersCommand(30 * 24 * time.Hour)
	require.NoError(t, err)

	registry := []*status.Status{
		testStatus(t, status.CodeCreated, true),
		testStatus(t, status.CodeArchived, true),
	}

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		statusRepo.On("GetAll", mock.Anything).Return(registry, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetStaleInStatuses", mock.Anything, []kernel.UUID{registry[0].ID()}, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveStaleOrdersCommandHandler(factory)
	archivedCount, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, archivedCount)
	uow.AssertExpectations(t)
}

func TestArchiveStaleOrdersCommand_RejectsNonPositiveThreshold(t *testing.T) {
	_, err := commands.NewArchiveStaleOrdersCommand(0)
	require.Error(t, err)

	_, err = commands.NewArchiveStaleOrdersCommand(-time.Hour)
	require.Error(t, err)
}
