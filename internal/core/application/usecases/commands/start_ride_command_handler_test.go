package commands_test

import (
	"testing"
	"time"

	"tanker/internal/core/application/usecases/commands"
	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/domain/model/order"
	"tanker/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartRideCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	driverID := kernel.NewUUID()

	ord := confirmedOrder(t, kernel.NewUUID(), kernel.NewUUID(), driverID, now)

	cmd, err := commands.NewStartRideCommand(ord.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartRideCommandHandler(factory, quietNotifier())
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.RideStarted, ord.Status())
	uow.AssertExpectations(t)
}

func TestStartRideCommandHandler_Handle_WrongState(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	driverID := kernel.NewUUID()

	ord := confirmedOrder(t, kernel.NewUUID(), kernel.NewUUID(), driverID, now)
	require.NoError(t, ord.StartRide(driverID))

	cmd, err := commands.NewStartRideCommand(ord.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartRideCommandHandler(factory, quietNotifier())
	handleErr := h.Handle(ctx, cmd)
	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrInvalidState)
	require.ErrorContains(t, handleErr, "ride_started")
	orderRepo.AssertNotCalled(t, "Update")
}

func TestMarkReachedCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	driverID := kernel.NewUUID()

	ord := confirmedOrder(t, kernel.NewUUID(), kernel.NewUUID(), driverID, now)
	require.NoError(t, ord.StartRide(driverID))

	cmd, err := commands.NewMarkReachedCommand(ord.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkReachedCommandHandler(factory, quietNotifier())
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Reached, ord.Status())
}

func TestMarkReachedCommandHandler_Handle_SkippedRideStart(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	driverID := kernel.NewUUID()

	ord := confirmedOrder(t, kernel.NewUUID(), kernel.NewUUID(), driverID, now)

	cmd, err := commands.NewMarkReachedCommand(ord.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkReachedCommandHandler(factory, quietNotifier())
	handleErr := h.Handle(ctx, cmd)
	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrInvalidState)
}
