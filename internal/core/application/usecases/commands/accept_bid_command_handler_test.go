package commands_test

import (
	"testing"
	"time"

	"tanker/internal/core/application/usecases/commands"
	"tanker/internal/core/domain/model/bid"
	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/domain/model/order"
	"tanker/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptBidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	customerID := kernel.NewUUID()
	supplierID := kernel.NewUUID()

	ord := openOrder(t, customerID, now)
	accepted, err := bid.NewBid(kernel.NewUUID(), ord.ID(), supplierID, kernel.Money(9500), now)
	require.NoError(t, err)

	cmd, err := commands.NewAcceptBidCommand(accepted.ID(), customerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		bidRepo.On("Get", mock.Anything, accepted.ID()).Return(accepted, nil).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		bidRepo.On("DeleteAllForOrder", mock.Anything, ord.ID()).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderBidUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptBidCommandHandler(factory, quietNotifier(), fixedClock(now))
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.SupplierTimer, ord.Status())
	require.NotNil(t, ord.Supplier())
	require.True(t, ord.IsOwnedBySupplier(supplierID))
	require.Equal(t, kernel.Money(9500), *ord.AcceptedPrice())
	require.Equal(t, now.Add(order.SupplierResponseWindow), *ord.SupplierDeadline())
	orderRepo.AssertExpectations(t)
	bidRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptBidCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	supplierID := kernel.NewUUID()

	ord := openOrder(t, kernel.NewUUID(), now)
	accepted, err := bid.NewBid(kernel.NewUUID(), ord.ID(), supplierID, kernel.Money(9500), now)
	require.NoError(t, err)

	cmd, err := commands.NewAcceptBidCommand(accepted.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		bidRepo.On("Get", mock.Anything, accepted.ID()).Return(accepted, nil).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderBidUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptBidCommandHandler(factory, quietNotifier(), fixedClock(now))
	handleErr := h.Handle(ctx, cmd)
	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrConflict)
	require.Equal(t, order.Open, ord.Status())
}

func TestAcceptBidCommandHandler_Handle_OrderNoLongerOpen(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	customerID := kernel.NewUUID()

	ord := timedOrder(t, customerID, kernel.NewUUID(), now)
	straggler, err := bid.NewBid(kernel.NewUUID(), ord.ID(), kernel.NewUUID(), kernel.Money(9400), now)
	require.NoError(t, err)

	cmd, err := commands.NewAcceptBidCommand(straggler.ID(), customerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		bidRepo.On("Get", mock.Anything, straggler.ID()).Return(straggler, nil).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderBidUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptBidCommandHandler(factory, quietNotifier(), fixedClock(now))
	handleErr := h.Handle(ctx, cmd)
	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrInvalidState)
	require.ErrorContains(t, handleErr, "supplier_timer")
	bidRepo.AssertNotCalled(t, "DeleteAllForOrder")
}

func TestAcceptBidCommandHandler_Handle_BidNotFound(t *testing.T) {
	ctx := t.Context()
	bidID := kernel.NewUUID()

	cmd, err := commands.NewAcceptBidCommand(bidID, kernel.NewUUID())
	require.NoError(t, err)

	bidRepo := new(MockBidRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(new(MockOrderRepository)).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		bidRepo.On("Get", mock.Anything, bidID).
			Return(nil, errs.NewObjectNotFoundError("bidID", bidID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderBidUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptBidCommandHandler(factory, quietNotifier(), fixedClock(time.Now()))
	handleErr := h.Handle(ctx, cmd)
	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrObjectNotFound)
}
