package commands_test

import (
	"testing"
	"time"

	"tanker/internal/core/application/usecases/commands"
	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/domain/model/offer"
	"tanker/internal/core/domain/model/party"
	"tanker/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrderCommandHandler_Handle_WinnerTakesOrder(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	customerID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	ord := timedOrder(t, customerID, supplierID, now)
	pending, err := offer.NewDriverOffer(ord.ID(), driverID, supplierID, now)
	require.NoError(t, err)
	driver, err := party.NewDriver(driverID, supplierID)
	require.NoError(t, err)

	cmd, err := commands.NewConfirmOrderCommand(ord.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	offerRepo := new(MockOfferRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, ord.ID(), driverID).Return(pending, nil).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("ClaimForDriver", mock.Anything, ord.ID(), driverID).Return(true, nil).Once(),
		orderRepo.On("Update", mock.Anything, ord).Return(nil).Once(),
		offerRepo.On("DeleteAllForOrder", mock.Anything, ord.ID()).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Twice(),
		driverRepo.On("Get", mock.Anything, driverID).Return(driver, nil).Once(),
		driverRepo.On("Update", mock.Anything, driver).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory, quietNotifier(), fixedClock(now.Add(30*time.Second)))
	require.NoError(t, h.Handle(ctx, cmd))

	require.True(t, ord.IsAssignedToDriver(driverID))
	require.NotNil(t, ord.ConfirmedAt())
	require.False(t, driver.IsAvailable())
	orderRepo.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_LoserGetsConflict(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	customerID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	ord := timedOrder(t, customerID, supplierID, now)
	pending, err := offer.NewDriverOffer(ord.ID(), driverID, supplierID, now)
	require.NoError(t, err)

	cmd, err := commands.NewConfirmOrderCommand(ord.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, ord.ID(), driverID).Return(pending, nil).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("ClaimForDriver", mock.Anything, ord.ID(), driverID).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockChangeNotifier)
	h := commands.NewConfirmOrderCommandHandler(factory, notifier, fixedClock(now.Add(30*time.Second)))
	handleErr := h.Handle(ctx, cmd)
	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrConflict)
	require.ErrorContains(t, handleErr, "already accepted by another driver")

	// losing side leaves no trace
	orderRepo.AssertNotCalled(t, "Update")
	offerRepo.AssertNotCalled(t, "DeleteAllForOrder")
	notifier.AssertNotCalled(t, "OrderChanged")
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_DriverDeadlineLapsed(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	customerID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	ord := timedOrder(t, customerID, supplierID, now)
	pending, err := offer.NewDriverOffer(ord.ID(), driverID, supplierID, now)
	require.NoError(t, err)

	cmd, err := commands.NewConfirmOrderCommand(ord.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, ord.ID(), driverID).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	// 61 seconds after the offer with a 1-minute window
	h := commands.NewConfirmOrderCommandHandler(factory, quietNotifier(), fixedClock(now.Add(61*time.Second)))
	handleErr := h.Handle(ctx, cmd)
	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrDeadlineExpired)
	orderRepo.AssertNotCalled(t, "ClaimForDriver")
}

func TestConfirmOrderCommandHandler_Handle_SupplierDeadlineLapsed(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	customerID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	ord := timedOrder(t, customerID, supplierID, now)
	// offer handed out late in the supplier window; its own minute is still live
	lateOffer, err := offer.NewDriverOffer(ord.ID(), driverID, supplierID, now.Add(4*time.Minute+30*time.Second))
	require.NoError(t, err)

	cmd, err := commands.NewConfirmOrderCommand(ord.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, ord.ID(), driverID).Return(lateOffer, nil).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	// 5m10s after acceptance: supplier window gone, offer window not yet
	h := commands.NewConfirmOrderCommandHandler(factory, quietNotifier(), fixedClock(now.Add(5*time.Minute+10*time.Second)))
	handleErr := h.Handle(ctx, cmd)
	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrDeadlineExpired)
	orderRepo.AssertNotCalled(t, "ClaimForDriver")
}

func TestConfirmOrderCommandHandler_Handle_RejectedOffer(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	customerID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	ord := timedOrder(t, customerID, supplierID, now)
	rejected, err := offer.NewDriverOffer(ord.ID(), driverID, supplierID, now)
	require.NoError(t, err)
	require.NoError(t, rejected.Reject(now.Add(10*time.Second)))

	cmd, err := commands.NewConfirmOrderCommand(ord.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, ord.ID(), driverID).Return(rejected, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory, quietNotifier(), fixedClock(now.Add(20*time.Second)))
	handleErr := h.Handle(ctx, cmd)
	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrConflict)
}

func TestConfirmOrderCommandHandler_Handle_NoOffer(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewConfirmOrderCommand(orderID, driverID)
	require.NoError(t, err)

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(new(MockOrderRepository)).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", mock.Anything, orderID, driverID).
			Return(nil, errs.NewObjectNotFoundError("offer", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory, quietNotifier(), fixedClock(now))
	handleErr := h.Handle(ctx, cmd)
	require.Error(t, handleErr)
	require.ErrorIs(t, handleErr, errs.ErrObjectNotFound)
}
