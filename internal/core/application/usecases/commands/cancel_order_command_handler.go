package commands

import (
	"context"

	"tanker/internal/core/domain/model/history"
	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/ports"
	"tanker/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order withdrawal from any pre-finished
// state. Cancellation removes the order and everything hanging off it: all
// bids, all driver offers, and the order row. When a driver was already
// locked in, a cancelled history record is archived first and the driver is
// freed.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.ChangeNotifier
	clock      Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.ChangeNotifier,
	clock Clock,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle processes the cancellation command.
// Succeeds from any state before finished; a finished order leaves the
// system through rating instead and fails here with a conflict.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !ord.Status().CanBeCancelled() {
		return errs.NewConflictError("finished order cannot be cancelled")
	}

	if ord.Status().HasDriverLockedIn() {
		record, recordErr := history.NewRecord(
			kernel.NewUUID(),
			ord.ID(),
			ord.CustomerID(),
			*ord.Supplier(),
			ord.Driver(),
			history.OutcomeCancelled,
			*ord.AcceptedPrice(),
			ord.Quantity(),
			ord.Location(),
			ord.ConfirmedAt(),
			h.clock(),
		)
		if recordErr != nil {
			return recordErr
		}

		if err = uow.HistoryRepository().Add(ctx, record); err != nil {
			return err
		}

		driver, driverErr := uow.DriverRepository().Get(ctx, *ord.Driver())
		if driverErr != nil {
			return driverErr
		}
		driver.MarkAvailable()
		if err = uow.DriverRepository().Update(ctx, driver); err != nil {
			return err
		}
	}

	if err = uow.OfferRepository().DeleteAllForOrder(ctx, ord.ID()); err != nil {
		return err
	}

	if err = uow.BidRepository().DeleteAllForOrder(ctx, ord.ID()); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, ord.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderChanged(ctx, ord.ID())
	h.notifier.OffersChanged(ctx, ord.ID())
	return nil
}
