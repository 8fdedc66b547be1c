package commands

import (
	"context"

	"tanker/internal/core/domain/model/history"
	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/ports"
)

// FinishOrderCommandHandler handles delivery completion.
// Finishing archives a completed history record and frees the driver in the
// same transaction. The order row itself survives in the finished state so
// the customer can still rate the delivery; the rating removes it.
type FinishOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.ChangeNotifier
	clock      Clock
}

// NewFinishOrderCommandHandler creates a handler for delivery completion.
func NewFinishOrderCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier ports.ChangeNotifier,
	clock Clock,
) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle processes the completion command.
// Valid only for the confirmed driver on an order that reached its
// destination.
func (h FinishOrderCommandHandler) Handle(ctx context.Context, cmd FinishOrderCommand) error {
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

	if err = ord.Finish(cmd.DriverID()); err != nil {
		return err
	}

	record, err := history.NewRecord(
		kernel.NewUUID(),
		ord.ID(),
		ord.CustomerID(),
		*ord.Supplier(),
		ord.Driver(),
		history.OutcomeCompleted,
		*ord.AcceptedPrice(),
		ord.Quantity(),
		ord.Location(),
		ord.ConfirmedAt(),
		h.clock(),
	)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	driver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	driver.MarkAvailable()
	if err = uow.DriverRepository().Update(ctx, driver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderChanged(ctx, ord.ID())
	return nil
}
