package commands

import (
	"context"

	"tanker/internal/core/ports"
)

// MarkReachedCommandHandler handles the driver's arrival at the destination.
type MarkReachedCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewMarkReachedCommandHandler creates a handler for arrival marking.
func NewMarkReachedCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.ChangeNotifier,
) MarkReachedCommandHandler {
	return MarkReachedCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the arrival command.
// Valid only for the confirmed driver on an order whose ride has started.
func (h MarkReachedCommandHandler) Handle(ctx context.Context, cmd MarkReachedCommand) error {
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

	if err = ord.MarkReached(cmd.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderChanged(ctx, ord.ID())
	return nil
}
