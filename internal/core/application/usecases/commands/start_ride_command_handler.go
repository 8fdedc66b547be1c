package commands

import (
	"context"

	"tanker/internal/core/ports"
)

// StartRideCommandHandler handles the confirmed driver's departure.
type StartRideCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewStartRideCommandHandler creates a handler for ride start.
func NewStartRideCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.ChangeNotifier,
) StartRideCommandHandler {
	return StartRideCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the ride start command.
// Only the confirmed driver may depart, and only from the accepted state;
// any other state fails with an invalid state error carrying the current
// status.
func (h StartRideCommandHandler) Handle(ctx context.Context, cmd StartRideCommand) error {
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

	if err = ord.StartRide(cmd.DriverID()); err != nil {
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
