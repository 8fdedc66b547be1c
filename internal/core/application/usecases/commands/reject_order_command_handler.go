package commands

import (
	"context"

	"tanker/internal/core/ports"
)

// RejectOrderCommandHandler handles a driver declining an offer.
// Rejection marks the one offer row and nothing else: the order and every
// other driver's offer are untouched. A decline is final for the pair — the
// supplier cannot re-offer this order to this driver afterwards.
type RejectOrderCommandHandler struct {
	uowFactory OfferUoWFactory
	notifier   ports.ChangeNotifier
	clock      Clock
}

// NewRejectOrderCommandHandler creates a handler for offer rejection.
func NewRejectOrderCommandHandler(
	uowFactory OfferUoWFactory,
	notifier ports.ChangeNotifier,
	clock Clock,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle processes the rejection command.
// A driver cannot retroactively decline an expired offer: the deadline check
// runs at this moment, and a lapsed one fails with a deadline error.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	offerRepo := uow.OfferRepository()

	pending, err := offerRepo.Get(ctx, cmd.OrderID(), cmd.DriverID())
	if err != nil {
		return err
	}

	if err = pending.Reject(h.clock()); err != nil {
		return err
	}

	if err = offerRepo.Update(ctx, pending); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OffersChanged(ctx, cmd.OrderID())
	return nil
}
