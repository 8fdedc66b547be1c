package commands

import (
	"context"

	"tanker/internal/core/ports"
	"tanker/internal/pkg/errs"
)

// AcceptBidCommandHandler handles the business logic for bid acceptance.
// Acceptance is exclusive: the accepted supplier, its price, and a bounded
// confirmation deadline are stamped on the order, and every bid on the order
// is purged in the same transaction. From that point the supplier races its
// own clock to get a driver confirmed.
type AcceptBidCommandHandler struct {
	uowFactory OrderBidUoWFactory
	notifier   ports.ChangeNotifier
	clock      Clock
}

// NewAcceptBidCommandHandler creates a handler for bid acceptance.
func NewAcceptBidCommandHandler(
	uowFactory OrderBidUoWFactory,
	notifier ports.ChangeNotifier,
	clock Clock,
) AcceptBidCommandHandler {
	return AcceptBidCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle processes the bid acceptance command.
// Only the customer who opened the order may accept, and only while the
// order is still open; two customers cannot race here because the order is
// single-owner, but a double-submit of the same acceptance fails with an
// invalid state error carrying the current status.
func (h AcceptBidCommandHandler) Handle(ctx context.Context, cmd AcceptBidCommand) error {
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
	bidRepo := uow.BidRepository()

	acceptedBid, err := bidRepo.Get(ctx, cmd.BidID())
	if err != nil {
		return err
	}

	ord, err := orderRepo.Get(ctx, acceptedBid.OrderID())
	if err != nil {
		return err
	}

	if !ord.IsOwnedByCustomer(cmd.CustomerID()) {
		return errs.NewConflictError("order does not belong to this customer")
	}

	if err = ord.AcceptBid(acceptedBid.SupplierID(), acceptedBid.Price(), h.clock()); err != nil {
		return err
	}

	// Bids may not outlive acceptance.
	if err = bidRepo.DeleteAllForOrder(ctx, ord.ID()); err != nil {
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
