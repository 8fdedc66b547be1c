package commands

import (
	"context"

	"tanker/internal/core/domain/model/bid"
	"tanker/internal/core/domain/model/order"
	"tanker/internal/core/ports"
	"tanker/internal/pkg/errs"
)

// PlaceBidCommandHandler handles the business logic for supplier bidding.
// Bids are competitive: many suppliers may bid on the same open order, and
// the same supplier may bid repeatedly to undercut. Acceptance is the
// customer's move, not the handler's.
type PlaceBidCommandHandler struct {
	uowFactory OrderBidUoWFactory
	notifier   ports.ChangeNotifier
	clock      Clock
}

// NewPlaceBidCommandHandler creates a handler for supplier bidding.
func NewPlaceBidCommandHandler(
	uowFactory OrderBidUoWFactory,
	notifier ports.ChangeNotifier,
	clock Clock,
) PlaceBidCommandHandler {
	return PlaceBidCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle processes the bid placement command.
// The order must still be open with no accepted supplier; a bid against an
// order that moved on fails with a conflict so the supplier can refresh.
func (h PlaceBidCommandHandler) Handle(ctx context.Context, cmd PlaceBidCommand) error {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if ord.Status() != order.Open || ord.Supplier() != nil {
		return errs.NewConflictError("order is no longer open for bidding")
	}

	newBid, err := bid.NewBid(
		cmd.BidID(),
		cmd.OrderID(),
		cmd.SupplierID(),
		cmd.Price(),
		h.clock(),
	)
	if err != nil {
		return err
	}

	if err = uow.BidRepository().Add(ctx, newBid); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderChanged(ctx, ord.ID())
	return nil
}
