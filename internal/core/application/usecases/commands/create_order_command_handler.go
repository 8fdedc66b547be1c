package commands

import (
	"context"
	"errors"

	"tanker/internal/core/domain/model/order"
	"tanker/internal/core/domain/services"
	"tanker/internal/core/ports"
	"tanker/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for opening an order.
// Validates the quantity against the price list and the opening bid against
// the tier bounds, retires any prior open order the customer still has, and
// inserts the new order in the open state.
//
// Exactly one open order may exist per customer: creating a new one deletes
// the previous open order and its pending bids in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderBidUoWFactory
	priceList  *services.PriceList
	notifier   ports.ChangeNotifier
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderBidUoWFactory,
	priceList *services.PriceList,
	notifier ports.ChangeNotifier,
	clock Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		priceList:  priceList,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle processes the order creation command.
// Fails with a validation error before any write when the quantity matches no
// tier or the bid price falls outside [85%, 300%] of the tier base price.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.priceList.ValidateBidPrice(cmd.Quantity(), cmd.BidPrice()); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.Location(),
		cmd.Quantity(),
		cmd.BidPrice(),
		h.clock(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	bidRepo := uow.BidRepository()

	// Retire the customer's previous open order, if any, together with its bids.
	prior, err := orderRepo.GetOpenByCustomer(ctx, cmd.CustomerID())
	switch {
	case err == nil:
		if err = bidRepo.DeleteAllForOrder(ctx, prior.ID()); err != nil {
			return err
		}
		if err = orderRepo.Delete(ctx, prior.ID()); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// nothing to retire
	default:
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderChanged(ctx, newOrder.ID())
	return nil
}
