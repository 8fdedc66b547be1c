package commands

import (
	"context"
	"errors"

	"tanker/internal/core/domain/model/offer"
	"tanker/internal/core/domain/model/order"
	"tanker/internal/core/ports"
	"tanker/internal/pkg/errs"
)

// AssignDriverCommandHandler handles the business logic for driver fan-out.
// The supplier holding an order under the confirmation timer may offer it to
// any number of roster drivers concurrently; each offer carries its own
// short deadline. A driver who rejected the order stays rejected — the
// supplier cannot re-offer past an explicit decline.
type AssignDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
	notifier   ports.ChangeNotifier
	clock      Clock
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory AssignmentUoWFactory,
	notifier ports.ChangeNotifier,
	clock Clock,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle processes the driver assignment command.
// A stale non-rejected offer for the same (order, driver) pair is replaced
// with a fresh one, restarting the driver's window. A rejected offer is
// never replaced.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	if ord.Status() != order.SupplierTimer {
		return errs.NewInvalidStateError(
			"assign driver", order.SupplierTimer.String(), ord.Status().String())
	}

	if !ord.IsOwnedBySupplier(cmd.SupplierID()) {
		return errs.NewConflictError("order is not held by this supplier")
	}

	driver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if !driver.BelongsTo(cmd.SupplierID()) {
		return errs.NewConflictError("driver is not in this supplier's roster")
	}

	offerRepo := uow.OfferRepository()

	prior, err := offerRepo.Get(ctx, cmd.OrderID(), cmd.DriverID())
	switch {
	case err == nil:
		if prior.Rejected() {
			return errs.NewConflictError("driver has already rejected this order")
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// first offer to this driver
	default:
		return err
	}

	newOffer, err := offer.NewDriverOffer(
		cmd.OrderID(),
		cmd.DriverID(),
		cmd.SupplierID(),
		h.clock(),
	)
	if err != nil {
		return err
	}

	// Put replaces any stale non-rejected row for the pair in one statement.
	if err = offerRepo.Put(ctx, newOffer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OffersChanged(ctx, ord.ID())
	return nil
}
