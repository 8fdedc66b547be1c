package commands

import (
	"context"

	"tanker/internal/core/ports"
	"tanker/internal/pkg/errs"
)

// ConfirmOrderCommandHandler handles the race-critical driver confirmation.
//
// Several drivers may hold live offers for the same order and confirm
// concurrently. The race is resolved by a single conditional write in the
// store: the order's driver field is set only if it is still unset, and
// whether that write took effect tells this caller whether it won. Exactly
// one confirmation succeeds; every other caller fails with a conflict and
// leaves no side effects.
type ConfirmOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
	notifier   ports.ChangeNotifier
	clock      Clock
}

// NewConfirmOrderCommandHandler creates a handler for driver confirmation.
func NewConfirmOrderCommandHandler(
	uowFactory AssignmentUoWFactory,
	notifier ports.ChangeNotifier,
	clock Clock,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle processes the confirmation command.
//
// Preconditions checked before the claim is attempted: a live offer for the
// (order, driver) pair, the offer's own deadline, and the order's supplier
// deadline. Either deadline having lapsed fails with a deadline error; a
// rejected offer fails with a conflict. The claim itself then decides the
// race: winners move the order to accepted, stamp the confirmation time,
// mark themselves busy, and clear every offer row for the order in the same
// transaction.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	offerRepo := uow.OfferRepository()

	pending, err := offerRepo.Get(ctx, cmd.OrderID(), cmd.DriverID())
	if err != nil {
		return err
	}

	if pending.Rejected() {
		return errs.NewConflictError("offer was already rejected by this driver")
	}
	if pending.IsExpired(now) {
		return errs.NewDeadlineExpiredError("driver offer deadline", pending.Deadline())
	}

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if ord.SupplierDeadlineExpired(now) {
		return errs.NewDeadlineExpiredError("supplier response deadline", *ord.SupplierDeadline())
	}

	won, err := orderRepo.ClaimForDriver(ctx, cmd.OrderID(), cmd.DriverID())
	if err != nil {
		return err
	}
	if !won {
		return errs.NewConflictError("already accepted by another driver")
	}

	// The claim set the driver field; apply the same transition to the
	// aggregate loaded before the claim and persist the full state.
	if err = ord.Confirm(cmd.DriverID(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	// All competing offers vanish with the winner's.
	if err = offerRepo.DeleteAllForOrder(ctx, ord.ID()); err != nil {
		return err
	}

	driver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	driver.MarkBusy()
	if err = uow.DriverRepository().Update(ctx, driver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderChanged(ctx, ord.ID())
	h.notifier.OffersChanged(ctx, ord.ID())
	return nil
}
