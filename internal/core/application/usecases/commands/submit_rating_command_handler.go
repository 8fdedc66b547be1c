package commands

import (
	"context"

	"tanker/internal/core/domain/model/order"
	"tanker/internal/core/ports"
	"tanker/internal/pkg/errs"
)

// SubmitRatingCommandHandler handles the customer's rating of a finished
// delivery. The rating is the order's exit from the live table: the supplier's
// running average is recomputed, the rating is stamped on the archived
// history record, and the order row is deleted, all in one transaction.
type SubmitRatingCommandHandler struct {
	uowFactory RatingUoWFactory
	notifier   ports.ChangeNotifier
}

// NewSubmitRatingCommandHandler creates a handler for rating submission.
func NewSubmitRatingCommandHandler(
	uowFactory RatingUoWFactory,
	notifier ports.ChangeNotifier,
) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the rating command.
// Requires a finished order owned by the caller with a completed, not yet
// rated history record; a second rating of the same order fails with a
// conflict.
func (h SubmitRatingCommandHandler) Handle(ctx context.Context, cmd SubmitRatingCommand) error {
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

	if !ord.IsOwnedByCustomer(cmd.CustomerID()) {
		return errs.NewConflictError("order does not belong to this customer")
	}

	if ord.Status() != order.Finished {
		return errs.NewInvalidStateError(
			"submit rating", order.Finished.String(), ord.Status().String())
	}

	record, err := uow.HistoryRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = record.SubmitRating(cmd.Rating()); err != nil {
		return err
	}

	supplier, err := uow.SupplierRepository().Get(ctx, *ord.Supplier())
	if err != nil {
		return err
	}

	if err = supplier.RecordRating(cmd.Rating()); err != nil {
		return err
	}

	if err = uow.HistoryRepository().Update(ctx, record); err != nil {
		return err
	}

	if err = uow.SupplierRepository().Update(ctx, supplier); err != nil {
		return err
	}

	// The rated order leaves the live table; its history record remains.
	if err = orderRepo.Delete(ctx, ord.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderChanged(ctx, ord.ID())
	return nil
}
