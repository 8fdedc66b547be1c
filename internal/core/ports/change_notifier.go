package ports

import (
	"context"

	"tanker/internal/core/domain/model/kernel"
)

// ChangeNotifier receives a signal whenever an order or the set of driver
// offers for an order changes, for consumption by an external real-time
// broadcast layer. Delivery is fire-and-forget, at-least-once, best-effort:
// the correctness of the lifecycle engine never depends on a signal arriving.
// Handlers fire the signal only after the mutation has committed.
type ChangeNotifier interface {
	// OrderChanged signals that the order's row was created, mutated, or deleted.
	OrderChanged(ctx context.Context, orderID kernel.UUID)

	// OffersChanged signals that the driver-offer rows for the order changed.
	OffersChanged(ctx context.Context, orderID kernel.UUID)
}
