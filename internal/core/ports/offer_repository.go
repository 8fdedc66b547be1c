package ports

import (
	"context"
	"time"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for driver offers.
// The (orderID, driverID) pair is the row identity.
type OfferRepository interface {
	// Put inserts a fresh offer, first deleting any stale non-rejected row
	// for the same (order, driver) pair. A rejected row is never replaced:
	// re-offering after a driver's rejection is disallowed and must be caught
	// by the caller before Put.
	Put(ctx context.Context, aggregate *offer.DriverOffer) error

	// Get retrieves the offer for an (order, driver) pair.
	// Returns ObjectNotFoundError if no offer row exists.
	Get(ctx context.Context, orderID, driverID kernel.UUID) (*offer.DriverOffer, error)

	// Update persists changes to an existing offer (the rejection flag).
	Update(ctx context.Context, aggregate *offer.DriverOffer) error

	// GetAllForOrder retrieves every offer row fanned out for an order.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*offer.DriverOffer, error)

	// DeleteAllForOrder removes every offer row for the order. Invoked when a
	// driver wins the confirmation race and on order cancellation; win or
	// lose, no sibling offer survives confirmation.
	DeleteAllForOrder(ctx context.Context, orderID kernel.UUID) error

	// DeleteExpiredUnrejected removes offer rows whose deadline passed
	// without a rejection. Rejected rows are kept: they carry the
	// no-re-offer-after-rejection rule. Returns the number of rows removed.
	DeleteExpiredUnrejected(ctx context.Context, now time.Time) (int64, error)
}
