package ports

import (
	"context"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Besides plain CRUD it exposes the one conditional-write primitive the
// confirmation race depends on.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOpenByCustomer retrieves the customer's current open order.
	// Returns ObjectNotFoundError if the customer has no open order.
	// At most one open order exists per customer at any time.
	GetOpenByCustomer(ctx context.Context, customerID kernel.UUID) (*order.Order, error)

	// Delete removes the order row. Used when an order leaves the live table:
	// retirement of a stale open order, cancellation, and post-rating archival.
	Delete(ctx context.Context, id kernel.UUID) error

	// ClaimForDriver performs the atomic set-if-null write that resolves the
	// confirmation race: the order's driver field is set to driverID only if
	// it is currently null. The returned flag reports whether this caller's
	// write took effect; false means another driver already holds the claim.
	// The write must be linearizable with respect to all other writers of the
	// same order row.
	ClaimForDriver(ctx context.Context, orderID, driverID kernel.UUID) (bool, error)
}
