package ports

import (
	"context"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/domain/model/party"
)

// SupplierRepository defines the persistence contract for supplier state the
// engine owns: the running rating and its order count.
type SupplierRepository interface {
	// Add persists a new supplier.
	Add(ctx context.Context, aggregate *party.Supplier) error

	// Get retrieves a supplier by its unique identifier.
	// Returns ObjectNotFoundError if the supplier does not exist.
	Get(ctx context.Context, id kernel.UUID) (*party.Supplier, error)

	// Update persists changes to a supplier's rating state.
	Update(ctx context.Context, aggregate *party.Supplier) error
}

// DriverRepository defines the persistence contract for driver state the
// engine owns: roster membership and the availability flag. The availability
// flag is only ever written inside the same transaction as the order state it
// correlates with.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *party.Driver) error

	// Get retrieves a driver by its unique identifier.
	// Returns ObjectNotFoundError if the driver does not exist.
	Get(ctx context.Context, id kernel.UUID) (*party.Driver, error)

	// Update persists changes to a driver's availability.
	Update(ctx context.Context, aggregate *party.Driver) error

	// GetAllForSupplier retrieves the supplier's full roster.
	GetAllForSupplier(ctx context.Context, supplierID kernel.UUID) ([]*party.Driver, error)
}
